// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Book represents a Google Books volume.
type Book struct {
	Title         string   `json:"title" yaml:"title"`
	Authors       []string `json:"authors" yaml:"authors"`
	Publisher     string   `json:"publisher" yaml:"publisher"`
	PublishedDate string   `json:"published_date" yaml:"published_date"`
	Description   string   `json:"description" yaml:"description"`
	PageCount     int      `json:"page_count" yaml:"page_count"`
	Categories    []string `json:"categories" yaml:"categories"`
	PreviewLink   string   `json:"preview_link" yaml:"preview_link"`
	InfoLink      string   `json:"info_link" yaml:"info_link"`
	ISBN10        string   `json:"isbn_10" yaml:"isbn_10"`
	ISBN13        string   `json:"isbn_13" yaml:"isbn_13"`
}

// Year extracts the year from PublishedDate, or "n.d." when unknown.
func (b Book) Year() string {
	if len(b.PublishedDate) >= 4 {
		return b.PublishedDate[:4]
	}
	return "n.d."
}

// ISBN returns the ISBN-13 if available, falling back to ISBN-10.
func (b Book) ISBN() string {
	if b.ISBN13 != "" {
		return b.ISBN13
	}
	return b.ISBN10
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package books queries the Google Books volumes API and formats citations.
package books

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/scholar-cli/internal/httputil"
	"github.com/pdiddy/scholar-cli/pkg/types"
)

// booksAPIBase is the volumes endpoint. Declared as a var so tests can
// substitute an httptest server.
var booksAPIBase = "https://www.googleapis.com/books/v1/volumes"

// apiMaxResults is the volumes API's hard cap per request.
const apiMaxResults = 40

// Client queries the Google Books API.
type Client struct {
	HTTPClient *http.Client
	Config     types.BooksConfig
}

// Search returns up to limit volumes matching query.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]types.Book, error) {
	if c.Config.APIKey == "" {
		return nil, fmt.Errorf("Google Books API key not set: put it in .secrets/google-books-api-key or set GOOGLE_BOOKS_API_KEY")
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > apiMaxResults {
		limit = apiMaxResults
	}

	params := url.Values{
		"q":          {query},
		"key":        {c.Config.APIKey},
		"maxResults": {strconv.Itoa(limit)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, booksAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.Config.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTPClient, req, 0)
	if err != nil {
		return nil, fmt.Errorf("Google Books API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Google Books API returned HTTP %d", resp.StatusCode)
	}

	var vr volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("parsing Google Books response: %w", err)
	}

	books := make([]types.Book, 0, len(vr.Items))
	for _, item := range vr.Items {
		vi := item.VolumeInfo
		b := types.Book{
			Title:         vi.Title,
			Authors:       vi.Authors,
			Publisher:     vi.Publisher,
			PublishedDate: vi.PublishedDate,
			Description:   vi.Description,
			PageCount:     vi.PageCount,
			Categories:    vi.Categories,
			PreviewLink:   vi.PreviewLink,
			InfoLink:      vi.InfoLink,
		}
		for _, id := range vi.IndustryIdentifiers {
			switch id.Type {
			case "ISBN_10":
				b.ISBN10 = id.Identifier
			case "ISBN_13":
				b.ISBN13 = id.Identifier
			}
		}
		books = append(books, b)
	}
	return books, nil
}

// Google Books API JSON structures.
type volumesResponse struct {
	Items []volumeItem `json:"items"`
}

type volumeItem struct {
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title               string               `json:"title"`
	Authors             []string             `json:"authors"`
	Publisher           string               `json:"publisher"`
	PublishedDate       string               `json:"publishedDate"`
	Description         string               `json:"description"`
	PageCount           int                  `json:"pageCount"`
	Categories          []string             `json:"categories"`
	PreviewLink         string               `json:"previewLink"`
	InfoLink            string               `json:"infoLink"`
	IndustryIdentifiers []industryIdentifier `json:"industryIdentifiers"`
}

type industryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package books

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scholar-cli/pkg/types"
)

const volumesJSON = `{
  "items": [
    {
      "volumeInfo": {
        "title": "Deep Learning",
        "authors": ["Ian Goodfellow", "Yoshua Bengio", "Aaron Courville"],
        "publisher": "MIT Press",
        "publishedDate": "2016-11-18",
        "description": "An introduction to a broad range of topics in deep learning.",
        "pageCount": 800,
        "categories": ["Computers"],
        "previewLink": "https://books.google.com/preview",
        "infoLink": "https://books.google.com/info",
        "industryIdentifiers": [
          {"type": "ISBN_10", "identifier": "0262035618"},
          {"type": "ISBN_13", "identifier": "9780262035613"}
        ]
      }
    }
  ]
}`

func testClient(ts *httptest.Server) *Client {
	return &Client{
		HTTPClient: ts.Client(),
		Config: types.BooksConfig{
			HTTPConfig: types.HTTPConfig{UserAgent: "test/0.1"},
			APIKey:     "key_test",
		},
	}
}

func TestSearch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "deep learning", r.URL.Query().Get("q"))
		assert.Equal(t, "key_test", r.URL.Query().Get("key"))
		assert.Equal(t, "5", r.URL.Query().Get("maxResults"))
		w.Write([]byte(volumesJSON))
	}))
	defer ts.Close()

	old := booksAPIBase
	booksAPIBase = ts.URL
	defer func() { booksAPIBase = old }()

	books, err := testClient(ts).Search(context.Background(), "deep learning", 5)
	require.NoError(t, err)
	require.Len(t, books, 1)

	b := books[0]
	assert.Equal(t, "Deep Learning", b.Title)
	assert.Equal(t, "MIT Press", b.Publisher)
	assert.Equal(t, "2016", b.Year())
	assert.Equal(t, "0262035618", b.ISBN10)
	assert.Equal(t, "9780262035613", b.ISBN13)
	assert.Equal(t, "9780262035613", b.ISBN())
	assert.Equal(t, 800, b.PageCount)
}

func TestSearchCapsAtAPIMax(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "40", r.URL.Query().Get("maxResults"))
		w.Write([]byte(`{"items": []}`))
	}))
	defer ts.Close()

	old := booksAPIBase
	booksAPIBase = ts.URL
	defer func() { booksAPIBase = old }()

	books, err := testClient(ts).Search(context.Background(), "q", 100)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestSearchMissingAPIKey(t *testing.T) {
	c := &Client{HTTPClient: http.DefaultClient}
	_, err := c.Search(context.Background(), "q", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_BOOKS_API_KEY")
}

func TestCite(t *testing.T) {
	book := types.Book{
		Title:         "Deep Learning",
		Authors:       []string{"Ian Goodfellow", "Yoshua Bengio", "Aaron Courville"},
		Publisher:     "MIT Press",
		PublishedDate: "2016-11-18",
	}

	tests := []struct {
		style Style
		want  string
	}{
		{APA, "Goodfellow, I., Bengio, Y., & Courville, A. (2016). Deep Learning. MIT Press."},
		{MLA, "Goodfellow, Ian, et al. Deep Learning. MIT Press, 2016."},
		{Chicago, "Goodfellow, Ian, et al. Deep Learning. MIT Press, 2016."},
		{Harvard, "Goodfellow, I., Bengio, Y. and Courville, A. (2016) Deep Learning. MIT Press."},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			got, err := Cite(book, tt.style)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCiteTwoAuthors(t *testing.T) {
	book := types.Book{
		Title:         "The Go Programming Language",
		Authors:       []string{"Alan Donovan", "Brian Kernighan"},
		Publisher:     "Addison-Wesley",
		PublishedDate: "2015",
	}

	apa, err := Cite(book, APA)
	require.NoError(t, err)
	assert.Equal(t, "Donovan, A. & Kernighan, B. (2015). The Go Programming Language. Addison-Wesley.", apa)

	mla, err := Cite(book, MLA)
	require.NoError(t, err)
	assert.Equal(t, "Donovan, Alan, and Brian Kernighan. The Go Programming Language. Addison-Wesley, 2015.", mla)
}

func TestCiteNoAuthorsNoPublisher(t *testing.T) {
	got, err := Cite(types.Book{Title: "Anonymous Work"}, APA)
	require.NoError(t, err)
	assert.Equal(t, "Unknown Author (n.d.). Anonymous Work. Publisher unknown.", got)
}

func TestParseStyle(t *testing.T) {
	got, err := ParseStyle("APA")
	require.NoError(t, err)
	assert.Equal(t, APA, got)

	_, err = ParseStyle("ieee")
	assert.Error(t, err)
}

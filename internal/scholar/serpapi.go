// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/scholar-cli/internal/httputil"
	"github.com/pdiddy/scholar-cli/pkg/types"
)

// serpAPIBase is the SerpApi endpoint. Declared as a var so tests can
// substitute an httptest server.
var serpAPIBase = "https://serpapi.com/search.json"

// SerpAPIBackend queries Google Scholar through SerpApi's JSON API. It needs
// an API key but is far less likely to be rate-limited than direct scraping.
type SerpAPIBackend struct {
	Client *http.Client
	APIKey string
	Config types.ScholarConfig
}

// Name returns the backend identifier.
func (b *SerpAPIBackend) Name() string { return "serpapi" }

// Search queries the google_scholar engine.
func (b *SerpAPIBackend) Search(ctx context.Context, query string, start, count int) ([]types.Publication, error) {
	params := url.Values{
		"engine": {"google_scholar"},
		"q":      {query},
	}
	if count > 0 {
		params.Set("num", strconv.Itoa(count))
	}
	if start > 0 {
		params.Set("start", strconv.Itoa(start))
	}
	if b.Config.SortByDate {
		params.Set("scisbd", "1")
	}

	var sr serpSearchResponse
	if err := b.getJSON(ctx, params, &sr); err != nil {
		return nil, err
	}
	if sr.Error != "" {
		return nil, fmt.Errorf("SerpApi error: %s", sr.Error)
	}

	var results []types.Publication
	for _, r := range sr.OrganicResults {
		p := types.Publication{
			Title:     r.Title,
			URL:       r.Link,
			Abstract:  r.Snippet,
			Citations: r.InlineLinks.CitedBy.Total,
		}
		for _, a := range r.PublicationInfo.Authors {
			p.Authors = append(p.Authors, a.Name)
		}
		// The summary line carries venue and year in Scholar's byline form.
		byAuthors, venue, year := parseByline(r.PublicationInfo.Summary)
		p.Venue = venue
		p.Year = year
		if len(p.Authors) == 0 {
			p.Authors = byAuthors
		}
		results = append(results, p)
	}
	return results, nil
}

// SearchAuthors queries the google_scholar_profiles engine.
func (b *SerpAPIBackend) SearchAuthors(ctx context.Context, name string, limit int) ([]types.Author, error) {
	params := url.Values{
		"engine":   {"google_scholar_profiles"},
		"mauthors": {name},
	}

	var pr serpProfilesResponse
	if err := b.getJSON(ctx, params, &pr); err != nil {
		return nil, err
	}
	if pr.Error != "" {
		return nil, fmt.Errorf("SerpApi error: %s", pr.Error)
	}

	var authors []types.Author
	for _, p := range pr.Profiles {
		if limit > 0 && len(authors) >= limit {
			break
		}
		a := types.Author{
			Name:        p.Name,
			Affiliation: p.Affiliations,
			Citations:   p.CitedBy,
			ScholarID:   p.AuthorID,
			EmailDomain: strings.TrimPrefix(p.Email, "Verified email at "),
		}
		for _, i := range p.Interests {
			a.Interests = append(a.Interests, i.Title)
		}
		authors = append(authors, a)
	}
	return authors, nil
}

// AuthorByID queries the google_scholar_author engine.
func (b *SerpAPIBackend) AuthorByID(ctx context.Context, id string) (*types.Author, error) {
	params := url.Values{
		"engine":    {"google_scholar_author"},
		"author_id": {id},
	}

	var ar serpAuthorResponse
	if err := b.getJSON(ctx, params, &ar); err != nil {
		return nil, err
	}
	if ar.Error != "" {
		return nil, fmt.Errorf("SerpApi error: %s", ar.Error)
	}
	if ar.Author.Name == "" {
		return nil, &BackendError{Backend: b.Name(), Err: fmt.Errorf("author %q not found", id)}
	}

	a := &types.Author{
		Name:        ar.Author.Name,
		Affiliation: ar.Author.Affiliations,
		ScholarID:   id,
		EmailDomain: strings.TrimPrefix(ar.Author.Email, "Verified email at "),
	}
	for _, i := range ar.Author.Interests {
		a.Interests = append(a.Interests, i.Title)
	}
	for _, row := range ar.CitedBy.Table {
		switch {
		case row.Citations != nil:
			a.Citations = row.Citations.All
		case row.HIndex != nil:
			a.HIndex = row.HIndex.All
		case row.I10Index != nil:
			a.I10Index = row.I10Index.All
		}
	}
	return a, nil
}

// getJSON performs an authenticated GET and decodes the response into v.
func (b *SerpAPIBackend) getJSON(ctx context.Context, params url.Values, v any) error {
	if b.APIKey == "" {
		return fmt.Errorf("SerpApi key not set: put it in .secrets/serpapi-api-key")
	}
	params.Set("api_key", b.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serpAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", b.Config.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, b.Client, req, 0)
	if err != nil {
		return fmt.Errorf("SerpApi request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("SerpApi returned HTTP %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("parsing SerpApi response: %w", err)
	}
	return nil
}

// SerpApi JSON structures.
type serpSearchResponse struct {
	Error          string              `json:"error"`
	OrganicResults []serpOrganicResult `json:"organic_results"`
}

type serpOrganicResult struct {
	Title           string              `json:"title"`
	Link            string              `json:"link"`
	Snippet         string              `json:"snippet"`
	PublicationInfo serpPublicationInfo `json:"publication_info"`
	InlineLinks     serpInlineLinks     `json:"inline_links"`
}

type serpPublicationInfo struct {
	Summary string `json:"summary"`
	Authors []struct {
		Name string `json:"name"`
	} `json:"authors"`
}

type serpInlineLinks struct {
	CitedBy struct {
		Total int `json:"total"`
	} `json:"cited_by"`
}

type serpProfilesResponse struct {
	Error    string        `json:"error"`
	Profiles []serpProfile `json:"profiles"`
}

type serpProfile struct {
	Name         string `json:"name"`
	AuthorID     string `json:"author_id"`
	Affiliations string `json:"affiliations"`
	Email        string `json:"email"`
	CitedBy      int    `json:"cited_by"`
	Interests    []struct {
		Title string `json:"title"`
	} `json:"interests"`
}

type serpAuthorResponse struct {
	Error  string `json:"error"`
	Author struct {
		Name         string `json:"name"`
		Affiliations string `json:"affiliations"`
		Email        string `json:"email"`
		Interests    []struct {
			Title string `json:"title"`
		} `json:"interests"`
	} `json:"author"`
	CitedBy struct {
		Table []serpCitedByRow `json:"table"`
	} `json:"cited_by"`
}

type serpCitedByRow struct {
	Citations *serpStat `json:"citations"`
	HIndex    *serpStat `json:"h_index"`
	I10Index  *serpStat `json:"i10_index"`
}

type serpStat struct {
	All int `json:"all"`
}

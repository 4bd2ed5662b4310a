// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/scholar-cli/internal/httputil"
	"github.com/pdiddy/scholar-cli/pkg/types"
)

// Endpoints are vars so tests can substitute an httptest server.
var (
	scholarSearchBase   = "https://scholar.google.com/scholar"
	scholarCitationBase = "https://scholar.google.com/citations"
)

// DirectBackend scrapes scholar.google.com result pages. Scholar rate-limits
// aggressively; an optional session cookie and the shared retry helper soften
// that, and a CAPTCHA interstitial is reported as a failure rather than
// parsed as zero results.
type DirectBackend struct {
	Client *http.Client
	Config types.ScholarConfig
}

// Name returns the backend identifier.
func (b *DirectBackend) Name() string { return "scholar" }

// Search fetches one result page and parses its publication blocks.
func (b *DirectBackend) Search(ctx context.Context, query string, start, count int) ([]types.Publication, error) {
	params := url.Values{
		"q":      {query},
		"hl":     {"en"},
		"as_sdt": {"0,5"},
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

	doc, err := b.fetch(ctx, scholarSearchBase+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var results []types.Publication
	doc.Find(".gs_r .gs_ri").Each(func(_ int, s *goquery.Selection) {
		titleLink := s.Find("h3.gs_rt a").First()
		p := types.Publication{
			Title:    strings.TrimSpace(titleLink.Text()),
			Abstract: strings.TrimSpace(s.Find(".gs_rs").Text()),
		}
		if p.Title == "" {
			// Citation-only entries carry the title outside an anchor.
			p.Title = strings.TrimSpace(s.Find("h3.gs_rt").Text())
		}
		if href, ok := titleLink.Attr("href"); ok {
			p.URL = href
		}

		p.Authors, p.Venue, p.Year = parseByline(strings.TrimSpace(s.Find(".gs_a").Text()))

		s.Find(".gs_fl a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			if n := parseCitedBy(strings.TrimSpace(a.Text())); n > 0 {
				p.Citations = n
				return false
			}
			return true
		})

		if p.Title != "" {
			results = append(results, p)
		}
	})
	return results, nil
}

// SearchAuthors scrapes the author-profile search page.
func (b *DirectBackend) SearchAuthors(ctx context.Context, name string, limit int) ([]types.Author, error) {
	params := url.Values{
		"view_op":  {"search_authors"},
		"mauthors": {name},
		"hl":       {"en"},
	}

	doc, err := b.fetch(ctx, scholarCitationBase+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var authors []types.Author
	doc.Find(".gsc_1usr").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		nameLink := s.Find(".gs_ai_name a").First()
		a := types.Author{
			Name:        strings.TrimSpace(nameLink.Text()),
			Affiliation: strings.TrimSpace(s.Find(".gs_ai_aff").Text()),
			Interests:   selectionTexts(s.Find(".gs_ai_one_int")),
		}
		if href, ok := nameLink.Attr("href"); ok {
			a.ScholarID = scholarIDFromHref(href)
		}
		if email := strings.TrimSpace(s.Find(".gs_ai_eml").Text()); email != "" {
			a.EmailDomain = strings.TrimPrefix(email, "Verified email at ")
		}
		if cby := strings.TrimSpace(s.Find(".gs_ai_cby").Text()); cby != "" {
			a.Citations = parseCitedBy(cby)
		}
		if a.Name != "" {
			authors = append(authors, a)
		}
		return limit <= 0 || len(authors) < limit
	})
	return authors, nil
}

// AuthorByID scrapes a single author profile page.
func (b *DirectBackend) AuthorByID(ctx context.Context, id string) (*types.Author, error) {
	params := url.Values{
		"user": {id},
		"hl":   {"en"},
	}

	doc, err := b.fetch(ctx, scholarCitationBase+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(doc.Find("#gsc_prf_in").Text())
	if name == "" {
		return nil, &BackendError{Backend: b.Name(), Err: fmt.Errorf("author %q not found", id)}
	}

	a := &types.Author{
		Name:        name,
		ScholarID:   id,
		Affiliation: strings.TrimSpace(doc.Find(".gsc_prf_il").First().Text()),
		Interests:   selectionTexts(doc.Find("#gsc_prf_int a")),
	}

	// The stats table lists all-time values for citations, h-index, and
	// i10-index in that row order.
	stats := doc.Find("#gsc_rsb_st tbody tr td.gsc_rsb_std")
	if stats.Length() >= 5 {
		a.Citations = atoiSafe(stats.Eq(0).Text())
		a.HIndex = atoiSafe(stats.Eq(2).Text())
		a.I10Index = atoiSafe(stats.Eq(4).Text())
	}
	return a, nil
}

// fetch performs a GET with the backend's headers and returns the parsed
// document. Rate-limit responses and CAPTCHA interstitials become errors.
func (b *DirectBackend) fetch(ctx context.Context, rawURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", b.Config.UserAgent)
	if b.Config.Cookie != "" {
		req.Header.Set("Cookie", b.Config.Cookie)
	}

	resp, err := httputil.DoWithRetry(ctx, b.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("Scholar request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("Scholar rate limit persisted after retries")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Scholar returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing Scholar response: %w", err)
	}
	if doc.Find("#gs_captcha_f").Length() > 0 {
		return nil, fmt.Errorf("Scholar served a CAPTCHA challenge; slow down or set a session cookie")
	}
	return doc, nil
}

// scholarIDFromHref extracts the user= parameter from a profile link.
func scholarIDFromHref(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return u.Query().Get("user")
}

func selectionTexts(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			out = append(out, t)
		}
	})
	return out
}

func atoiSafe(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

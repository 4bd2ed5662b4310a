// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pdiddy/scholar-cli/pkg/types"
)

const scholarResultsHTML = `<html><body>
<div class="gs_r gs_or gs_scl">
  <div class="gs_ri">
    <h3 class="gs_rt"><a href="https://example.com/epr">Can quantum-mechanical description of physical reality be considered complete?</a></h3>
    <div class="gs_a">A Einstein, B Podolsky, N Rosen - Physical Review, 1935 - APS</div>
    <div class="gs_rs">In a complete theory there is an element corresponding to each element of reality…</div>
    <div class="gs_fl"><a href="#">Save</a> <a href="#">Cited by 25016</a> <a href="#">Related articles</a></div>
  </div>
</div>
<div class="gs_r gs_or gs_scl">
  <div class="gs_ri">
    <h3 class="gs_rt"><a href="https://example.com/attention">Attention is all you need</a></h3>
    <div class="gs_a">A Vaswani, N Shazeer - Advances in neural information processing systems, 2017</div>
    <div class="gs_rs">The dominant sequence transduction models…</div>
    <div class="gs_fl"><a href="#">Cited by 100000</a></div>
  </div>
</div>
</body></html>`

const scholarProfilesHTML = `<html><body>
<div class="gsc_1usr">
  <h3 class="gs_ai_name"><a href="/citations?hl=en&user=qc6CJjYAAAAJ">Albert Einstein</a></h3>
  <div class="gs_ai_aff">Institute for Advanced Study</div>
  <div class="gs_ai_eml">Verified email at ias.edu</div>
  <div class="gs_ai_cby">Cited by 150000</div>
  <a class="gs_ai_one_int" href="#">Physics</a>
  <a class="gs_ai_one_int" href="#">Relativity</a>
</div>
</body></html>`

const scholarProfileHTML = `<html><body>
<div id="gsc_prf_in">Albert Einstein</div>
<div class="gsc_prf_il">Institute for Advanced Study</div>
<div id="gsc_prf_int"><a href="#">Physics</a><a href="#">Relativity</a></div>
<table id="gsc_rsb_st"><tbody>
<tr><td class="gsc_rsb_std">150000</td><td class="gsc_rsb_std">40000</td></tr>
<tr><td class="gsc_rsb_std">110</td><td class="gsc_rsb_std">60</td></tr>
<tr><td class="gsc_rsb_std">300</td><td class="gsc_rsb_std">200</td></tr>
</tbody></table>
</body></html>`

func testDirectBackend(ts *httptest.Server) *DirectBackend {
	return &DirectBackend{
		Client: ts.Client(),
		Config: types.ScholarConfig{
			HTTPConfig: types.HTTPConfig{Timeout: 10 * time.Second, UserAgent: "test/0.1"},
		},
	}
}

func TestDirectSearch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != `HRM AND "job satisfaction"` {
			t.Errorf("q = %q", got)
		}
		if got := r.URL.Query().Get("start"); got != "10" {
			t.Errorf("start = %q, want 10", got)
		}
		w.Write([]byte(scholarResultsHTML))
	}))
	defer ts.Close()

	old := scholarSearchBase
	scholarSearchBase = ts.URL
	defer func() { scholarSearchBase = old }()

	b := testDirectBackend(ts)
	results, err := b.Search(context.Background(), `HRM AND "job satisfaction"`, 10, 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}

	first := results[0]
	if first.Title != "Can quantum-mechanical description of physical reality be considered complete?" {
		t.Errorf("Title = %q", first.Title)
	}
	if len(first.Authors) != 3 || first.Authors[0] != "A Einstein" {
		t.Errorf("Authors = %v", first.Authors)
	}
	if first.Venue != "Physical Review" {
		t.Errorf("Venue = %q", first.Venue)
	}
	if first.Year != 1935 {
		t.Errorf("Year = %d", first.Year)
	}
	if first.Citations != 25016 {
		t.Errorf("Citations = %d", first.Citations)
	}
	if first.URL != "https://example.com/epr" {
		t.Errorf("URL = %q", first.URL)
	}
	if first.Abstract == "" {
		t.Error("Abstract is empty")
	}
}

func TestDirectSearchCaptcha(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><body><form id="gs_captcha_f"></form></body></html>`))
	}))
	defer ts.Close()

	old := scholarSearchBase
	scholarSearchBase = ts.URL
	defer func() { scholarSearchBase = old }()

	b := testDirectBackend(ts)
	_, err := b.Search(context.Background(), "q", 0, 10)
	if err == nil {
		t.Fatal("Search() returned nil error on a CAPTCHA page")
	}
}

func TestDirectSearchHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	old := scholarSearchBase
	scholarSearchBase = ts.URL
	defer func() { scholarSearchBase = old }()

	b := testDirectBackend(ts)
	_, err := b.Search(context.Background(), "q", 0, 10)
	if err == nil {
		t.Fatal("Search() returned nil error on HTTP 403")
	}
}

func TestDirectSearchAuthors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("mauthors"); got != "Albert Einstein" {
			t.Errorf("mauthors = %q", got)
		}
		w.Write([]byte(scholarProfilesHTML))
	}))
	defer ts.Close()

	old := scholarCitationBase
	scholarCitationBase = ts.URL
	defer func() { scholarCitationBase = old }()

	b := testDirectBackend(ts)
	authors, err := b.SearchAuthors(context.Background(), "Albert Einstein", 5)
	if err != nil {
		t.Fatalf("SearchAuthors() error = %v", err)
	}
	if len(authors) != 1 {
		t.Fatalf("len(authors) = %d, want 1", len(authors))
	}

	a := authors[0]
	if a.Name != "Albert Einstein" {
		t.Errorf("Name = %q", a.Name)
	}
	if a.ScholarID != "qc6CJjYAAAAJ" {
		t.Errorf("ScholarID = %q", a.ScholarID)
	}
	if a.EmailDomain != "ias.edu" {
		t.Errorf("EmailDomain = %q", a.EmailDomain)
	}
	if a.Citations != 150000 {
		t.Errorf("Citations = %d", a.Citations)
	}
	if len(a.Interests) != 2 || a.Interests[0] != "Physics" {
		t.Errorf("Interests = %v", a.Interests)
	}
}

func TestDirectAuthorByID(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("user"); got != "qc6CJjYAAAAJ" {
			t.Errorf("user = %q", got)
		}
		w.Write([]byte(scholarProfileHTML))
	}))
	defer ts.Close()

	old := scholarCitationBase
	scholarCitationBase = ts.URL
	defer func() { scholarCitationBase = old }()

	b := testDirectBackend(ts)
	a, err := b.AuthorByID(context.Background(), "qc6CJjYAAAAJ")
	if err != nil {
		t.Fatalf("AuthorByID() error = %v", err)
	}
	if a.Name != "Albert Einstein" {
		t.Errorf("Name = %q", a.Name)
	}
	if a.Citations != 150000 || a.HIndex != 110 || a.I10Index != 300 {
		t.Errorf("stats = %d/%d/%d, want 150000/110/300", a.Citations, a.HIndex, a.I10Index)
	}
	if a.Affiliation != "Institute for Advanced Study" {
		t.Errorf("Affiliation = %q", a.Affiliation)
	}
}

func TestDirectAuthorByIDNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><body></body></html>`))
	}))
	defer ts.Close()

	old := scholarCitationBase
	scholarCitationBase = ts.URL
	defer func() { scholarCitationBase = old }()

	b := testDirectBackend(ts)
	_, err := b.AuthorByID(context.Background(), "nope")
	if err == nil {
		t.Fatal("AuthorByID() returned nil error for a missing profile")
	}
}

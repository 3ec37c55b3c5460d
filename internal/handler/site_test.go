package handler

import (
	"html"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DukeRupert/florian/internal/content"
)

func newSiteMux() *http.ServeMux {
	mux := http.NewServeMux()
	NewSiteHandler(NewRenderer(content.Default(), discardLogger())).RegisterRoutes(mux)
	return mux
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestSitePages(t *testing.T) {
	mux := newSiteMux()
	s := content.Default()

	tests := []struct {
		path  string
		title string
		want  string
	}{
		{"/", s.Metadata(content.PageHome).Title, s.Home.Subtitle},
		{"/about", s.Metadata(content.PageAbout).Title, s.About.Team[0].Name},
		{"/services", s.Metadata(content.PageServices).Title, s.Services.Services[0].Name},
		{"/products", s.Metadata(content.PageProducts).Title, s.Products.Products[0].Name},
		{"/blog", s.Metadata(content.PageBlog).Title, s.Blog.Featured.Title},
		{"/privacy", s.Metadata(content.PagePrivacy).Title, "Your Rights"},
		{"/terms", s.Metadata(content.PageTerms).Title, "9. Limitation of Liability"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, mux, tt.path)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			body := rec.Body.String()
			if !strings.Contains(body, "<title>"+html.EscapeString(tt.title)+"</title>") {
				t.Errorf("missing title %q", tt.title)
			}
			if !strings.Contains(body, html.EscapeString(tt.want)) {
				t.Errorf("body missing %q", tt.want)
			}
		})
	}
}

func TestSite_ActiveNavLink(t *testing.T) {
	rec := get(t, newSiteMux(), "/services")
	if !strings.Contains(rec.Body.String(), `href="/services" class=`) {
		t.Fatalf("services link not rendered")
	}
	if strings.Count(rec.Body.String(), `aria-current="page"`) != 1 {
		t.Errorf("expected exactly one active nav link")
	}
}

func TestSite_UnknownPathIs404(t *testing.T) {
	rec := get(t, newSiteMux(), "/does-not-exist")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Page Not Found") {
		t.Errorf("404 page not rendered")
	}
}

func TestSite_BlogFilterAndPagination(t *testing.T) {
	mux := newSiteMux()
	blog := content.Default().Blog

	t.Run("first page", func(t *testing.T) {
		body := get(t, mux, "/blog").Body.String()
		if !strings.Contains(body, html.EscapeString(blog.Posts[0].Title)) {
			t.Errorf("first post missing")
		}
		if strings.Contains(body, html.EscapeString(blog.Posts[BlogPerPage].Title)) {
			t.Errorf("post from page 2 rendered on page 1")
		}
	})

	t.Run("second page", func(t *testing.T) {
		body := get(t, mux, "/blog?page=2").Body.String()
		if !strings.Contains(body, html.EscapeString(blog.Posts[BlogPerPage].Title)) {
			t.Errorf("page 2 post missing")
		}
	})

	t.Run("category", func(t *testing.T) {
		rec := get(t, mux, "/blog?category=Cybersecurity")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, "Cybersecurity Threats in Healthcare") {
			t.Errorf("filtered post missing")
		}
		if strings.Contains(body, "Telemedicine Platform Selection") {
			t.Errorf("post from another category rendered")
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		if rec := get(t, mux, "/blog?category=Gardening"); rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}

func TestSite_CarouselSlideWraps(t *testing.T) {
	mux := newSiteMux()
	slides := content.Default().Carousel.Slides
	last := slides[len(slides)-1]

	body := get(t, mux, "/?slide=-1").Body.String()
	if !strings.Contains(body, html.EscapeString(last.Title)) {
		t.Errorf("slide -1 should show the last slide %q", last.Title)
	}
}

package handler

import (
	"net/http"
	"strings"

	"github.com/DukeRupert/florian/internal/content"
	"github.com/DukeRupert/florian/internal/templ/components/pagination"
	"github.com/DukeRupert/florian/internal/templ/pages/site"
)

// BlogPerPage is how many posts the blog index shows per page.
const BlogPerPage = 3

// SiteHandler serves the static marketing pages.
type SiteHandler struct {
	renderer *Renderer
}

// NewSiteHandler creates a SiteHandler.
func NewSiteHandler(renderer *Renderer) *SiteHandler {
	return &SiteHandler{renderer: renderer}
}

// RegisterRoutes registers the page routes. "GET /" also catches unknown
// paths and answers them with the 404 page.
func (h *SiteHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /about", h.About)
	mux.HandleFunc("GET /services", h.Services)
	mux.HandleFunc("GET /products", h.Products)
	mux.HandleFunc("GET /blog", h.Blog)
	mux.HandleFunc("GET /privacy", h.Privacy)
	mux.HandleFunc("GET /terms", h.Terms)
	mux.HandleFunc("GET /", h.renderer.NotFound)
}

// Home renders the landing page. ?slide= selects the carousel slide and
// wraps around in both directions.
func (h *SiteHandler) Home(w http.ResponseWriter, r *http.Request) {
	s := h.renderer.Site()
	h.renderer.Render(w, r, http.StatusOK, site.HomePage(site.HomePageData{
		Layout: h.renderer.Layout(r, content.PageHome),
		Slide:  s.Carousel.ParseSlide(r.URL.Query().Get("slide")),
	}))
}

// About renders mission, values, milestones and team.
func (h *SiteHandler) About(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, http.StatusOK, site.AboutPage(site.AboutPageData{
		Layout: h.renderer.Layout(r, content.PageAbout),
	}))
}

// Services renders the service catalogue.
func (h *SiteHandler) Services(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, http.StatusOK, site.ServicesPage(site.ServicesPageData{
		Layout: h.renderer.Layout(r, content.PageServices),
	}))
}

// Products renders the product catalogue.
func (h *SiteHandler) Products(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, http.StatusOK, site.ProductsPage(site.ProductsPageData{
		Layout: h.renderer.Layout(r, content.PageProducts),
	}))
}

// Blog renders the article index, filtered by ?category= and paged by
// ?page=. An unknown category is a 404.
func (h *SiteHandler) Blog(w http.ResponseWriter, r *http.Request) {
	blog := h.renderer.Site().Blog
	q := r.URL.Query()

	category := strings.TrimSpace(q.Get("category"))
	if category == "" {
		category = content.CategoryAll
	}
	if !blog.HasCategory(category) {
		h.renderer.NotFound(w, r)
		return
	}

	posts := blog.Filter(category)
	pg := pagination.New(len(posts), BlogPerPage, pagination.ParsePage(q.Get("page")))

	h.renderer.Render(w, r, http.StatusOK, site.BlogPage(site.BlogPageData{
		Layout:     h.renderer.Layout(r, content.PageBlog),
		Category:   category,
		Posts:      pagination.Page(posts, pg),
		Pagination: pg,
		BaseURL:    r.URL,
	}))
}

// Privacy renders the privacy policy.
func (h *SiteHandler) Privacy(w http.ResponseWriter, r *http.Request) {
	h.legal(w, r, content.PagePrivacy, h.renderer.Site().Privacy)
}

// Terms renders the terms of service.
func (h *SiteHandler) Terms(w http.ResponseWriter, r *http.Request) {
	h.legal(w, r, content.PageTerms, h.renderer.Site().Terms)
}

func (h *SiteHandler) legal(w http.ResponseWriter, r *http.Request, key content.PageKey, page content.LegalPage) {
	h.renderer.Render(w, r, http.StatusOK, site.LegalPage(site.LegalPageData{
		Layout: h.renderer.Layout(r, key),
		Page:   page,
	}))
}

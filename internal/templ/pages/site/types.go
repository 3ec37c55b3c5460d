package site

import (
	"net/url"

	"github.com/DukeRupert/florian/internal/content"
	"github.com/DukeRupert/florian/internal/templ/components/pagination"
	"github.com/DukeRupert/florian/internal/templ/shared"
)

// HomePageData contains data for the landing page.
type HomePageData struct {
	Layout shared.LayoutData
	Slide  int
}

// AboutPageData contains data for the about page.
type AboutPageData struct {
	Layout shared.LayoutData
}

// ServicesPageData contains data for the services page.
type ServicesPageData struct {
	Layout shared.LayoutData
}

// ProductsPageData contains data for the products page.
type ProductsPageData struct {
	Layout shared.LayoutData
}

// BlogPageData contains data for the blog index.
type BlogPageData struct {
	Layout     shared.LayoutData
	Category   string // selected filter, "All" when unfiltered
	Posts      []content.Post
	Pagination pagination.Data
	BaseURL    *url.URL
}

// LegalPageData contains data for the privacy and terms pages.
type LegalPageData struct {
	Layout shared.LayoutData
	Page   content.LegalPage
}

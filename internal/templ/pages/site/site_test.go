package site

import (
	"bytes"
	"context"
	"net/url"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/florian/internal/content"
	"github.com/DukeRupert/florian/internal/templ/components/pagination"
	"github.com/DukeRupert/florian/internal/templ/shared"
)

func layout(key content.PageKey, path string) shared.LayoutData {
	s := content.Default()
	return shared.LayoutData{Site: s, Meta: s.Metadata(key), Path: path, Year: 2026}
}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestHomePage(t *testing.T) {
	html := render(t, HomePage(HomePageData{Layout: layout(content.PageHome, "/"), Slide: 2}))

	assert.Contains(t, html, "Innovating Healthcare")
	assert.Contains(t, html, "Our Foundation")
	assert.Contains(t, html, "Explore Our Solutions")
	assert.Contains(t, html, "Healthcare Products")
	assert.Contains(t, html, `href="/?slide=3"`)
	assert.Contains(t, html, `href="/?slide=1"`)
}

func TestServicesAndProducts(t *testing.T) {
	html := render(t, ServicesPage(ServicesPageData{Layout: layout(content.PageServices, "/services")}))
	assert.Contains(t, html, "Cybersecurity &amp; Compliance")
	assert.Contains(t, html, "Key Deliverables")
	assert.Contains(t, html, "Get Started Today")

	html = render(t, ProductsPage(ProductsPageData{Layout: layout(content.PageProducts, "/products")}))
	assert.Contains(t, html, "Pharmacy Automation Suite PAS-360")
	assert.Contains(t, html, "Industry Compliance &amp; Certifications")
}

func TestAboutPage(t *testing.T) {
	html := render(t, AboutPage(AboutPageData{Layout: layout(content.PageAbout, "/about")}))
	assert.Contains(t, html, "Dr. Sarah Chen")
	assert.Contains(t, html, "Industry Recognition")
	assert.Contains(t, html, "Ready to Partner with Us?")
}

func TestBlogPage(t *testing.T) {
	s := content.Default()
	posts := s.Blog.Filter("Compliance")
	data := BlogPageData{
		Layout:     layout(content.PageBlog, "/blog"),
		Category:   "Compliance",
		Posts:      posts,
		Pagination: pagination.New(len(posts), 6, 1),
		BaseURL:    &url.URL{Path: "/blog", RawQuery: "category=Compliance"},
	}
	html := render(t, BlogPage(data))

	assert.Contains(t, html, "January 15, 2024")
	assert.Contains(t, html, "Jan 10, 2024")
	assert.Contains(t, html, `href="/blog?category=Compliance"`)
	assert.Contains(t, html, `aria-current="true"`)
	assert.NotContains(t, html, "Streamlining Hospital Operations")
}

func TestBlogPage_EmptyCategory(t *testing.T) {
	data := BlogPageData{
		Layout:     layout(content.PageBlog, "/blog"),
		Category:   "Regulatory",
		Pagination: pagination.New(0, 6, 1),
	}
	html := render(t, BlogPage(data))
	assert.Contains(t, html, "No articles in this category yet.")
}

func TestLegalPage(t *testing.T) {
	s := content.Default()
	html := render(t, LegalPage(LegalPageData{Layout: layout(content.PageTerms, "/terms"), Page: s.Terms}))

	assert.Contains(t, html, "Terms of Service")
	assert.Contains(t, html, "9. Limitation of Liability")
	assert.Contains(t, html, "Professional Use Only")
	assert.Contains(t, html, `href="mailto:legal@florian-technologies.com"`)
}

// Package content holds the read-only copy and configuration of the
// marketing site: SEO constants, navigation, theme tokens, and the tables
// behind each page.
//
// Everything is built once by Default and shared by all requests. Callers
// must treat the returned values as immutable.
package content

import "sync"

// Site is the complete static content of the website.
type Site struct {
	Name         string
	Title        string
	Description  string
	Keywords     string
	URL          string
	TwitterSite  string
	Tagline      string
	Quote        string
	Organization Organization
	Theme        Theme

	Nav    []NavItem
	Footer []NavItem

	Pages map[PageKey]PageSEO

	Home     HomePage
	About    AboutPage
	Services ServicesPage
	Products ProductsPage
	Blog     BlogPage
	Contact  ContactPage
	Privacy  LegalPage
	Terms    LegalPage

	Carousel Carousel
	Images   ImageSet
}

// Organization describes the company for page footers and email signatures.
type Organization struct {
	Name         string
	URL          string
	Logo         string
	Description  string
	Locality     string
	Region       string
	PostalCode   string
	Country      string
	ContactEmail string
}

// Theme holds the brand colour tokens.
type Theme struct {
	Primary        string
	PrimaryLight   string
	PrimaryDark    string
	Secondary      string
	SecondaryLight string
	SecondaryDark  string
	Background     string
	Paper          string
	TextPrimary    string
	TextSecondary  string
}

// NavItem is a link in the header or footer.
type NavItem struct {
	Label string
	Href  string
}

// IsActive reports whether the item points at path.
func (n NavItem) IsActive(path string) bool {
	return n.Href == path
}

var (
	defaultSite *Site
	defaultOnce sync.Once
)

// Default returns the site content. It is built on first use.
func Default() *Site {
	defaultOnce.Do(func() {
		defaultSite = build()
	})
	return defaultSite
}

func build() *Site {
	return &Site{
		Name:        "Florian Technologies",
		Title:       "Florian Technologies | Medical Products & IT Services",
		Description: "Florian Technologies designs cutting-edge medical products for hospitals and pharmacies while providing IT and consulting services across industries.",
		Keywords:    "medical products, hospital equipment, pharmacy solutions, healthcare IT, medical devices, Chennai, Tamil Nadu, India, healthcare technology, medical innovation, IT consulting, telemedicine, healthcare software, hospital management, pharmacy automation",
		URL:         "https://www.florian-tech.com",
		TwitterSite: "@floriantech",
		Tagline:     "Innovative IT Solutions & Medical Products for Healthcare Excellence",
		Quote:       "Innovation is the bridge between medical excellence and technological advancement",
		Organization: Organization{
			Name:         "Florian Technologies",
			URL:          "https://www.florian-tech.com",
			Logo:         "https://www.florian-tech.com/images/floriantechnologies-title.jpg",
			Description:  "Leading provider of medical products and IT services for healthcare and business sectors.",
			Locality:     "Chennai",
			Region:       "Tamil Nadu",
			PostalCode:   "600000",
			Country:      "IN",
			ContactEmail: "contact@florian-tech.com",
		},
		Theme: Theme{
			Primary:        "#2E7D32",
			PrimaryLight:   "#66BB6A",
			PrimaryDark:    "#1B5E20",
			Secondary:      "#FF8F00",
			SecondaryLight: "#FFB74D",
			SecondaryDark:  "#E65100",
			Background:     "#F8F9FA",
			Paper:          "#FFFFFF",
			TextPrimary:    "#2C3E50",
			TextSecondary:  "#5D6D7E",
		},
		Nav: []NavItem{
			{Label: "Home", Href: "/"},
			{Label: "Services", Href: "/services"},
			{Label: "Products", Href: "/products"},
			{Label: "About Us", Href: "/about"},
			{Label: "Blog", Href: "/blog"},
			{Label: "Contact", Href: "/contact"},
		},
		Footer: []NavItem{
			{Label: "Privacy Policy", Href: "/privacy"},
			{Label: "Terms of Service", Href: "/terms"},
			{Label: "Contact Us", Href: "/contact"},
		},
		Pages:    pageSEO(),
		Home:     homePage(),
		About:    aboutPage(),
		Services: servicesPage(),
		Products: productsPage(),
		Blog:     blogPage(),
		Contact:  contactPage(),
		Privacy:  privacyPage(),
		Terms:    termsPage(),
		Carousel: carousel(),
		Images:   imageSet(),
	}
}

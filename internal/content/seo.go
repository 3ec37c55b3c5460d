package content

// PageKey identifies a page with its own SEO copy.
type PageKey string

const (
	PageHome     PageKey = "home"
	PageProducts PageKey = "products"
	PageServices PageKey = "services"
	PageAbout    PageKey = "about"
	PageContact  PageKey = "contact"
	PageBlog     PageKey = "blog"
	PagePrivacy  PageKey = "privacy"
	PageTerms    PageKey = "terms"
)

// PageSEO is the per-page title, description and keywords.
type PageSEO struct {
	Title       string
	Description string
	Keywords    string
}

// Metadata is what a page renders into its <head>.
type Metadata struct {
	Title       string
	Description string
	Keywords    string
	Canonical   string
}

// Metadata returns the head metadata for key. Unknown keys fall back to
// the site-wide title and description.
func (s *Site) Metadata(key PageKey) Metadata {
	page, ok := s.Pages[key]
	if !ok {
		return Metadata{
			Title:       s.Title,
			Description: s.Description,
			Keywords:    s.Keywords,
			Canonical:   s.URL,
		}
	}

	canonical := s.URL
	if key != PageHome {
		canonical = s.URL + "/" + string(key)
	}

	return Metadata{
		Title:       page.Title,
		Description: page.Description,
		Keywords:    page.Keywords,
		Canonical:   canonical,
	}
}

func pageSEO() map[PageKey]PageSEO {
	return map[PageKey]PageSEO{
		PageHome: {
			Title:       "Florian Technologies | Medical Products & IT Services",
			Description: "Innovating healthcare & beyond with cutting-edge medical products for hospitals and pharmacies, plus comprehensive IT and consulting services.",
			Keywords:    "medical products, hospital equipment, pharmacy solutions, healthcare IT, medical devices, IT consulting",
		},
		PageProducts: {
			Title:       "Hospital Equipment & Pharmacy Solutions | Florian Technologies",
			Description: "Medical solutions for modern healthcare - hospital diagnostic devices, pharmacy automation systems and patient record management tools.",
			Keywords:    "hospital equipment, pharmacy solutions, medical devices, diagnostic equipment, healthcare technology",
		},
		PageServices: {
			Title:       "IT & Consulting Services for Healthcare and Beyond | Florian Technologies",
			Description: "Comprehensive IT services including healthcare consulting, software development, cloud solutions and data analytics for businesses.",
			Keywords:    "healthcare IT consulting, software development, cloud solutions, data analytics, IT services",
		},
		PageAbout: {
			Title:       "About Florian Technologies | Healthcare Innovation Leaders",
			Description: "Founded with a mission to bridge technology and healthcare, Florian Technologies brings together experts in engineering, medicine and IT.",
			Keywords:    "about florian technologies, healthcare innovation, medical technology company, IT consulting",
		},
		PageContact: {
			Title:       "Contact Florian Technologies | Get in Touch",
			Description: "Contact Florian Technologies for medical products, IT services, or partnership opportunities. Email, phone, or quick contact form available.",
			Keywords:    "contact florian technologies, medical products inquiry, IT services contact, healthcare solutions",
		},
		PageBlog: {
			Title:       "Healthcare Tech Insights | Florian Technologies Blog",
			Description: "Latest insights on healthcare technology, medical innovations and IT solutions from the experts at Florian Technologies.",
			Keywords:    "healthcare technology blog, medical innovation insights, IT solutions articles, healthcare trends",
		},
		PagePrivacy: {
			Title:       "Privacy Policy - Florian Technologies",
			Description: "Privacy Policy for Florian Technologies - Learn how we protect your personal information and data in our medical products and IT services.",
		},
		PageTerms: {
			Title:       "Terms of Service - Florian Technologies",
			Description: "Terms of Service for Florian Technologies - Understand the terms and conditions for using our medical products and IT services.",
		},
	}
}

package content

import "github.com/DukeRupert/florian/internal/domain"

// Department inboxes.
const (
	InboxSales      = "sales@florian-technologies.com"
	InboxSupport    = "support@florian-technologies.com"
	InboxConsulting = "consulting@florian-technologies.com"
	InboxCompliance = "compliance@florian-technologies.com"
)

// ProjectTypeHelp is shown under the project type select when it has no error.
const ProjectTypeHelp = "Choose the service that best matches your needs"

// ContactPage is the copy around the contact form.
type ContactPage struct {
	Hero        Hero
	Intro       string
	Methods     []ContactMethod
	Departments []Department
	FormTitle   string
	Emergency   Emergency
	Success     string
	Failure     string
}

// ContactMethod is one way to reach the company.
type ContactMethod struct {
	Icon        string
	Title       string
	Primary     string
	Secondary   string
	Description string
}

// Department is a team with its own inbox.
type Department struct {
	Name        string
	Email       string
	Description string
}

// Emergency is the out-of-hours hotline.
type Emergency struct {
	Title       string
	Description string
	Hotline     string
	Phone       string
}

// DepartmentFor returns the inbox that handles enquiries of project type p.
// Unknown types go to sales.
func DepartmentFor(p domain.ProjectType) string {
	switch p {
	case domain.ProjectTypeConsulting, domain.ProjectTypeDevelopment,
		domain.ProjectTypeCloud, domain.ProjectTypeAnalytics,
		domain.ProjectTypeIntegration:
		return InboxConsulting
	case domain.ProjectTypeSecurity:
		return InboxCompliance
	default:
		return InboxSales
	}
}

func contactPage() ContactPage {
	return ContactPage{
		Hero: Hero{
			Title:    "Contact Florian Technologies",
			Subtitle: "Ready to partner with us? Get in touch for quotes, consultations, or support",
			Badges:   "Get in Touch Today • Free Consultation Available",
			Image:    "get_in_touch.png",
			ImageAlt: "Contact Florian Technologies",
		},
		Intro: "Transform your healthcare technology or get expert IT consulting. Our team is here to help you achieve your goals.",
		Methods: []ContactMethod{
			{
				Icon:        "📞",
				Title:       "Phone",
				Primary:     "+1 (555) 123-4567",
				Secondary:   "Monday - Friday, 9AM - 6PM EST",
				Description: "Speak directly with our support team",
			},
			{
				Icon:        "✉️",
				Title:       "Email",
				Primary:     "contact@florian-technologies.com",
				Secondary:   InboxSupport,
				Description: "Get detailed responses within 24 hours",
			},
			{
				Icon:        "📍",
				Title:       "Address",
				Primary:     "123 Innovation Drive",
				Secondary:   "Boston, MA 02115, USA",
				Description: "Visit our headquarters and innovation center",
			},
			{
				Icon:        "🕘",
				Title:       "Business Hours",
				Primary:     "Monday - Friday: 9AM - 6PM EST",
				Secondary:   "Emergency Support: 24/7",
				Description: "We're here when you need us",
			},
		},
		Departments: []Department{
			{Name: "Sales & Business Development", Email: InboxSales, Description: "Product inquiries, quotes and partnership opportunities"},
			{Name: "Technical Support", Email: InboxSupport, Description: "Product support, troubleshooting and technical assistance"},
			{Name: "Consulting Services", Email: InboxConsulting, Description: "IT consulting, custom development and project discussions"},
			{Name: "Regulatory & Compliance", Email: InboxCompliance, Description: "FDA regulations, HIPAA compliance and certification questions"},
		},
		FormTitle: "Get in Touch",
		Emergency: Emergency{
			Title:       "Emergency Support",
			Description: "For critical system issues or urgent technical support outside business hours",
			Hotline:     "24/7 Emergency Hotline",
			Phone:       "+1 (555) 999-HELP (4357)",
		},
		Success: "Thank you! Your message has been sent successfully.",
		Failure: "Sorry, there was an error sending your message. Please try again.",
	}
}

package content

import (
	"strings"
	"time"
)

// CategoryAll matches every post.
const CategoryAll = "All"

const postDateLayout = "2006-01-02"

// BlogPage lists articles.
type BlogPage struct {
	Hero       Hero
	Featured   Post
	Posts      []Post
	Categories []string
	Newsletter CallToAction
}

// Post is a blog article summary.
type Post struct {
	Title    string
	Excerpt  string
	Author   string
	Date     time.Time
	Category string
	ReadTime string
	Slug     string
}

// LongDate renders the post date as "January 15, 2024".
func (p Post) LongDate() string {
	return p.Date.Format("January 2, 2006")
}

// ShortDate renders the post date as "Jan 15, 2024".
func (p Post) ShortDate() string {
	return p.Date.Format("Jan 2, 2006")
}

// ISODate renders the post date for <time datetime>.
func (p Post) ISODate() string {
	return p.Date.Format(postDateLayout)
}

// Href is the article path.
func (p Post) Href() string {
	return "/blog/" + p.Slug
}

// Filter returns the posts in category. An empty or "All" category returns
// every post. Matching ignores case.
func (b BlogPage) Filter(category string) []Post {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, CategoryAll) {
		return b.Posts
	}
	var out []Post
	for _, p := range b.Posts {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// HasCategory reports whether category is one of the listed filters.
func (b BlogPage) HasCategory(category string) bool {
	for _, c := range b.Categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

func mustDate(s string) time.Time {
	t, err := time.Parse(postDateLayout, s)
	if err != nil {
		panic("content: bad post date " + s)
	}
	return t
}

func blogPage() BlogPage {
	return BlogPage{
		Hero: Hero{
			Title:    "Healthcare Technology Insights",
			Subtitle: "Expert insights, industry trends and practical guidance for healthcare technology professionals and IT decision-makers.",
			Badges:   "Stay Informed • Make Better Decisions • Drive Innovation",
			Image:    "medical_innovations_1.png",
			ImageAlt: "Medical innovations",
		},
		Featured: Post{
			Title:    "The Future of AI in Healthcare: Transforming Patient Care Through Technology",
			Excerpt:  "Explore how artificial intelligence is revolutionizing healthcare delivery, from diagnostic imaging to personalized treatment plans and what this means for the future of medicine.",
			Author:   "Dr. Sarah Chen",
			Date:     mustDate("2024-01-15"),
			Category: "Healthcare Technology",
			ReadTime: "8 min read",
			Slug:     "future-ai-healthcare-transforming-patient-care",
		},
		Posts: []Post{
			{
				Title:    "HIPAA Compliance in the Cloud: Essential Guidelines for Healthcare Organizations",
				Excerpt:  "A comprehensive guide to maintaining HIPAA compliance when migrating healthcare data to cloud platforms, including best practices and security considerations.",
				Author:   "Michael Rodriguez",
				Date:     mustDate("2024-01-10"),
				Category: "Compliance",
				ReadTime: "6 min read",
				Slug:     "hipaa-compliance-cloud-healthcare-guidelines",
			},
			{
				Title:    "Streamlining Hospital Operations with Digital Workflow Solutions",
				Excerpt:  "Learn how digital workflow automation can reduce administrative overhead, improve patient satisfaction and enhance operational efficiency in healthcare facilities.",
				Author:   "Emily Watson",
				Date:     mustDate("2024-01-05"),
				Category: "Digital Transformation",
				ReadTime: "5 min read",
				Slug:     "streamlining-hospital-operations-digital-workflow",
			},
			{
				Title:    "The ROI of Medical Device Integration: Cost-Benefit Analysis",
				Excerpt:  "Discover the financial benefits of integrating medical devices with hospital information systems and how to calculate return on investment for healthcare technology.",
				Author:   "Dr. Sarah Chen",
				Date:     mustDate("2023-12-28"),
				Category: "Healthcare Economics",
				ReadTime: "7 min read",
				Slug:     "roi-medical-device-integration-cost-benefit",
			},
			{
				Title:    "Cybersecurity Threats in Healthcare: Protecting Patient Data in 2024",
				Excerpt:  "An in-depth look at emerging cybersecurity threats facing healthcare organizations and proven strategies to protect sensitive patient information.",
				Author:   "Michael Rodriguez",
				Date:     mustDate("2023-12-20"),
				Category: "Cybersecurity",
				ReadTime: "9 min read",
				Slug:     "cybersecurity-threats-healthcare-protecting-patient-data-2024",
			},
			{
				Title:    "Telemedicine Platform Selection: Key Features and Considerations",
				Excerpt:  "A detailed comparison of telemedicine platforms, essential features to look for and how to choose the right solution for your healthcare practice.",
				Author:   "Emily Watson",
				Date:     mustDate("2023-12-15"),
				Category: "Telehealth",
				ReadTime: "6 min read",
				Slug:     "telemedicine-platform-selection-key-features",
			},
			{
				Title:    "FDA Regulatory Updates: What Medical Device Manufacturers Need to Know",
				Excerpt:  "Stay current with the latest FDA regulatory changes affecting medical device manufacturers and how to ensure continued compliance.",
				Author:   "Dr. Sarah Chen",
				Date:     mustDate("2023-12-10"),
				Category: "Regulatory",
				ReadTime: "8 min read",
				Slug:     "fda-regulatory-updates-medical-device-manufacturers",
			},
		},
		Categories: []string{
			CategoryAll,
			"Healthcare Technology",
			"Compliance",
			"Digital Transformation",
			"Cybersecurity",
			"Telehealth",
			"Regulatory",
		},
		Newsletter: CallToAction{
			Title:       "Stay Updated with Industry Insights",
			Description: "Subscribe to our newsletter and receive the latest healthcare technology trends, regulatory updates and expert insights delivered to your inbox.",
			Label:       "Subscribe to Newsletter",
			Href:        "/contact",
		},
	}
}

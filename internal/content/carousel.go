package content

import "strconv"

// Carousel is the rotating showcase on the home page. Slide selection is
// driven by the ?slide= query parameter.
type Carousel struct {
	Slides []Slide
}

// Slide is one carousel frame.
type Slide struct {
	Image       string
	Title       string
	Description string
	Category    string
}

// Len returns the number of slides.
func (c Carousel) Len() int {
	return len(c.Slides)
}

// Normalize maps any index onto [0, Len). Negative indexes count back from
// the end, so -1 is the last slide and Len is the first.
func (c Carousel) Normalize(i int) int {
	n := len(c.Slides)
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// Next returns the index after i, wrapping to the first slide.
func (c Carousel) Next(i int) int {
	return c.Normalize(i + 1)
}

// Prev returns the index before i, wrapping to the last slide.
func (c Carousel) Prev(i int) int {
	return c.Normalize(i - 1)
}

// Slide returns the slide at the normalized index i.
func (c Carousel) Slide(i int) (Slide, bool) {
	if len(c.Slides) == 0 {
		return Slide{}, false
	}
	return c.Slides[c.Normalize(i)], true
}

// ParseSlide reads a ?slide= value. Missing or malformed values select the
// first slide.
func (c Carousel) ParseSlide(raw string) int {
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return c.Normalize(i)
}

// Href links to slide i on path.
func (c Carousel) Href(path string, i int) string {
	return path + "?slide=" + strconv.Itoa(c.Normalize(i))
}

func carousel() Carousel {
	return Carousel{
		Slides: []Slide{
			{
				Image:       "medical_innovations.png",
				Title:       "Medical Innovation Excellence",
				Description: "Cutting-edge medical devices and solutions designed for modern healthcare facilities",
				Category:    "Healthcare Technology",
			},
			{
				Image:       "it_services.png",
				Title:       "Expert IT Services",
				Description: "Comprehensive technology solutions spanning cloud infrastructure and digital transformation",
				Category:    "Technology Solutions",
			},
			{
				Image:       "healthcare_products.png",
				Title:       "Healthcare Products",
				Description: "Advanced medical products for hospitals, clinics, and pharmaceutical environments",
				Category:    "Medical Equipment",
			},
			{
				Image:       "software_development_team.png",
				Title:       "Software Development",
				Description: "Custom software solutions with modern frameworks and scalable architectures",
				Category:    "Development Services",
			},
			{
				Image:       "domain_expertise.png",
				Title:       "Domain Expertise",
				Description: "Cross-industry consulting with deep technical knowledge and business insight",
				Category:    "Consulting",
			},
			{
				Image:       "client_first_approach.png",
				Title:       "Client-Centric Approach",
				Description: "Customer-focused solutions with proven track record of excellence and innovation",
				Category:    "Service Excellence",
			},
		},
	}
}

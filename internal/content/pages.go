package content

// Hero is the banner at the top of a page.
type Hero struct {
	Title    string
	Subtitle string
	Badges   string
	Image    string
	ImageAlt string
}

// Card is a titled block of copy with an optional link.
type Card struct {
	Icon        string
	Title       string
	Description string
	LinkLabel   string
	Href        string
}

// CallToAction closes a page with a prompt to get in touch.
type CallToAction struct {
	Title       string
	Description string
	Label       string
	Href        string
}

// =============================================================================
// Home
// =============================================================================

// HomePage is the copy of the landing page.
type HomePage struct {
	Headline   []HeadlinePart
	Subtitle   string
	Promise    string
	Actions    []Card
	Foundation []Card
	Solutions  []Card
}

// HeadlinePart is one run of the animated site title. Highlighted runs are
// emphasised, thin runs are separators.
type HeadlinePart struct {
	Text      string
	Highlight bool
	Thin      bool
}

func homePage() HomePage {
	return HomePage{
		Headline: []HeadlinePart{
			{Text: "Florian Technologies", Highlight: true},
			{Text: " – ", Thin: true},
			{Text: "Innovating Healthcare", Highlight: true},
			{Text: " & ", Thin: true},
			{Text: "Beyond", Highlight: true},
		},
		Subtitle: "We design and deliver cutting edge medical products for hospitals and pharmacies while providing IT and consulting services across industries.",
		Promise:  "Our Promise: Time-Bound Excellence, Precision and Customer Centric Solutions.",
		Actions: []Card{
			{LinkLabel: "Explore Products", Href: "/products"},
			{LinkLabel: "View Services", Href: "/services"},
		},
		Foundation: []Card{
			{
				Icon:        "🏥",
				Title:       "Medical Innovation",
				Description: "Cutting-edge medical products designed with precision, safety and compliance for modern healthcare facilities.",
			},
			{
				Icon:        "🎯",
				Title:       "Cross Domain Expertise",
				Description: "Comprehensive IT and consulting services spanning multiple industries with tailored solutions.",
			},
			{
				Icon:        "🤝",
				Title:       "Client First Approach",
				Description: "Customer-centric solutions with proven track record of innovation and industry-certified excellence.",
			},
		},
		Solutions: []Card{
			{
				Title:       "Medical Products",
				Description: "Hospital diagnostic devices, pharmacy automation systems and patient management tools.",
				LinkLabel:   "View Products",
				Href:        "/products",
			},
			{
				Title:       "IT Services",
				Description: "IT consulting, software development, cloud solutions and data analytics for business transformation.",
				LinkLabel:   "View Services",
				Href:        "/services",
			},
			{
				Title:       "Get in Touch",
				Description: "Ready to partner with us? Contact our team for quotes, consultations, or support.",
				LinkLabel:   "Contact Us",
				Href:        "/contact",
			},
		},
	}
}

// =============================================================================
// About
// =============================================================================

// AboutPage is the company story.
type AboutPage struct {
	Hero       Hero
	Intro      string
	Mission    string
	Vision     string
	Values     []Card
	Team       []TeamMember
	Milestones []Milestone
	CTA        CallToAction
}

// TeamMember is a member of the leadership team.
type TeamMember struct {
	Name       string
	Position   string
	Background string
	Expertise  string
}

// Milestone is one year on the company timeline.
type Milestone struct {
	Year        string
	Title       string
	Description string
}

func aboutPage() AboutPage {
	return AboutPage{
		Hero: Hero{
			Title:    "About Florian Technologies",
			Subtitle: "Leading innovation in healthcare technology and IT solutions since 2019",
			Image:    "it_consultants_discussion.png",
			ImageAlt: "IT consultants in discussion",
		},
		Intro:   "We are a hybrid IT startup specializing in medical products for hospitals and pharmacies, while providing comprehensive technology consulting services across multiple industries.",
		Mission: "To revolutionize healthcare through innovative medical technology while delivering exceptional IT consulting services that drive digital transformation across industries. We are committed to improving patient outcomes and operational efficiency through cutting-edge solutions.",
		Vision:  "To be the leading global provider of healthcare technology solutions and multi-domain IT services, recognized for our innovation, quality and customer-centric approach. We envision a future where technology seamlessly enhances human health and business success.",
		Values: []Card{
			{Title: "Innovation", Description: "Continuously pushing boundaries with cutting-edge technology and creative solutions"},
			{Title: "Quality", Description: "Maintaining the highest standards in all our products and services"},
			{Title: "Integrity", Description: "Building trust through transparency, honesty and ethical business practices"},
			{Title: "Customer Focus", Description: "Putting our clients' needs first and delivering exceptional value"},
		},
		Team: []TeamMember{
			{
				Name:       "Dr. Sarah Chen",
				Position:   "Chief Technology Officer",
				Background: "Former FDA consultant with 15+ years in medical device development",
				Expertise:  "Regulatory Compliance, Medical Device Innovation",
			},
			{
				Name:       "Michael Rodriguez",
				Position:   "Head of Software Development",
				Background: "Ex-Epic Systems architect with healthcare IT expertise",
				Expertise:  "Healthcare Software, System Integration",
			},
			{
				Name:       "Emily Watson",
				Position:   "Director of Operations",
				Background: "MBA from Wharton, former McKinsey healthcare consultant",
				Expertise:  "Business Strategy, Operations Management",
			},
		},
		Milestones: []Milestone{
			{Year: "2018", Title: "Company Founded", Description: "Florian Technologies established with a vision to innovate healthcare technology"},
			{Year: "2019", Title: "First FDA Approval", Description: "Received FDA approval for our flagship diagnostic imaging system"},
			{Year: "2020", Title: "Telehealth Expansion", Description: "Launched telemedicine platform during the global health crisis"},
			{Year: "2021", Title: "International Expansion", Description: "Obtained CE certification and expanded to European markets"},
			{Year: "2022", Title: "AI Integration", Description: "Integrated AI and machine learning into our diagnostic solutions"},
			{Year: "2023", Title: "Industry Recognition", Description: `Awarded "Healthcare Innovation Company of the Year"`},
		},
		CTA: CallToAction{
			Title:       "Ready to Partner with Us?",
			Description: "Join hundreds of satisfied clients who trust Florian Technologies for their healthcare and IT solutions. Contact us today to discuss your project.",
			Label:       "Contact Us",
			Href:        "/contact",
		},
	}
}

// =============================================================================
// Services
// =============================================================================

// ServicesPage lists the consulting and engineering services.
type ServicesPage struct {
	Hero     Hero
	Intro    string
	Services []Service
	CTA      CallToAction
}

// Service is one consulting or engineering offering.
type Service struct {
	Name         string
	Category     string
	Description  string
	Features     []string
	Deliverables []string
	Industries   []string
}

func servicesPage() ServicesPage {
	return ServicesPage{
		Hero: Hero{
			Title:    "IT Services & Consulting",
			Subtitle: "Expert technology services spanning healthcare IT, software development, cloud solutions and digital transformation",
			Badges:   "Healthcare-Focused • Multi-Domain Expertise • Proven Results",
			Image:    "it_services.png",
			ImageAlt: "IT Services and Consulting",
		},
		Intro: "Expert technology services spanning healthcare IT, software development, cloud solutions and digital transformation across multiple industries.",
		Services: []Service{
			{
				Name:         "Healthcare IT Consulting",
				Category:     "Strategic Consulting",
				Description:  "Expert IT consulting services tailored for healthcare organizations. We help hospitals, clinics and medical facilities optimize their technology infrastructure, ensure regulatory compliance and improve operational efficiency.",
				Features:     []string{"Technology Assessment", "Digital Transformation", "Compliance Planning", "Workflow Optimization", "ROI Analysis"},
				Deliverables: []string{"Technology Roadmap", "Implementation Plan", "Compliance Documentation", "Staff Training"},
				Industries:   []string{"Hospitals", "Clinics", "Medical Centers", "Healthcare Networks"},
			},
			{
				Name:         "Custom Software Development",
				Category:     "Development Services",
				Description:  "Bespoke software solutions designed specifically for medical and healthcare applications. From electronic health records to patient management systems, we create secure, scalable and user-friendly applications.",
				Features:     []string{"Healthcare-Focused Development", "HIPAA Compliance", "Scalable Architecture", "User-Centric Design", "Integration Capabilities"},
				Deliverables: []string{"Custom Applications", "API Integration", "Documentation", "Testing & QA"},
				Industries:   []string{"Healthcare Providers", "Medical Startups", "Pharmaceutical Companies", "Research Institutions"},
			},
			{
				Name:         "Cloud Infrastructure Solutions",
				Category:     "Cloud Services",
				Description:  "Secure cloud migration and infrastructure management services designed for healthcare organizations. We ensure data security, regulatory compliance and optimal performance in cloud environments.",
				Features:     []string{"Cloud Migration", "Security Management", "Disaster Recovery", "Performance Optimization", "24/7 Monitoring"},
				Deliverables: []string{"Cloud Architecture", "Migration Plan", "Security Protocols", "Monitoring Dashboard"},
				Industries:   []string{"Healthcare Systems", "Medical Practices", "Telehealth Providers", "Health Insurance"},
			},
			{
				Name:         "Data Analytics & Business Intelligence",
				Category:     "Analytics Services",
				Description:  "Advanced data analytics and business intelligence solutions that transform healthcare data into actionable insights. Improve patient outcomes, operational efficiency and decision-making processes.",
				Features:     []string{"Data Visualization", "Predictive Analytics", "Real-time Reporting", "Performance Metrics", "Trend Analysis"},
				Deliverables: []string{"Analytics Platform", "Custom Reports", "Dashboards", "Training Materials"},
				Industries:   []string{"Large Hospitals", "Healthcare Networks", "Public Health", "Medical Research"},
			},
			{
				Name:         "System Integration Services",
				Category:     "Integration Solutions",
				Description:  "Comprehensive system integration services that connect disparate healthcare systems, medical devices and software applications for seamless data flow and improved interoperability.",
				Features:     []string{"API Development", "Data Mapping", "Real-time Synchronization", "Legacy System Integration", "Workflow Automation"},
				Deliverables: []string{"Integration Architecture", "API Documentation", "Testing Suite", "Maintenance Plan"},
				Industries:   []string{"Multi-location Clinics", "Hospital Networks", "Medical Device Companies", "Healthcare SaaS"},
			},
			{
				Name:         "Cybersecurity & Compliance",
				Category:     "Security Services",
				Description:  "Comprehensive cybersecurity and regulatory compliance services protecting sensitive healthcare data and ensuring adherence to industry standards like HIPAA, HITECH and SOC 2.",
				Features:     []string{"Security Assessment", "Compliance Auditing", "Risk Management", "Incident Response", "Employee Training"},
				Deliverables: []string{"Security Assessment Report", "Compliance Framework", "Incident Response Plan", "Training Program"},
				Industries:   []string{"All Healthcare Organizations", "Telehealth Platforms", "Medical Software Companies", "Health Plans"},
			},
		},
		CTA: CallToAction{
			Title:       "Ready to Transform Your Organization?",
			Description: "Let's discuss how our expert team can help you achieve your technology goals and drive innovation in your industry.",
			Label:       "Get Started Today",
			Href:        "/contact",
		},
	}
}

// =============================================================================
// Products
// =============================================================================

// ProductsPage lists the medical products.
type ProductsPage struct {
	Hero           Hero
	Intro          string
	Products       []Product
	Certifications []Card
}

// Product is one medical device or software product.
type Product struct {
	Name         string
	Category     string
	Description  string
	Features     []string
	Applications []string
}

func productsPage() ProductsPage {
	return ProductsPage{
		Hero: Hero{
			Title:    "Medical Products & Solutions",
			Subtitle: "Cutting-edge medical technology designed for hospitals, pharmacies, and healthcare facilities",
			Badges:   "FDA Approved • CE Certified • HIPAA Compliant",
			Image:    "healthcare_products.png",
			ImageAlt: "Healthcare products",
		},
		Intro: "Discover our comprehensive range of medical products designed with precision, safety, and compliance at the forefront.",
		Products: []Product{
			{
				Name:         "Hospital Diagnostic System HD-Pro",
				Category:     "Medical Equipment",
				Description:  "Advanced diagnostic imaging and analysis system designed for hospital environments. Features real-time processing, AI-powered analysis and seamless integration with existing hospital information systems.",
				Features:     []string{"Real-time Processing", "AI-Powered Analysis", "DICOM Compatible", "Cloud Integration", "FDA Approved"},
				Applications: []string{"Radiology Departments", "Emergency Rooms", "Specialized Clinics"},
			},
			{
				Name:         "Pharmacy Automation Suite PAS-360",
				Category:     "Pharmacy Software",
				Description:  "Complete pharmacy management solution that automates dispensing, inventory management and regulatory compliance. Reduces errors and improves efficiency in both hospital and retail pharmacy settings.",
				Features:     []string{"Automated Dispensing", "Inventory Management", "Regulatory Compliance", "Error Reduction", "Multi-Location Support"},
				Applications: []string{"Hospital Pharmacies", "Retail Pharmacies", "Specialty Pharmacies"},
			},
			{
				Name:         "Patient Management Platform PMP-Elite",
				Category:     "Healthcare Software",
				Description:  "Comprehensive patient data management system that streamlines workflows, enhances care coordination and ensures HIPAA compliance. Built for modern healthcare facilities of all sizes.",
				Features:     []string{"Electronic Health Records", "Workflow Optimization", "HIPAA Compliant", "Mobile Access", "Analytics Dashboard"},
				Applications: []string{"Hospitals", "Clinics", "Healthcare Networks"},
			},
			{
				Name:         "Telemedicine Platform TeleHealth-Connect",
				Category:     "Digital Health",
				Description:  "Secure telemedicine solution enabling remote consultations, patient monitoring and digital health services. Designed for healthcare providers transitioning to digital care delivery.",
				Features:     []string{"Video Consultations", "Remote Monitoring", "Secure Messaging", "Appointment Scheduling", "Multi-Device Support"},
				Applications: []string{"Primary Care", "Specialist Consultations", "Remote Monitoring"},
			},
			{
				Name:         "Laboratory Information System LIS-Advanced",
				Category:     "Laboratory Technology",
				Description:  "Comprehensive laboratory management system that handles sample tracking, test results, quality control and regulatory reporting for clinical laboratories.",
				Features:     []string{"Sample Tracking", "Results Management", "Quality Control", "Regulatory Reporting", "Integration Ready"},
				Applications: []string{"Clinical Labs", "Pathology Labs", "Research Facilities"},
			},
			{
				Name:         "Medical Device Integration Hub MDI-Central",
				Category:     "Integration Solutions",
				Description:  "Universal integration platform that connects various medical devices to hospital networks, enabling seamless data flow and centralized monitoring.",
				Features:     []string{"Device Connectivity", "Data Standardization", "Real-time Monitoring", "Alert Management", "Scalable Architecture"},
				Applications: []string{"ICU Units", "Operating Rooms", "Patient Wards"},
			},
		},
		Certifications: []Card{
			{Title: "FDA Approved", Description: "All medical devices meet FDA safety and efficacy standards"},
			{Title: "CE Certified", Description: "European conformity marking for medical device safety"},
			{Title: "HIPAA Compliant", Description: "Complete patient data privacy and security compliance"},
		},
	}
}

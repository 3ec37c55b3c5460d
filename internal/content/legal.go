package content

// LegalPage is a privacy policy or terms document.
type LegalPage struct {
	Title    string
	Updated  string
	Intro    []string
	Sections []LegalSection
	Contact  LegalContact
	Closing  string
}

// LegalSection is a headed block of a legal document. Lead is rendered in
// bold before the body. Outro paragraphs follow the list.
type LegalSection struct {
	Heading     string
	Lead        string
	Paragraphs  []string
	Items       []string
	Outro       []string
	Subsections []LegalSection
}

// LegalContact is the address block at the end of a legal document.
type LegalContact struct {
	Heading string
	Lead    string
	Name    string
	Email   string
	Phone   string
	Address string
}

func privacyPage() LegalPage {
	return LegalPage{
		Title:   "Privacy Policy",
		Updated: "Last updated: December 2024",
		Sections: []LegalSection{
			{
				Heading: "Introduction",
				Paragraphs: []string{
					"At Florian Technologies, we are committed to protecting your privacy and ensuring the security of your personal information. This Privacy Policy explains how we collect, use, disclose and safeguard your information when you visit our website, use our medical products, or engage with our IT services and consulting solutions.",
				},
			},
			{
				Heading: "Information We Collect",
				Subsections: []LegalSection{
					{
						Heading:    "Personal Information",
						Paragraphs: []string{"We may collect personal information that you voluntarily provide to us when you:"},
						Items: []string{
							"Contact us for inquiries about our medical products or IT services",
							"Request quotes or consultations",
							"Subscribe to our newsletters or updates",
							"Use our diagnostic devices or pharmacy automation systems",
							"Engage our IT consulting or software development services",
						},
					},
					{
						Heading: "Healthcare Data",
						Paragraphs: []string{
							"For our medical products and healthcare IT solutions, we may process protected health information (PHI) in accordance with HIPAA regulations and other applicable healthcare privacy laws. This includes patient data processed through our diagnostic devices and patient management tools.",
						},
					},
					{
						Heading: "Technical Information",
						Paragraphs: []string{
							"We automatically collect certain technical information when you visit our website or use our services, including IP addresses, browser types, device information and usage patterns to improve our services and ensure system security.",
						},
					},
				},
			},
			{
				Heading:    "How We Use Your Information",
				Paragraphs: []string{"We use the information we collect for the following purposes:"},
				Items: []string{
					"Providing and maintaining our medical products and IT services",
					"Processing healthcare data in compliance with HIPAA and medical regulations",
					"Responding to your inquiries and providing customer support",
					"Improving our products and services through analytics",
					"Ensuring system security and preventing unauthorized access",
					"Complying with legal obligations and industry regulations",
				},
			},
			{
				Heading: "Data Security",
				Paragraphs: []string{
					"We implement appropriate technical and organizational security measures to protect your personal information against unauthorized access, alteration, disclosure, or destruction. Our security measures include:",
				},
				Items: []string{
					"End-to-end encryption for sensitive healthcare data",
					"HIPAA-compliant data handling procedures",
					"Regular security audits and vulnerability assessments",
					"Access controls and employee training programs",
					"Secure cloud infrastructure and data backup systems",
				},
			},
			{
				Heading: "Information Sharing",
				Paragraphs: []string{
					"We do not sell, trade, or rent your personal information to third parties. We may share your information only in the following circumstances:",
				},
				Items: []string{
					"With healthcare providers as necessary for patient care (with appropriate authorization)",
					"With trusted service providers who assist in our operations under strict confidentiality agreements",
					"When required by law or to protect our legal rights",
					"With your explicit consent",
				},
			},
			{
				Heading:    "Your Rights",
				Paragraphs: []string{"You have the following rights regarding your personal information:"},
				Items: []string{
					"Access: Request copies of your personal information",
					"Rectification: Request correction of inaccurate information",
					"Erasure: Request deletion of your personal information",
					"Portability: Request transfer of your data to another organization",
					"Objection: Object to processing of your personal information",
				},
			},
		},
		Contact: LegalContact{
			Heading: "Contact Us",
			Lead:    "If you have any questions about this Privacy Policy or our data practices, please contact us:",
			Name:    "Florian Technologies",
			Email:   "privacy@florian-technologies.com",
			Phone:   "+1 (555) 123-4567",
			Address: "123 Innovation Drive, Boston, MA 02115, USA",
		},
		Closing: `This Privacy Policy may be updated from time to time. We will notify you of any significant changes by posting the new Privacy Policy on this page with an updated "Last updated" date.`,
	}
}

func termsPage() LegalPage {
	return LegalPage{
		Title:   "Terms of Service",
		Updated: "Last updated: January 2025",
		Intro: []string{
			`Welcome to Florian Technologies. These Terms of Service ("Terms") govern your use of our medical products, healthcare IT services and website operated by Florian Technologies ("we," "us," or "our"). By accessing or using our services, you agree to be bound by these Terms.`,
		},
		Sections: []LegalSection{
			{
				Heading: "1. Acceptance of Terms",
				Paragraphs: []string{
					"By accessing, browsing, or using our services, you acknowledge that you have read, understood and agree to be bound by these Terms and our Privacy Policy. If you do not agree to these Terms, you must not use our services.",
					"These Terms apply to all users of our services, including healthcare professionals, patients, IT administrators and business partners.",
				},
			},
			{
				Heading:    "2. Description of Services",
				Paragraphs: []string{"Florian Technologies provides:"},
				Items: []string{
					"Medical devices and healthcare technology products",
					"IT consulting and implementation services for healthcare organizations",
					"Software solutions for healthcare data management and analysis",
					"Technical support and maintenance services",
					"Cross-domain expertise consulting in healthcare technology",
				},
			},
			{
				Heading: "3. User Responsibilities and Eligibility",
				Subsections: []LegalSection{
					{
						Heading: "Eligibility",
						Paragraphs: []string{
							"You must be at least 18 years old and have the legal authority to enter into these Terms. Healthcare professionals must be properly licensed in their jurisdiction.",
						},
					},
					{
						Heading:    "Account Responsibilities",
						Paragraphs: []string{"You are responsible for:"},
						Items: []string{
							"Maintaining the confidentiality of your account credentials",
							"All activities that occur under your account",
							"Providing accurate and complete information",
							"Complying with all applicable laws and regulations",
						},
					},
				},
			},
			{
				Heading: "4. Healthcare and Medical Device Compliance",
				Subsections: []LegalSection{
					{
						Heading: "Medical Device Regulations",
						Paragraphs: []string{
							"Our medical devices comply with applicable FDA regulations and international standards. Users must follow all provided instructions and safety guidelines.",
						},
					},
					{
						Heading: "Professional Use Only",
						Paragraphs: []string{
							"Many of our products and services are intended for use by qualified healthcare professionals only. Unauthorized use may result in termination of service and legal action.",
						},
					},
					{
						Heading: "HIPAA Compliance",
						Paragraphs: []string{
							"Our services that handle protected health information (PHI) are designed to comply with HIPAA requirements. Users must ensure their use of our services complies with applicable privacy laws.",
						},
					},
				},
			},
			{
				Heading:    "5. Prohibited Uses",
				Paragraphs: []string{"You may not use our services to:"},
				Items: []string{
					"Violate any applicable laws or regulations",
					"Infringe upon intellectual property rights",
					"Transmit malicious code or attempt to gain unauthorized access",
					"Use our medical devices outside their intended purpose",
					"Reverse engineer, modify, or redistribute our proprietary software",
					"Interfere with the operation of our services",
				},
			},
			{
				Heading: "6. Intellectual Property",
				Paragraphs: []string{
					"All content, software and materials provided by Florian Technologies are protected by intellectual property laws. This includes but is not limited to:",
				},
				Items: []string{
					"Proprietary software and algorithms",
					"Medical device designs and specifications",
					"Documentation and user manuals",
					"Trademarks and service marks",
				},
			},
			{
				Heading: "7. Service Availability and Support",
				Subsections: []LegalSection{
					{
						Heading: "Service Levels",
						Paragraphs: []string{
							"We strive to maintain high availability of our services but cannot guarantee uninterrupted access. Scheduled maintenance will be communicated in advance when possible.",
						},
					},
					{
						Heading: "Technical Support",
						Paragraphs: []string{
							"Technical support is provided according to your service agreement. Critical healthcare systems receive priority support with 24/7 availability for emergency issues.",
						},
					},
				},
			},
			{
				Heading: "8. Data Security and Privacy",
				Paragraphs: []string{
					"We implement industry-standard security measures to protect your data. However, you acknowledge that no system is completely secure and you use our services at your own risk.",
					"For detailed information about how we collect, use and protect your data, please review our Privacy Policy, which is incorporated into these Terms by reference.",
				},
			},
			{
				Heading:    "9. Limitation of Liability",
				Lead:       "IMPORTANT: This section limits our liability to you. Please read it carefully.",
				Paragraphs: []string{"TO THE MAXIMUM EXTENT PERMITTED BY LAW, FLORIAN TECHNOLOGIES SHALL NOT BE LIABLE FOR:"},
				Items: []string{
					"INDIRECT, INCIDENTAL, SPECIAL, OR CONSEQUENTIAL DAMAGES",
					"LOSS OF DATA, REVENUE, OR BUSINESS OPPORTUNITIES",
					"DAMAGES RESULTING FROM THIRD-PARTY ACTIONS",
					"DAMAGES EXCEEDING THE AMOUNT PAID FOR OUR SERVICES IN THE PRECEDING 12 MONTHS",
				},
			},
			{
				Heading: "10. Indemnification",
				Paragraphs: []string{
					"You agree to indemnify and hold harmless Florian Technologies from any claims, damages, or expenses arising from your use of our services, violation of these Terms, or infringement of any third-party rights.",
				},
			},
			{
				Heading: "11. Termination",
				Paragraphs: []string{
					"We may terminate or suspend your access to our services immediately, without prior notice, for conduct that we believe violates these Terms or is harmful to other users or our business.",
					"Upon termination, your right to use our services ceases immediately. Provisions that by their nature should survive termination shall survive, including liability limitations and dispute resolution.",
				},
			},
			{
				Heading: "12. Governing Law and Dispute Resolution",
				Paragraphs: []string{
					"These Terms are governed by the laws of the Commonwealth of Massachusetts, without regard to conflict of law principles. Any disputes arising from these Terms shall be resolved through binding arbitration, except for claims related to intellectual property or emergency injunctive relief.",
				},
			},
			{
				Heading: "13. Changes to Terms",
				Paragraphs: []string{
					"We reserve the right to modify these Terms at any time. Material changes will be communicated through our website or direct notification. Continued use of our services after changes constitutes acceptance of the modified Terms.",
				},
			},
		},
		Contact: LegalContact{
			Heading: "14. Contact Information",
			Lead:    "If you have questions about these Terms of Service, please contact us:",
			Name:    "Florian Technologies",
			Email:   "legal@florian-technologies.com",
			Phone:   "+1 (555) 123-4567",
			Address: "123 Innovation Drive, Boston, MA 02115, USA",
		},
		Closing: "By using Florian Technologies services, you acknowledge that you have read, understood and agree to be bound by these Terms of Service and our Privacy Policy.",
	}
}

package content

const portraitURL = "https://api.dicebear.com/7.x/avataaars/svg?seed=kyrah&gender=female&hair=long&hairColor=black"

// Default returns the built-in portfolio content.
func Default() *Site {
	return &Site{
		Header: Header{
			Logo: "Kyrah",
			Nav: []NavItem{
				{Label: "About", Href: "#about"},
				{Label: "Education", Href: "#education"},
				{Label: "Skills", Href: "#skills"},
				{Label: "Experience", Href: "#experience"},
				{Label: "Certifications", Href: "#certifications"},
				{Label: "Contact", Href: "#contact"},
			},
		},
		Hero: Hero{
			Name:         "Kyrah",
			Title:        "SOFTWARE TESTER",
			Introduction: HeroIntroduction,
			PhotoURL:     portraitURL,
		},
		About: About{
			Title:    "About Me",
			Subtitle: "Software Tester & QA Enthusiast",
			Bio:      AboutBio,
			PhotoURL: portraitURL,
			Summary: []string{
				"Manual Testing – Writing and executing test cases",
				"Bug Tracking – Using Jira for issue reporting",
				"UI/UX Testing – Ensuring user-friendly applications",
				"Agile & QA Processes – Understanding workflows and best practices",
				"Excited to keep learning and improving! 🚀",
			},
		},
		Education: Education{
			Title:    "Education",
			Subtitle: "My academic journey and qualifications",
			Items: []EducationItem{
				{
					Degree:      "Bachelor of Science in Information Technology",
					Institution: "Pamantasan ng Lungsod ng Muntinlupa",
					Location:    "Población, Muntinlupa City",
					StartDate:   "2023",
					EndDate:     "2025",
					Description: "Focused on software testing and quality assurance. Currently learning manual testing, bug tracking, and exploring automation concepts.",
				},
				{
					Degree:      "Software Testing Certification",
					Institution: "Eduonix learning solution",
					Location:    "Online",
					EndDate:     "2025",
					Description: "Learn software testing certification course",
				},
				{
					Degree:      "Associate In Computer Technology",
					Institution: "University of Pamantasan Lungsod Ng Muntinlupa",
					Location:    "Población, Muntinlupa City",
					EndDate:     "2023",
					Description: "Associate in Computer Technology graduate with a passion for software development, troubleshooting, and testing.",
				},
				{
					Degree:      "Senior High School",
					Institution: "Zacarias Aquilizan Highschool",
					Location:    "General Academic Strand",
					StartDate:   "2019",
					EndDate:     "2021",
					Description: "Graduated with honors. Participated in computer science club and developed interest in software development.",
				},
			},
		},
		Skills: Skills{
			Title:    "Skills",
			Subtitle: "My technical expertise and proficiency levels in various testing domains",
			Categories: []SkillCategory{
				{Name: "Testing Tools", Icon: "test-tube", Skills: []Skill{
					{"Selenium", 90}, {"Cypress", 85}, {"JUnit", 80}, {"TestNG", 75},
				}},
				{Name: "Automation", Icon: "terminal", Skills: []Skill{
					{"Python", 85}, {"JavaScript", 80}, {"Java", 75}, {"Robot Framework", 70},
				}},
				{Name: "API Testing", Icon: "globe", Skills: []Skill{
					{"Postman", 90}, {"REST Assured", 85}, {"SoapUI", 75}, {"Swagger", 70},
				}},
				{Name: "Performance Testing", Icon: "server", Skills: []Skill{
					{"JMeter", 85}, {"LoadRunner", 75}, {"Gatling", 70}, {"K6", 65},
				}},
				{Name: "Database Testing", Icon: "database", Skills: []Skill{
					{"SQL", 85}, {"MongoDB", 75}, {"PostgreSQL", 70}, {"Oracle", 65},
				}},
				{Name: "Test Management", Icon: "file-search", Skills: []Skill{
					{"JIRA", 90}, {"TestRail", 85}, {"qTest", 75}, {"Zephyr", 70},
				}},
				{Name: "UI/UX Testing", Icon: "layout", Skills: []Skill{
					{"Accessibility Testing", 80}, {"Cross-browser Testing", 85},
					{"Responsive Design Testing", 80}, {"Visual Regression Testing", 75},
				}},
			},
		},
		Experience: Experiences{
			Title: "Experience",
			Entries: []Experience{
				{
					ID:          "1",
					Company:     "Pamantasan ng Lungsod ng Muntinlupa (PLMun)",
					Position:    "Software Tester (Bloodlink: A Mobile-Based Hybrid Blood Bank For Red Cross Muntinlupa Chapter)",
					Duration:    "May 2024 - March 2025",
					Description: BloodLinkDescription,
					Projects: []Project{{
						ID:           "101",
						Title:        "BloodLink: Mobile Blood Bank System",
						Description:  "Performed functional, UI, and usability testing to ensure system reliability and accessibility.",
						Technologies: []string{"Manual Testing", "JIRA", "Trello", "Android Testing"},
						Image:        "https://images.unsplash.com/photo-1563013544-824ae1b704d3?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
						Role:         "Software Tester",
						Duration:     "May 2024 - March 2025",
						Responsibilities: []string{
							"Wrote and executed functional and UI test cases",
							"Reported and tracked defects in JIRA",
							"Managed the test workflow on Trello",
						},
					}},
				},
				{
					ID:          "2",
					Company:     "Foundever",
					Position:    "Technical Support Representative",
					Duration:    "Nov 2024 - Jan 2025",
					Description: FoundeverDescription,
					Projects: []Project{{
						ID:           "201",
						Title:        "Technical Support",
						Description:  "Provided technical support and troubleshooting for customers.",
						Technologies: []string{"Customer Service", "Technical Support", "Troubleshooting"},
						Image:        "https://images.unsplash.com/photo-1576091160550-2173dba999ef?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
					}},
				},
				{
					ID:          "3",
					Company:     "Alorica Inc.",
					Position:    "Customer Service Representative",
					Duration:    "Sept 2023 - Sept 2024",
					Description: AloricaDescription,
					Projects: []Project{{
						ID:           "301",
						Title:        "Healthcare Customer Support",
						Description:  "Assisted customers with healthcare-related inquiries and prescription drug plans.",
						Technologies: []string{"Customer Service", "CRM", "Healthcare Support"},
						Image:        "https://images.unsplash.com/photo-1501504905252-473c47e087f8?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
					}},
				},
			},
		},
		Certifications: Certifications{
			Title:    "Certifications",
			Subtitle: "Professional qualifications and achievements",
			Items: []Certification{
				{
					ID:            "2",
					Title:         "Software Testing Certification",
					Organization:  "Eduonix Learning Solution",
					Date:          "2025",
					Logo:          Avatar("icons", "certification"),
					Description:   EduonixDescription,
					CredentialURL: "https://www.eduonix.com/certificate/b3625f8c65",
					Skills:        []string{"Test Planning", "Test Execution", "Defect Tracking", "QA Processes"},
				},
			},
		},
		Contact: Contact{
			Title:    "Let's Connect",
			Subtitle: ContactSubtitle,
			Email:    "kyrahpangilinan118@gmail.com",
		},
		Footer: Footer{
			Owner:   "KYRAH",
			Email:   "kyrahpangilinan118@gmail.com",
			Tagline: "Software Testing Professional • Quality Assurance Specialist",
			Links: SocialLinks{
				GitHub:    "https://github.com/Kirah7",
				LinkedIn:  "https://www.linkedin.com/in/kyrah-p-b2a669286/",
				Instagram: "https://www.instagram.com/khaih._/",
			},
		},
	}
}

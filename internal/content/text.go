package content

var (
	HeroIntroduction = `Passionate Software Tester dedicated to ensuring quality and seamless user experiences.
	Skilled in manual testing, bug tracking, and usability evaluation using Jira and Confluence.
	I love finding and fixing issues to make software better.`

	AboutBio = `Hi! I'm an aspiring Software Tester & QA Enthusiast, currently learning and building my skills
	in manual testing, bug tracking, and test case execution. I'm passionate about ensuring software quality and
	improving user experiences. As I continue to grow, I'm eager to apply my knowledge in real-world projects and
	collaborate with teams to deliver high-quality products.`

	BloodLinkDescription = `Conducted end-to-end testing for BloodLink: A Mobile-Based Hybrid Blood Bank system,
	ensuring seamless donor-recipient matching and efficient blood donation management. Tracked and reported
	defects using JIRA and managed test cases and workflow using Trello, improving system efficiency and usability.`

	FoundeverDescription = `Handled product inquiries, billing concerns, customer retention, upselling,
	technical support, troubleshooting, and sales of new services.`

	AloricaDescription = `Handled inbound calls, assisted with prescription drug plans, resolved healthcare-related
	issues, and documented interactions in CRM. Consistently exceeded performance targets and collaborated on
	process improvements.`

	EduonixDescription = `Gained foundational knowledge in software testing methodologies, including test planning,
	execution, and defect tracking. Developed skills in manual testing, QA processes, and bug reporting to ensure
	software quality.`

	ContactSubtitle = `I'd love to hear from you! Please fill out the form below and I'll get back to you as soon as possible.`
)

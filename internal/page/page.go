// Package page composes the portfolio view model from content, the
// visitor's interactive state and the render time.
package page

import (
	"time"

	"github.com/kyrah/portfolio/internal/contact"
	"github.com/kyrah/portfolio/internal/content"
	"github.com/kyrah/portfolio/internal/ui"
)

// SectionOrder is the fixed order of the page sections by anchor.
var SectionOrder = []string{"hero", "about", "education", "skills", "experience", "certifications", "contact"}

type HeaderView struct {
	Logo     string
	Nav      []content.NavItem
	MenuOpen bool
}

type ProjectView struct {
	content.Project
	Expanded   bool
	DialogOpen bool
}

type ExperienceView struct {
	content.Experience
	Expanded bool
	Projects []ProjectView
}

type ExperienceSection struct {
	Title   string
	Entries []ExperienceView
}

type CertificationView struct {
	content.Certification
	Expanded bool
}

// ShownSkills are the badges visible on the card: all of them when
// expanded, otherwise the first two.
func (c CertificationView) ShownSkills() []string {
	if c.Expanded || len(c.Skills) <= 2 {
		return c.Skills
	}
	return c.Skills[:2]
}

// HiddenSkills is the "+N" count on a collapsed card.
func (c CertificationView) HiddenSkills() int {
	return len(c.Skills) - len(c.ShownSkills())
}

type CertificationSection struct {
	Title    string
	Subtitle string
	Items    []CertificationView
	// Selected is non-nil exactly when the modal is open.
	Selected *content.Certification
}

type ContactSection struct {
	content.Contact
	Form   contact.Snapshot
	Notice *contact.Notice
}

type FooterView struct {
	content.Footer
	Year int
}

// View is the complete page.
type View struct {
	Header         HeaderView
	Hero           content.Hero
	About          content.About
	Education      content.Education
	Skills         content.Skills
	Experience     ExperienceSection
	Certifications CertificationSection
	Contact        ContactSection
	Footer         FooterView
}

// Compose builds the view. notice is the one-shot confirmation to show on
// this render, if any.
func Compose(site *content.Site, state ui.Snapshot, form contact.Snapshot, notice *contact.Notice, now time.Time) View {
	return View{
		Header:         Header(site, state),
		Hero:           site.Hero,
		About:          site.About,
		Education:      site.Education,
		Skills:         site.Skills,
		Experience:     Experience(site, state),
		Certifications: Certifications(site, state),
		Contact:        Contact(site, form, notice),
		Footer:         Footer(site, now),
	}
}

func Header(site *content.Site, state ui.Snapshot) HeaderView {
	return HeaderView{
		Logo:     site.Header.Logo,
		Nav:      site.Header.Nav,
		MenuOpen: state.Menu.IsOpen(),
	}
}

func Experience(site *content.Site, state ui.Snapshot) ExperienceSection {
	sec := ExperienceSection{Title: site.Experience.Title}
	for _, e := range site.Experience.Entries {
		sec.Entries = append(sec.Entries, ExperienceEntry(e, state))
	}
	return sec
}

func ExperienceEntry(e content.Experience, state ui.Snapshot) ExperienceView {
	v := ExperienceView{
		Experience: e,
		Expanded:   state.Experiences.Expanded(e.ID),
	}
	for _, p := range e.Projects {
		v.Projects = append(v.Projects, ProjectCard(p, state))
	}
	return v
}

func ProjectCard(p content.Project, state ui.Snapshot) ProjectView {
	card := state.Project(p.ID)
	return ProjectView{Project: p, Expanded: card.Expanded, DialogOpen: card.DialogOpen}
}

func Certifications(site *content.Site, state ui.Snapshot) CertificationSection {
	sec := CertificationSection{
		Title:    site.Certifications.Title,
		Subtitle: site.Certifications.Subtitle,
	}
	for _, c := range site.Certifications.Items {
		sec.Items = append(sec.Items, CertificationCard(c, state))
	}
	if c, ok := state.Certification.Selected(); ok {
		sec.Selected = &c
	}
	return sec
}

func CertificationCard(c content.Certification, state ui.Snapshot) CertificationView {
	return CertificationView{Certification: c, Expanded: state.CertificationCard(c.ID).Expanded}
}

func Contact(site *content.Site, form contact.Snapshot, notice *contact.Notice) ContactSection {
	return ContactSection{Contact: site.Contact, Form: form, Notice: notice}
}

// Footer stamps the copyright year from now.
func Footer(site *content.Site, now time.Time) FooterView {
	return FooterView{Footer: site.Footer, Year: now.Year()}
}

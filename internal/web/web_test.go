package web

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyrah/portfolio/internal/contact"
	"github.com/kyrah/portfolio/internal/content"
	"github.com/kyrah/portfolio/internal/page"
	"github.com/kyrah/portfolio/internal/ui"
)

func renderDoc(t *testing.T, name string, data any) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, name, data))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestTemplates_Parse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{
		"index.html", "header", "experience-card", "project-card",
		"certification-card", "certification-modal", "contact-form",
		"admin-login.html", "admin-dashboard.html", "privacy.html",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestIndex_SectionOrderAndFooter(t *testing.T) {
	site := content.Default()
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	view := page.Compose(site, ui.Snapshot{}, contact.Snapshot{}, nil, now)

	doc := renderDoc(t, "index.html", view)

	var ids []string
	doc.Find("main > section").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		ids = append(ids, id)
	})
	assert.Equal(t, page.SectionOrder, ids)

	assert.Equal(t, "© 2026 KYRAH. All rights reserved.", strings.TrimSpace(doc.Find(".copyright").Text()))
	assert.Equal(t, 0, doc.Find(".nav-mobile").Length(), "menu closed by default")
	assert.Equal(t, 0, doc.Find("#certification-modal .modal").Length(), "modal closed by default")
	assert.Equal(t, 0, doc.Find(".experience-projects").Length())
	assert.Equal(t, 6, doc.Find(".nav-desktop a").Length())
}

func TestIndex_EducationWithoutStartDate(t *testing.T) {
	site := content.Default()
	view := page.Compose(site, ui.Snapshot{}, contact.Snapshot{}, nil, time.Now())

	doc := renderDoc(t, "index.html", view)
	dates := doc.Find("#education .dates")
	require.Equal(t, 4, dates.Length())
	assert.Equal(t, "2023 - 2025", strings.TrimSpace(dates.Eq(0).Text()))
	assert.Equal(t, "2025", strings.TrimSpace(dates.Eq(1).Text()))
}

func TestHeader_OpenMenu(t *testing.T) {
	site := content.Default()
	vs := ui.NewViewState(time.Now())

	doc := renderDoc(t, "header", page.Header(site, vs.ToggleMenu()))
	assert.Equal(t, 6, doc.Find(".nav-mobile form").Length())
	v, _ := doc.Find(".nav-mobile input[name=href]").First().Attr("value")
	assert.Equal(t, "#about", v)
}

func TestExperienceCard_Expanded(t *testing.T) {
	site := content.Default()
	vs := ui.NewViewState(time.Now())
	exp, ok := site.FindExperience("1")
	require.True(t, ok)

	doc := renderDoc(t, "experience-card", page.ExperienceEntry(exp, vs.ToggleExperience("1")))
	assert.Contains(t, doc.Find("button").First().Text(), "Hide Projects")
	assert.Equal(t, 1, doc.Find("#project-101").Length())
	assert.Equal(t, 0, doc.Find(".project-detail").Length())

	doc = renderDoc(t, "project-card", page.ProjectCard(exp.Projects[0], vs.ToggleProject("101")))
	assert.Contains(t, doc.Find(".project-detail").Text(), "Role: Software Tester")
}

func TestProjectCard_Dialog(t *testing.T) {
	site := content.Default()
	vs := ui.NewViewState(time.Now())
	p, ok := site.FindProject("201")
	require.True(t, ok)

	doc := renderDoc(t, "project-card", page.ProjectCard(p, vs.OpenProjectDialog("201")))
	assert.Equal(t, "Technical Support", strings.TrimSpace(doc.Find("#project-201-title").Text()))
	assert.Equal(t, 0, doc.Find("form[action='/ui/projects/201/expand']").Length(), "no detail means no expand control")
}

func TestCertificationModal(t *testing.T) {
	site := content.Default()
	cert, ok := site.FindCertification("2")
	require.True(t, ok)

	doc := renderDoc(t, "certification-modal", &cert)
	assert.Equal(t, "Software Testing Certification", strings.TrimSpace(doc.Find("#certification-modal-title").Text()))
	href, _ := doc.Find(".credential-link").Attr("href")
	assert.Equal(t, cert.CredentialURL, href)

	cert.CredentialURL = ""
	doc = renderDoc(t, "certification-modal", &cert)
	assert.Equal(t, 0, doc.Find(".credential-link").Length(), "missing credential url omits the link")

	doc = renderDoc(t, "certification-modal", (*content.Certification)(nil))
	assert.Equal(t, 1, doc.Find("#certification-modal").Length())
	assert.Equal(t, 0, doc.Find(".modal").Length())
}

func TestCertificationCard_HiddenSkills(t *testing.T) {
	site := content.Default()
	cert, _ := site.FindCertification("2")

	doc := renderDoc(t, "certification-card", page.CertificationView{Certification: cert})
	assert.Equal(t, 2, doc.Find("span.tag").Length())
	assert.Equal(t, "+2", strings.TrimSpace(doc.Find(".tag-more").Text()))

	doc = renderDoc(t, "certification-card", page.CertificationView{Certification: cert, Expanded: true})
	assert.Equal(t, 4, doc.Find("span.tag").Length())
}

func TestContactForm_ErrorsAndNotice(t *testing.T) {
	site := content.Default()
	form := contact.Snapshot{
		Values: contact.Values{Name: "J", Email: "not-an-email", Message: "short"},
		Errors: contact.FieldErrors{
			contact.FieldName:    contact.NameTooShort,
			contact.FieldEmail:   contact.InvalidEmail,
			contact.FieldMessage: contact.MessageTooShort,
		},
	}

	doc := renderDoc(t, "contact-form", page.Contact(site, form, nil))
	errs := doc.Find(".field-error")
	require.Equal(t, 3, errs.Length())
	assert.Equal(t, "Name must be at least 2 characters.", errs.Eq(0).Text())
	val, _ := doc.Find("#contact-name").Attr("value")
	assert.Equal(t, "J", val)
	assert.Equal(t, 0, doc.Find(".toast").Length())

	notice := &contact.Notice{Title: "Message Sent!", Description: "Thanks"}
	doc = renderDoc(t, "contact-form", page.Contact(site, contact.Snapshot{}, notice))
	assert.Equal(t, "Message Sent!", doc.Find(".toast strong").Text())
	assert.Equal(t, 0, doc.Find(".field-error").Length())

	doc = renderDoc(t, "contact-form", page.Contact(site, contact.Snapshot{Submitting: true}, nil))
	_, disabled := doc.Find("button[type=submit]").Attr("disabled")
	assert.True(t, disabled)
	assert.Contains(t, doc.Find("button[type=submit]").Text(), "Sending...")
}

func TestFooter_OmitsMissingLinks(t *testing.T) {
	footer := page.FooterView{Footer: content.Footer{Owner: "KYRAH"}, Year: 2026}

	doc := renderDoc(t, "footer", footer)
	assert.Equal(t, 0, doc.Find(".social a").Length())
	assert.Equal(t, 0, doc.Find(".tagline").Length())
}

func TestStatic(t *testing.T) {
	css, err := fs.ReadFile(Static(), "site.css")
	require.NoError(t, err)
	assert.Contains(t, string(css), "--rose")
}

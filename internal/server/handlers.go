package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kyrah/portfolio/internal/contact"
	"github.com/kyrah/portfolio/internal/page"
	"github.com/kyrah/portfolio/internal/ui"
)

func (s *Server) setupPageRoutes(r *gin.Engine) {
	r.GET("/", s.withSession(false), s.index)
	r.GET("/contact-form", s.withSession(false), s.contactForm)

	g := r.Group("/", s.withSession(true))

	g.POST("/ui/menu/toggle", s.toggleMenu)
	g.POST("/ui/nav/select", s.selectNav)
	g.POST("/ui/experience/:id/toggle", s.toggleExperience)
	g.POST("/ui/projects/:id/expand", s.toggleProject)
	g.POST("/ui/projects/:id/dialog", s.openProjectDialog)
	g.DELETE("/ui/projects/:id/dialog", s.closeProjectDialog)
	g.POST("/ui/projects/:id/dialog/close", s.closeProjectDialog)
	g.POST("/ui/certifications/:id/expand", s.toggleCertificationCard)
	g.POST("/ui/certifications/:id/open", s.openCertification)
	g.POST("/ui/certifications/close", s.closeCertification)

	g.POST("/contact/field", s.contactField)
	g.POST("/contact", s.submitContact)

	r.GET("/privacy", s.privacy)
}

func (s *Server) index(c *gin.Context) {
	vs, ok := lookupState(c)
	if !ok {
		c.HTML(http.StatusOK, "index.html", page.Compose(s.site, ui.Snapshot{}, contact.Snapshot{}, nil, s.now()))
		return
	}
	notice := vs.Contact.TakeNotice()
	view := page.Compose(s.site, vs.Snapshot(), vs.Contact.Snapshot(), notice, s.now())
	c.HTML(http.StatusOK, "index.html", view)
}

func (s *Server) toggleMenu(c *gin.Context) {
	snap := state(c).ToggleMenu()
	s.track(c, "menu", "toggle", "")
	respond(c, "header", page.Header(s.site, snap), "")
}

func (s *Server) selectNav(c *gin.Context) {
	href := c.PostForm("href")
	anchor := ""
	for _, item := range s.site.Header.Nav {
		if item.Href == href {
			anchor = strings.TrimPrefix(href, "#")
			break
		}
	}

	snap := state(c).SelectNav()
	s.track(c, "menu", "select", anchor)
	respond(c, "header", page.Header(s.site, snap), anchor)
}

func (s *Server) toggleExperience(c *gin.Context) {
	id := c.Param("id")
	exp, ok := s.site.FindExperience(id)
	if !ok {
		notFound(c)
		return
	}

	snap := state(c).ToggleExperience(id)
	s.track(c, "experience", "toggle", id)
	respond(c, "experience-card", page.ExperienceEntry(exp, snap), "experience-"+id)
}

func (s *Server) toggleProject(c *gin.Context) {
	id := c.Param("id")
	p, ok := s.site.FindProject(id)
	if !ok {
		notFound(c)
		return
	}

	snap := state(c).ToggleProject(id)
	s.track(c, "projects", "expand", id)
	respond(c, "project-card", page.ProjectCard(p, snap), "project-"+id)
}

func (s *Server) openProjectDialog(c *gin.Context) {
	id := c.Param("id")
	p, ok := s.site.FindProject(id)
	if !ok {
		notFound(c)
		return
	}

	snap := state(c).OpenProjectDialog(id)
	s.track(c, "projects", "open", id)
	respond(c, "project-card", page.ProjectCard(p, snap), "project-"+id)
}

func (s *Server) closeProjectDialog(c *gin.Context) {
	id := c.Param("id")
	p, ok := s.site.FindProject(id)
	if !ok {
		notFound(c)
		return
	}

	snap := state(c).CloseProjectDialog(id)
	respond(c, "project-card", page.ProjectCard(p, snap), "project-"+id)
}

func (s *Server) toggleCertificationCard(c *gin.Context) {
	id := c.Param("id")
	cert, ok := s.site.FindCertification(id)
	if !ok {
		notFound(c)
		return
	}

	snap := state(c).ToggleCertificationCard(id)
	s.track(c, "certifications", "expand", id)
	respond(c, "certification-card", page.CertificationCard(cert, snap), "certification-"+id)
}

func (s *Server) openCertification(c *gin.Context) {
	id := c.Param("id")
	cert, ok := s.site.FindCertification(id)
	if !ok {
		notFound(c)
		return
	}

	snap := state(c).OpenCertification(cert)
	s.track(c, "certifications", "open", id)
	respond(c, "certification-modal", page.Certifications(s.site, snap).Selected, "certifications")
}

func (s *Server) closeCertification(c *gin.Context) {
	snap := state(c).CloseCertification()
	respond(c, "certification-modal", page.Certifications(s.site, snap).Selected, "certifications")
}

// contactForm serves the form on its own for HTMX swaps.
func (s *Server) contactForm(c *gin.Context) {
	vs, ok := lookupState(c)
	if !ok {
		c.HTML(http.StatusOK, "contact-form", page.Contact(s.site, contact.Snapshot{}, nil))
		return
	}
	form := vs.Contact
	notice := form.TakeNotice()
	c.HTML(http.StatusOK, "contact-form", page.Contact(s.site, form.Snapshot(), notice))
}

// contactField records a live edit. The value is read from "value" or,
// as HTMX posts it, from the input's own name.
func (s *Server) contactField(c *gin.Context) {
	field := c.PostForm("field")
	value, ok := c.GetPostForm("value")
	if !ok {
		value = c.PostForm(field)
	}

	if err := state(c).Contact.Set(field, value); err != nil {
		if errors.Is(err, contact.ErrUnknownField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown field"})
			return
		}
		s.log.Error("error updating contact field", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// submitContact validates and submits the form. The request is held for
// the simulated delay, so an HTMX caller receives the finished form with
// its confirmation. A submit arriving while another is in flight gets the
// disabled form with 200 so htmx swaps it in.
func (s *Server) submitContact(c *gin.Context) {
	var v contact.Values
	if err := c.ShouldBind(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed form"})
		return
	}

	form := state(c).Contact
	errs, err := s.submitter.Submit(form, v)
	switch {
	case errors.Is(err, contact.ErrSubmitting):
		s.log.Debug("contact form already submitting")
	case err != nil:
		s.log.Error("error submitting contact form", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	case errs != nil:
		s.track(c, "contact", "invalid", strings.Join(errs.Fields(), ","))
	default:
		s.track(c, "contact", "submit", "")
	}

	if !isHTMX(c) {
		c.Redirect(http.StatusSeeOther, "/#contact")
		return
	}
	notice := form.TakeNotice()
	c.HTML(http.StatusOK, "contact-form", page.Contact(s.site, form.Snapshot(), notice))
}

func notFound(c *gin.Context) {
	c.String(http.StatusNotFound, "not found")
}

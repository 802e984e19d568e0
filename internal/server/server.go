// Package server wires the portfolio routes onto a gin engine.
package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kyrah/portfolio/internal/analytics"
	"github.com/kyrah/portfolio/internal/config"
	"github.com/kyrah/portfolio/internal/contact"
	"github.com/kyrah/portfolio/internal/content"
	"github.com/kyrah/portfolio/internal/ui"
	"github.com/kyrah/portfolio/internal/web"
)

const (
	sessionCookie = "portfolio_session"
	stateKey      = "view_state"
)

// Options are the collaborators a Server is built from. Store and Recorder
// are nil when analytics is disabled.
type Options struct {
	Config    *config.Config
	Site      *content.Site
	Sessions  *ui.Sessions
	Submitter *contact.Submitter
	Store     *analytics.Store
	Recorder  *analytics.Recorder
	Logger    *zap.Logger
	Now       func() time.Time
}

type Server struct {
	cfg       *config.Config
	site      *content.Site
	sessions  *ui.Sessions
	submitter *contact.Submitter
	store     *analytics.Store
	recorder  *analytics.Recorder
	log       *zap.Logger
	now       func() time.Time

	adminPassword string
	engine        *gin.Engine
}

func New(opts Options) *Server {
	s := &Server{
		cfg:       opts.Config,
		site:      opts.Site,
		sessions:  opts.Sessions,
		submitter: opts.Submitter,
		store:     opts.Store,
		recorder:  opts.Recorder,
		log:       opts.Logger,
		now:       opts.Now,
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.submitter == nil {
		s.submitter = contact.NewSubmitter(s.cfg.Contact.SubmitDelay, nil, s.log)
	}

	s.initAdmin()

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), s.visitorTracking())
	r.SetHTMLTemplate(web.MustTemplates())
	r.StaticFS("/static", http.FS(web.Static()))

	r.GET("/healthz", s.health)
	s.setupPageRoutes(r)
	s.setupAdminRoutes(r)

	s.engine = r
	return s
}

// Handler is the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"sessions": s.sessions.Len(),
	})
}

// requestLogger logs one line per request through zap.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.Bool("htmx", isHTMX(c)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			s.log.Error("request", fields...)
		case strings.HasPrefix(c.Request.URL.Path, "/static/"):
			s.log.Debug("request", fields...)
		default:
			s.log.Info("request", fields...)
		}
	}
}

// visitorTracking records page views with hashed addresses. Static assets,
// admin pages and requests carrying DNT are skipped.
func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if s.recorder == nil ||
			c.Request.Method != http.MethodGet ||
			strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/admin/") ||
			strings.HasPrefix(path, "/favicon") ||
			strings.HasPrefix(path, "/privacy") ||
			path == "/healthz" ||
			doNotTrack(c) {
			c.Next()
			return
		}

		err := s.recorder.Visit(analytics.Visit{
			HashedIP:  s.hashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Timestamp: s.now(),
		})
		if err != nil {
			s.log.Debug("visit not recorded", zap.Error(err))
		}
		c.Next()
	}
}

// track records a click on an interactive control.
func (s *Server) track(c *gin.Context, section, action, target string) {
	if s.recorder == nil || doNotTrack(c) {
		return
	}
	err := s.recorder.Interaction(analytics.Interaction{
		Section:   section,
		Action:    action,
		Target:    target,
		HashedIP:  s.hashIP(c.ClientIP()),
		Timestamp: s.now(),
	})
	if err != nil {
		s.log.Debug("interaction not recorded", zap.Error(err))
	}
}

// withSession attaches the visitor's view state. A missing or expired
// session is replaced with a new one only when create is set, so plain page
// reads never allocate state. The cookie is reissued on every hit to follow
// the sliding TTL.
func (s *Server) withSession(create bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")

		id, err := c.Cookie(sessionCookie)
		if err == nil {
			if vs, ok := s.sessions.Get(id); ok {
				s.setSessionCookie(c, id, int(s.cfg.Sessions.TTL.Seconds()))
				c.Set(stateKey, vs)
				c.Next()
				return
			}
		}

		switch {
		case create:
			id, vs := s.sessions.New()
			s.setSessionCookie(c, id, int(s.cfg.Sessions.TTL.Seconds()))
			c.Set(stateKey, vs)
		case err == nil:
			s.setSessionCookie(c, "", -1)
		}
		c.Next()
	}
}

func (s *Server) setSessionCookie(c *gin.Context, id string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, id, maxAge, "/", "", c.Request.TLS != nil, true)
}

// state returns the view state set by withSession(true).
func state(c *gin.Context) *ui.ViewState {
	return c.MustGet(stateKey).(*ui.ViewState)
}

// lookupState returns the visitor's view state if they already have one.
func lookupState(c *gin.Context) (*ui.ViewState, bool) {
	v, ok := c.Get(stateKey)
	if !ok {
		return nil, false
	}
	return v.(*ui.ViewState), true
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

func doNotTrack(c *gin.Context) bool {
	return c.GetHeader("DNT") == "1"
}

// respond renders the fragment for HTMX requests. Plain form posts are sent
// back to the full page at anchor.
func respond(c *gin.Context, name string, data any, anchor string) {
	if isHTMX(c) {
		c.HTML(http.StatusOK, name, data)
		return
	}
	target := "/"
	if anchor != "" {
		target += "#" + anchor
	}
	c.Redirect(http.StatusSeeOther, target)
}

package server

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminCookie = "admin_token"
	// devAdminPassword is accepted only in debug mode when no password is set.
	devAdminPassword = "admin123"
)

type adminClaims struct {
	jwt.RegisteredClaims
}

func (s *Server) initAdmin() {
	a := s.cfg.Admin
	switch {
	case a.Enabled():
		s.log.Info("admin access available at /admin/login")
	case s.cfg.Mode == gin.DebugMode:
		s.adminPassword = devAdminPassword
		s.log.Warn("using default admin password, set ADMIN_PASSWORD or ADMIN_PASSWORD_HASH")
	default:
		s.log.Info("admin login disabled, no admin password configured")
	}
	if s.store != nil {
		s.log.Info("visitor tracking enabled with hashed IP addresses")
	}
}

// checkCredentials compares in constant time, or with bcrypt when a hash
// is configured.
func (s *Server) checkCredentials(username, password string) bool {
	a := s.cfg.Admin
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.Username)) == 1

	switch {
	case a.PasswordHash != "":
		err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
		return userOK && err == nil
	case a.Password != "":
		return userOK && subtle.ConstantTimeCompare([]byte(password), []byte(a.Password)) == 1
	case s.adminPassword != "":
		return userOK && subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	default:
		return false
	}
}

func (s *Server) issueAdminToken() (string, error) {
	now := s.now()
	claims := adminClaims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   s.cfg.Admin.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Admin.TokenTTL)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Admin.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign admin token: %w", err)
	}
	return token, nil
}

func (s *Server) validAdminToken(raw string) bool {
	if raw == "" {
		return false
	}
	var claims adminClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return []byte(s.cfg.Admin.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return false
	}
	return claims.Subject == s.cfg.Admin.Username
}

func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !s.validAdminToken(token) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{"title": "Admin Login"})
	})
	r.POST("/admin/login", s.adminLogin)
	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", c.Request.TLS != nil, true)
		s.log.Info("admin logout", zap.String("visitor", s.hashIP(c.ClientIP())))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin", s.adminAuth())
	admin.GET("/dashboard", s.adminDashboard)
	admin.GET("/api/stats", s.adminStats)
	admin.GET("/export/stats", s.adminExport)
	admin.POST("/privacy/delete-visitor-data", s.adminCleanup)
}

func (s *Server) adminLogin(c *gin.Context) {
	if !s.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
		s.log.Warn("failed admin login attempt", zap.String("visitor", s.hashIP(c.ClientIP())))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := s.issueAdminToken()
	if err != nil {
		s.log.Error("error issuing admin token", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Login failed"})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(adminCookie, token, int(s.cfg.Admin.TokenTTL.Seconds()), "/admin", "", c.Request.TLS != nil, true)
	s.log.Info("admin login successful", zap.String("visitor", s.hashIP(c.ClientIP())))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

var errAnalyticsDisabled = errors.New("analytics is disabled")

func (s *Server) adminDashboard(c *gin.Context) {
	if s.store == nil {
		c.HTML(http.StatusServiceUnavailable, "admin-error.html", gin.H{"error": "Analytics is disabled"})
		return
	}
	stats, err := s.store.Stats(c.Request.Context())
	if err != nil {
		s.log.Error("error loading admin stats", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Failed to load statistics"})
		return
	}
	c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
		"stats":    stats,
		"sessions": s.sessions.Len(),
	})
}

func (s *Server) adminStats(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": errAnalyticsDisabled.Error()})
		return
	}
	stats, err := s.store.Stats(c.Request.Context())
	if err != nil {
		s.log.Error("error loading admin stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) adminExport(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": errAnalyticsDisabled.Error()})
		return
	}
	stats, err := s.store.Stats(c.Request.Context())
	if err != nil {
		s.log.Error("error exporting admin stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
	s.log.Info("admin stats exported", zap.String("visitor", s.hashIP(c.ClientIP())))
	c.JSON(http.StatusOK, stats)
}

// adminCleanup applies the retention policy now instead of waiting for the
// next scheduled sweep.
func (s *Server) adminCleanup(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": errAnalyticsDisabled.Error()})
		return
	}
	removed, err := s.store.Cleanup(c.Request.Context(), s.cfg.Analytics.Retention)
	if err != nil {
		s.log.Error("error cleaning up visitor data", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
		return
	}
	s.log.Info("privacy cleanup", zap.Int64("removed", removed))
	c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "removed": removed})
}

func (s *Server) privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", gin.H{
		"title":     "Privacy Policy",
		"retention": retentionText(s.cfg.Analytics.Retention),
	})
}

func (s *Server) hashIP(ip string) string {
	if s.store == nil {
		return ""
	}
	return s.store.HashIP(ip)
}

// retentionText phrases a retention period for the privacy page.
func retentionText(d time.Duration) string {
	days := int(d.Hours() / 24)
	switch {
	case days >= 60:
		return fmt.Sprintf("%d months", days/30)
	case days == 1:
		return "1 day"
	case days > 1:
		return fmt.Sprintf("%d days", days)
	default:
		return d.String()
	}
}

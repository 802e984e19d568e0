package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kyrah/portfolio/internal/analytics"
	"github.com/kyrah/portfolio/internal/config"
	"github.com/kyrah/portfolio/internal/contact"
	"github.com/kyrah/portfolio/internal/content"
)

func TestRenderPage(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, renderPage(&buf, content.Default(), now))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, 7, doc.Find("main > section").Length())
	assert.Equal(t, "© 2030 KYRAH. All rights reserved.", strings.TrimSpace(doc.Find(".copyright").Text()))
	assert.Equal(t, 0, doc.Find(".toast").Length())
}

func TestRenderCommand_File(t *testing.T) {
	out := filepath.Join(t.TempDir(), "index.html")
	t.Setenv("PORTFOLIO_CONTENT", "")
	rootCmd.SetArgs([]string{"render", "--out", out})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		renderOut = "-"
	})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	body, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(body), `id="certifications"`)
}

func TestNewLogger(t *testing.T) {
	for _, mode := range []string{gin.ReleaseMode, gin.DebugMode} {
		log, err := newLogger(mode)
		require.NoError(t, err, mode)
		assert.NotNil(t, log)
	}
}

func TestNewDelivery(t *testing.T) {
	cfg := &config.Config{Contact: config.ContactConfig{Delivery: config.DeliveryLog}}
	assert.IsType(t, &contact.LogDelivery{}, newDelivery(cfg, zap.NewNop()))

	cfg.Contact.Delivery = config.DeliverySMTP
	assert.IsType(t, &contact.SMTPDelivery{}, newDelivery(cfg, zap.NewNop()))
}

func TestRunRetention(t *testing.T) {
	store, err := analytics.Open(context.Background(), filepath.Join(t.TempDir(), "a.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.RecordVisit(ctx, analytics.Visit{HashedIP: "old", Timestamp: time.Now().AddDate(-2, 0, 0)}))
	require.NoError(t, store.RecordVisit(ctx, analytics.Visit{HashedIP: "new", Timestamp: time.Now()}))

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		runRetention(ctx, store, 365*24*time.Hour, zap.NewNop())
	}()

	require.Eventually(t, func() bool {
		visits, err := store.RecentVisits(context.Background(), 10)
		return err == nil && len(visits) == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

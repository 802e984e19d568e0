package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kyrah/portfolio/internal/config"
	"github.com/kyrah/portfolio/internal/contact"
	"github.com/kyrah/portfolio/internal/content"
	"github.com/kyrah/portfolio/internal/page"
	"github.com/kyrah/portfolio/internal/ui"
	"github.com/kyrah/portfolio/internal/web"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the page in its initial state as static HTML",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "-", "output file, - for stdout")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	site, err := content.Load(cfg.ContentPath)
	if err != nil {
		return err
	}

	if renderOut == "-" {
		return renderPage(cmd.OutOrStdout(), site, time.Now())
	}

	f, err := os.Create(renderOut)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := renderPage(f, site, time.Now()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// renderPage writes the full page with every control in its default state.
func renderPage(w io.Writer, site *content.Site, now time.Time) error {
	view := page.Compose(site, ui.Snapshot{}, contact.Snapshot{}, nil, now)
	if err := web.Render(w, "index.html", view); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mgwunna/portfolio/internal/export"
	"github.com/mgwunna/portfolio/internal/logger"
	"github.com/mgwunna/portfolio/internal/sources/content"
	"github.com/mgwunna/portfolio/internal/view"
)

func newBuildCmd(c *cli) *cobra.Command {
	var (
		outDir      string
		contentFile string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the site to static HTML files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if contentFile == "" {
				contentFile = c.cfg.ContentFile
			}
			return c.build(outDir, contentFile)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "output directory")
	cmd.Flags().StringVar(&contentFile, "content", "", "path to site.yaml (defaults to PORTFOLIO_CONTENT_FILE, then the embedded content)")
	return cmd
}

func (c *cli) build(outDir, contentFile string) error {
	loader := content.NewLoader(contentFile)
	siteConfig, err := loader.Load()
	if err != nil {
		return err
	}

	mapper := content.NewMapper(time.Now)
	pages, err := mapper.MapPages(siteConfig)
	if err != nil {
		return fmt.Errorf("failed to map pages: %w", err)
	}

	c.log.Info("building static site",
		logger.String("source", loader.Source()),
		logger.Int("pages", len(pages)))

	builder := export.NewBuilder(view.NewRenderer(time.Now, c.cfg.StylesheetURL), c.log)
	if _, err := builder.Build(outDir, mapper.MapSite(siteConfig), pages); err != nil {
		return fmt.Errorf("static build failed: %w", err)
	}
	return nil
}

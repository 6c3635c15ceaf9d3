package main

import (
	"fmt"
	"time"

	"github.com/ajablonski/newsclip"
	"github.com/ajablonski/newsclip/feed"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	filter := newsclip.ArticleFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.SourceName = &c.Source
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	exporter := feed.NewExporter(c.Title, c.Link, "Articles curated by newsclip")
	out, err := exporter.Export(articles, time.Now().UTC())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}

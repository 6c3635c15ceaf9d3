package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/ajablonski/newsclip"
	"github.com/ajablonski/newsclip/harvest"
	"github.com/ajablonski/newsclip/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Articles  newsclip.ArticleService
	Harvester *harvest.Harvester
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Harvest HarvestCmd `cmd:"" help:"Harvest articles from configured sources"`
	List    ListCmd    `cmd:"" help:"List stored articles"`
	Export  ExportCmd  `cmd:"" help:"Export stored articles as an RSS digest"`
	Purge   PurgeCmd   `cmd:"" help:"Delete stored articles"`
}

// HarvestCmd is the "harvest" subcommand.
type HarvestCmd struct {
	Limit       int    `short:"l" default:"20" help:"Total article limit across all sources"`
	Sources     string `short:"s" help:"Path to a JSON sources file (defaults to built-in sources)"`
	Enrich      bool   `short:"e" help:"Fetch article pages for full content, images, and insights"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent enrichment limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Source string `help:"Only show articles from this source"`
	Limit  int    `short:"l" default:"50" help:"Maximum articles to show"`
	Full   bool   `help:"Show summaries and insights"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Source string `help:"Only export articles from this source"`
	Limit  int    `short:"l" default:"50" help:"Maximum articles to export"`
	Title  string `default:"newsclip digest" help:"Feed title"`
	Link   string `default:"https://github.com/ajablonski/newsclip" help:"Feed link"`
}

// PurgeCmd is the "purge" subcommand.
type PurgeCmd struct {
	Source string `help:"Only delete articles from this source"`
	Force  bool   `help:"Confirm deletion"`
}

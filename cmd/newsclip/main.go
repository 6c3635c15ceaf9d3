package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ajablonski/newsclip"
	"github.com/ajablonski/newsclip/feed"
	"github.com/ajablonski/newsclip/gemini"
	"github.com/ajablonski/newsclip/goquery"
	"github.com/ajablonski/newsclip/harvest"
	"github.com/ajablonski/newsclip/htmltomarkdown"
	cliphttp "github.com/ajablonski/newsclip/http"
	clipslog "github.com/ajablonski/newsclip/slog"
	"github.com/ajablonski/newsclip/sqlite"
	"github.com/ajablonski/newsclip/trafilatura"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	ArticleService newsclip.ArticleService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newsclip"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newsclip --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set NEWSCLIP_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ArticleService = clipslog.NewLoggingArticleService(sqlite.NewArticleService(m.DB), logger)
	deps.DB = m.DB
	deps.Articles = m.ArticleService

	if cmd == "harvest" {
		fetcher := clipslog.NewLoggingFetcher(cliphttp.NewFetcher(), logger)
		defer fetcher.Close()

		harvester := &harvest.Harvester{
			Fetcher:     fetcher,
			Extractor:   goquery.NewExtractor(),
			Feeds:       feed.NewCollector(fetcher),
			Articles:    m.ArticleService,
			Limiter:     harvest.NewOriginLimiter(1.0),
			Logger:      logger,
			Concurrency: cli.Harvest.Concurrency,
		}

		if cli.Harvest.Enrich {
			harvester.Contents = trafilatura.NewExtractor()
			harvester.Converter = htmltomarkdown.NewConverter()
			harvester.Images = goquery.NewImageExtractor()

			if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
				client, err := genai.NewClient(ctx, &genai.ClientConfig{
					APIKey:  apiKey,
					Backend: genai.BackendGeminiAPI,
				})
				if err != nil {
					fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
					return fmt.Errorf("failed to connect to Gemini API: %w", err)
				}
				harvester.Generator = gemini.NewGenerator(client)
			}
		}

		deps.Harvester = harvester
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("NEWSCLIP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "newsclip.db"
	}
	dir := filepath.Join(home, ".newsclip")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "newsclip.db")
}

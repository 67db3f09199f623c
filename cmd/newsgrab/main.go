package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/newsgrab/newsgrab"
	"github.com/newsgrab/newsgrab/dateparse"
	"github.com/newsgrab/newsgrab/goquery"
	"github.com/newsgrab/newsgrab/htmltomarkdown"
	newshttp "github.com/newsgrab/newsgrab/http"
	"github.com/newsgrab/newsgrab/scrape"
	newsslog "github.com/newsgrab/newsgrab/slog"
	"github.com/newsgrab/newsgrab/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Logger receives operational log lines. Defaults to a text handler
	// on stderr.
	Logger *slog.Logger
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: m.Logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newsgrab"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newsgrab --help' to see available commands")
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

	m.wireServices(deps, commandConfig(kongCtx.Command(), cli))

	return kongCtx.Run(deps)
}

// wireServices builds the scraping services from the selected command's
// configuration.
func (m *Main) wireServices(deps *Dependencies, cfg config) {
	var fetcher newsgrab.Fetcher = newshttp.NewFetcher()
	fetcher = newsslog.NewLoggingFetcher(fetcher, m.Logger)

	var sitemaps newsgrab.SitemapService = newshttp.NewSitemapService(nil)
	sitemaps = newsslog.NewLoggingSitemapService(sitemaps, m.Logger)

	var limiter newsgrab.DomainLimiter
	if cfg.RPS > 0 {
		limiter = scrape.NewDomainLimiter(cfg.RPS)
	}

	dates := dateparse.NewNormalizer()

	deps.Scraper = &scrape.Scraper{
		Fetcher:     fetcher,
		Profiles:    goquery.NewRegistry(),
		Discoverer:  goquery.NewLinkDiscoverer(),
		Extractor:   goquery.NewArticleExtractor(dates),
		Sitemaps:    sitemaps,
		Limiter:     limiter,
		Logger:      m.Logger,
		MaxArticles: cfg.MaxArticles,
		Timeout:     cfg.Timeout,
	}

	deps.Articles = &scrape.ArticleService{
		Fetcher:   fetcher,
		Generic:   goquery.NewGenericExtractor(dates),
		Fallback:  trafilatura.NewExtractor(),
		Converter: htmltomarkdown.NewConverter(),
		Limiter:   limiter,
		Logger:    m.Logger,
		Timeout:   cfg.Timeout,
	}
}

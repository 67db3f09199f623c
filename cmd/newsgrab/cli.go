package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/newsgrab/newsgrab/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Scraper  *scrape.Scraper
	Articles *scrape.ArticleService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve   ServeCmd   `cmd:"" help:"Run the scraping HTTP API server"`
	Scrape  ScrapeCmd  `cmd:"" help:"Scrape articles from a news list page"`
	Article ArticleCmd `cmd:"" help:"Extract a single article from a page"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr        string        `default:":8080" help:"Listen address"`
	MaxArticles int           `default:"10" help:"Maximum articles per request"`
	Timeout     time.Duration `default:"60s" help:"Per-request pipeline deadline"`
	RPS         float64       `name:"rps" default:"0" help:"Per-domain requests per second (0 disables rate limiting)"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL         string        `arg:"" help:"News list page URL"`
	MaxArticles int           `default:"10" help:"Maximum articles to extract"`
	Timeout     time.Duration `default:"60s" help:"Pipeline deadline"`
	RPS         float64       `name:"rps" default:"0" help:"Per-domain requests per second (0 disables rate limiting)"`
}

// ArticleCmd is the "article" subcommand.
type ArticleCmd struct {
	URL      string        `arg:"" help:"Article page URL"`
	Markdown bool          `short:"m" help:"Render the body as Markdown"`
	Timeout  time.Duration `default:"60s" help:"Extraction deadline"`
}

// config carries the scraping options of the selected command.
type config struct {
	MaxArticles int
	Timeout     time.Duration
	RPS         float64
}

// commandConfig returns the flag values of the command kong selected.
// Kong populates defaults for every command in the grammar, so reading
// flags from an unselected command would silently shadow the flags the
// user actually set.
func commandConfig(command string, cli *CLI) config {
	name, _, _ := strings.Cut(command, " ")
	switch name {
	case "serve":
		return config{
			MaxArticles: cli.Serve.MaxArticles,
			Timeout:     cli.Serve.Timeout,
			RPS:         cli.Serve.RPS,
		}
	case "scrape":
		return config{
			MaxArticles: cli.Scrape.MaxArticles,
			Timeout:     cli.Scrape.Timeout,
			RPS:         cli.Scrape.RPS,
		}
	case "article":
		return config{
			MaxArticles: scrape.DefaultMaxArticles,
			Timeout:     cli.Article.Timeout,
		}
	}
	return config{
		MaxArticles: scrape.DefaultMaxArticles,
		Timeout:     scrape.DefaultTimeout,
	}
}

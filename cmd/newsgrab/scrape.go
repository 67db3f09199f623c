package main

import (
	"encoding/json"
	"fmt"

	"github.com/newsgrab/newsgrab"
)

// Run executes the scrape command, printing the articles as JSON.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	articles, err := deps.Scraper.ScrapeList(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsgrab.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(articles)
}

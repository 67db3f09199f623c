package main

import (
	"encoding/json"
	"fmt"

	"github.com/newsgrab/newsgrab"
)

// Run executes the article command, printing the record as JSON.
func (c *ArticleCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.Extract(deps.Ctx, c.URL, c.Markdown)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsgrab.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(article)
}

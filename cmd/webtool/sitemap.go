package main

import (
	"fmt"
	"regexp"

	"github.com/flyingcloud-code/mcp"
)

// Run executes the sitemap command.
func (c *SitemapCmd) Run(deps *Dependencies) error {
	// Compile filters to URLFilter (validates regex patterns early)
	var urlFilter *mcp.URLFilter
	if len(c.Filter) > 0 {
		urlFilter = &mcp.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
	}

	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL, urlFilter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mcp.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintf(deps.Stdout, "No sitemap URLs found for %q.\n", c.URL)
		return nil
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}

	return nil
}

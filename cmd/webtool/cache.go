package main

import (
	"fmt"

	"github.com/flyingcloud-code/mcp"
	"github.com/flyingcloud-code/mcp/tools"
)

// requireCache reports an error when caching is disabled.
func requireCache(deps *Dependencies) error {
	if deps.Cache == nil {
		fmt.Fprintf(deps.Stderr, "error: caching is disabled (WEBTOOL_CACHE=off)\n")
		return mcp.Errorf(mcp.EINVALID, "caching is disabled")
	}
	return nil
}

// Run executes the cache ls command.
func (c *CacheLsCmd) Run(deps *Dependencies) error {
	if err := requireCache(deps); err != nil {
		return err
	}

	filter := mcp.DocumentFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}
	if c.Format != "" {
		format, err := mcp.ParseFormat(c.Format)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", mcp.ErrorMessage(err))
			return err
		}
		filter.Format = &format
	}

	docs, err := deps.Cache.ListDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mcp.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "Cache is empty. Use 'webtool content <url>' to fetch a page.")
		return nil
	}

	for _, doc := range docs {
		fmt.Fprintf(deps.Stdout, "%s  %-8s  %s\n",
			doc.FetchedAt.Format("2006-01-02 15:04"), doc.Format, doc.URL)
	}

	return nil
}

// Run executes the cache rm command.
func (c *CacheRmCmd) Run(deps *Dependencies) error {
	if err := requireCache(deps); err != nil {
		return err
	}

	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm removal\n")
		return mcp.Errorf(mcp.EINVALID, "use --force to confirm removal")
	}

	if err := deps.Cache.DeleteDocument(deps.Ctx, c.URL); err != nil {
		if mcp.ErrorCode(err) == mcp.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: nothing cached for %q. Use 'webtool cache ls' to see cached URLs.\n", c.URL)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", mcp.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed cached content for %q\n", c.URL)
	return nil
}

// Run executes the cache purge command.
func (c *CachePurgeCmd) Run(deps *Dependencies) error {
	if err := requireCache(deps); err != nil {
		return err
	}

	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm purge\n")
		return mcp.Errorf(mcp.EINVALID, "use --force to confirm purge")
	}

	n, err := deps.Cache.PurgeDocuments(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mcp.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Purged %d documents\n", n)
	return nil
}

// Run executes the cache stats command.
func (c *CacheStatsCmd) Run(deps *Dependencies) error {
	if err := requireCache(deps); err != nil {
		return err
	}

	docs, err := deps.Cache.ListDocuments(deps.Ctx, mcp.DocumentFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mcp.ErrorMessage(err))
		return err
	}

	var bytes int
	byFormat := make(map[mcp.Format]int)
	for _, doc := range docs {
		bytes += len(doc.Content)
		byFormat[doc.Format]++
	}

	fmt.Fprintf(deps.Stdout, "%d documents, %s\n", len(docs), tools.FormatBytes(bytes))
	for _, format := range mcp.Formats() {
		if n := byFormat[format]; n > 0 {
			fmt.Fprintf(deps.Stdout, "  %s: %d\n", format, n)
		}
	}

	return nil
}

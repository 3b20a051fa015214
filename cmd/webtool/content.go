package main

import (
	"fmt"
	"os"

	"github.com/flyingcloud-code/mcp"
	"github.com/flyingcloud-code/mcp/fs"
	"github.com/flyingcloud-code/mcp/tools"
)

// Run executes the content command. Rendered content goes to stdout
// (or a file); progress and stats go to stderr so output stays pipeable.
func (c *ContentCmd) Run(deps *Dependencies) error {
	format, err := mcp.ParseFormat(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mcp.ErrorMessage(err))
		return err
	}

	if c.Output != "" && c.Dir != "" {
		fmt.Fprintf(deps.Stderr, "error: use --output or --dir, not both\n")
		return mcp.Errorf(mcp.EINVALID, "use --output or --dir, not both")
	}

	if c.Output != "" && len(c.URLs) > 1 {
		fmt.Fprintf(deps.Stderr, "error: --output works with a single URL\n")
		return mcp.Errorf(mcp.EINVALID, "--output works with a single URL")
	}

	if len(c.URLs) == 1 {
		return c.runOne(deps, c.URLs[0], format)
	}
	return c.runBatch(deps, format)
}

func (c *ContentCmd) runOne(deps *Dependencies, url string, format mcp.Format) error {
	content, err := deps.Content.GetWebContent(deps.Ctx, url, format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mcp.ErrorMessage(err))
		return err
	}

	if c.Dir != "" {
		if err := writeStore(deps, c.Dir, []*mcp.WebContent{content}); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote 1 page to %s\n", c.Dir)
	} else if err := c.write(deps, content.Content); err != nil {
		return err
	}

	if c.Stats {
		line := tools.FormatBytes(len(content.Content))
		if counter := deps.Content.TokenCounter; counter != nil {
			if tokens, err := counter.CountTokens(deps.Ctx, content.Content); err == nil {
				line += ", " + tools.FormatTokens(tokens)
			}
		}
		if content.FromCache {
			line += ", cached"
		}
		if content.Truncated {
			line += ", truncated"
		}
		fmt.Fprintf(deps.Stderr, "  %s\n", line)
	}

	return nil
}

func (c *ContentCmd) runBatch(deps *Dependencies, format mcp.Format) error {
	progress := func(event tools.ProgressEvent) {
		switch event.Type {
		case tools.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Fetching %d pages\n", event.Total)
		case tools.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		}
	}

	contents, result, err := deps.Content.GetAll(deps.Ctx, c.URLs, format, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mcp.ErrorMessage(err))
		return err
	}

	if c.Stats {
		fmt.Fprintf(deps.Stderr, "  Fetched %d pages (%s, %s)\n",
			result.Fetched, tools.FormatBytes(result.Bytes), tools.FormatTokens(result.Tokens))
	}

	if c.Dir != "" {
		// A mirror is all-or-nothing: any failed page leaves the
		// target directory untouched.
		if result.Failed > 0 {
			return mcp.Errorf(mcp.EUNAVAILABLE, "%d of %d pages failed, %s not updated", result.Failed, len(c.URLs), c.Dir)
		}
		if err := writeStore(deps, c.Dir, contents); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %d pages to %s\n", result.Fetched, c.Dir)
		return nil
	}

	for _, content := range contents {
		if content == nil {
			continue
		}
		fmt.Fprintln(deps.Stdout, content.Content)
	}

	if result.Failed > 0 {
		return mcp.Errorf(mcp.EUNAVAILABLE, "%d of %d pages failed", result.Failed, len(c.URLs))
	}
	return nil
}

// writeStore stages contents into dir and commits them atomically.
func writeStore(deps *Dependencies, dir string, contents []*mcp.WebContent) error {
	store := fs.NewStore(dir)
	for _, content := range contents {
		if content == nil {
			continue
		}
		if err := store.SaveContent(content); err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", mcp.ErrorMessage(err))
			return err
		}
	}
	if err := store.Commit(); err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error: failed to write %s: %v\n", dir, err)
		return err
	}
	return nil
}

func (c *ContentCmd) write(deps *Dependencies, content string) error {
	if c.Output == "" {
		fmt.Fprintln(deps.Stdout, content)
		return nil
	}
	if err := os.WriteFile(c.Output, []byte(content), 0644); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to write %s: %v\n", c.Output, err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s (%s)\n", c.Output, tools.FormatBytes(len(content)))
	return nil
}

package main

import (
	"context"
	"io"
	"time"

	"github.com/flyingcloud-code/mcp"
	"github.com/flyingcloud-code/mcp/tools"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Stdin    io.Reader
	Content  *tools.WebContentService
	Searcher mcp.Searcher
	Weather  mcp.WeatherService
	Sitemaps mcp.SitemapService
	Cache    mcp.DocumentCache
	Asker    mcp.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Content ContentCmd `cmd:"" help:"Fetch pages and print their readable content"`
	Search  SearchCmd  `cmd:"" help:"Search the web"`
	Weather WeatherCmd `cmd:"" help:"Show weather for a location"`
	Weekday WeekdayCmd `cmd:"" help:"Show the day of the week for a date"`
	Sitemap SitemapCmd `cmd:"" help:"List URLs from a site's sitemap"`
	Ask     AskCmd     `cmd:"" help:"Answer a question using the web tools"`
	Cache   CacheCmd   `cmd:"" help:"Manage the document cache"`

	Verbose bool `short:"v" help:"Log fetch and extraction activity to stderr"`
}

// ContentCmd is the "content" subcommand.
type ContentCmd struct {
	URLs        []string      `arg:"" name:"url" help:"Page URLs"`
	Format      string        `short:"f" default:"markdown" help:"Output format (markdown, html, text)"`
	Engine      string        `short:"e" default:"pipeline" help:"Extraction engine (pipeline, trafilatura, readability)"`
	Output      string        `short:"o" placeholder:"FILE" help:"Write content to a file instead of stdout"`
	Dir         string        `short:"d" placeholder:"DIR" help:"Mirror pages into a directory tree (atomic)"`
	MaxAge      time.Duration `default:"24h" help:"Accept cached content up to this old"`
	MaxBytes    int           `help:"Truncate rendered content to this many bytes"`
	NoCache     bool          `help:"Bypass the document cache"`
	Stats       bool          `help:"Report size and token counts on stderr"`
	Concurrency int           `short:"c" default:"5" help:"Concurrent fetch limit"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
	Limit int    `short:"n" default:"5" help:"Maximum number of results"`
}

// WeatherCmd is the "weather" subcommand.
type WeatherCmd struct {
	Location string `arg:"" help:"City or location name"`
	Date     string `short:"d" help:"Date in YYYY-MM-DD format (default today)"`
}

// WeekdayCmd is the "weekday" subcommand.
type WeekdayCmd struct {
	Date string `arg:"" help:"Date in YYYY-MM-DD format"`
}

// SitemapCmd is the "sitemap" subcommand.
type SitemapCmd struct {
	URL    string   `arg:"" help:"Site URL"`
	Filter []string `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question    string `arg:"" optional:"" help:"Question to answer"`
	Interactive bool   `short:"i" help:"Start an interactive query loop"`
	Model       string `help:"Gemini model to use"`
}

// CacheCmd groups the cache maintenance subcommands.
type CacheCmd struct {
	Ls    CacheLsCmd    `cmd:"" help:"List cached documents"`
	Rm    CacheRmCmd    `cmd:"" help:"Remove all cached formats of a URL"`
	Purge CachePurgeCmd `cmd:"" help:"Remove every cached document"`
	Stats CacheStatsCmd `cmd:"" help:"Show cache size"`
}

// CacheLsCmd is the "cache ls" subcommand.
type CacheLsCmd struct {
	URL    string `arg:"" optional:"" help:"List only entries for this URL"`
	Format string `short:"f" help:"List only entries in this format"`
	Limit  int    `help:"Maximum number of entries to list"`
}

// CacheRmCmd is the "cache rm" subcommand.
type CacheRmCmd struct {
	URL   string `arg:"" help:"URL to evict"`
	Force bool   `help:"Confirm removal"`
}

// CachePurgeCmd is the "cache purge" subcommand.
type CachePurgeCmd struct {
	Force bool `help:"Confirm purge"`
}

// CacheStatsCmd is the "cache stats" subcommand.
type CacheStatsCmd struct{}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/flyingcloud-code/mcp"
	"github.com/flyingcloud-code/mcp/bloom"
	"github.com/flyingcloud-code/mcp/extract"
	"github.com/flyingcloud-code/mcp/gemini"
	"github.com/flyingcloud-code/mcp/gocache"
	"github.com/flyingcloud-code/mcp/htmltomarkdown"
	mcphttp "github.com/flyingcloud-code/mcp/http"
	"github.com/flyingcloud-code/mcp/readability"
	"github.com/flyingcloud-code/mcp/redis"
	mcpslog "github.com/flyingcloud-code/mcp/slog"
	"github.com/flyingcloud-code/mcp/sqlite"
	"github.com/flyingcloud-code/mcp/tools"
	"github.com/flyingcloud-code/mcp/trafilatura"
	"google.golang.org/genai"
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
	// Cache database path. Set before calling Run().
	DBPath string

	// CacheBackend selects the document cache backend: "sqlite" (the
	// default), "memory", "redis://addr" or "off".
	CacheBackend string

	// Input stream for interactive commands.
	Stdin io.Reader

	// SQLite database backing the default document cache.
	DB *sqlite.DB

	// Redis connection when WEBTOOL_CACHE selects the redis backend.
	Redis *redis.Cache

	// Document cache for end-to-end testing.
	Cache mcp.DocumentCache
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:       defaultDBPath(),
		CacheBackend: os.Getenv("WEBTOOL_CACHE"),
		Stdin:        os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Redis != nil {
		if err := m.Redis.Close(); err != nil {
			return err
		}
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Stdin:  m.Stdin,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webtool"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webtool --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Resolve the command name regardless of flag position.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Open the document cache backend
	cache, err := m.openCache(stderr)
	if err != nil {
		return err
	}
	defer m.Close()
	m.Cache = cache
	deps.Cache = cache

	// Wire core services into dependencies
	deps.Searcher = mcphttp.NewSearcher()
	deps.Weather = mcphttp.NewWeatherService()
	deps.Sitemaps = mcphttp.NewSitemapService(nil)
	if logger != nil {
		deps.Searcher = mcpslog.NewLoggingSearcher(deps.Searcher, logger)
		deps.Sitemaps = mcpslog.NewLoggingSitemapService(deps.Sitemaps, logger)
	}

	// Wire command-specific dependencies based on command
	if cmd == "content" || cmd == "ask" {
		extractor, err := newExtractor(engineName(cmd, cli))
		if err != nil {
			return err
		}

		var fetcher mcp.Fetcher = mcphttp.NewFetcher()
		if logger != nil {
			fetcher = mcpslog.NewLoggingFetcher(fetcher, logger)
		}
		defer fetcher.Close()

		svc := &tools.WebContentService{
			Fetcher:       fetcher,
			Extractor:     extractor,
			Renderer:      extract.NewRenderer(htmltomarkdown.NewConverter()),
			Cache:         cache,
			Limiter:       tools.NewDomainLimiter(requestsPerSecond),
			MaxAge:        askMaxAge,
			MaxContentLen: askMaxContentBytes,
		}

		if cmd == "content" {
			svc.MaxAge = cli.Content.MaxAge
			svc.MaxContentLen = cli.Content.MaxBytes
			svc.Concurrency = cli.Content.Concurrency
			if cli.Content.NoCache {
				svc.Cache = nil
			}

			// A batch does one cache lookup per URL. A Bloom filter
			// warmed from the store lets definite misses skip the
			// backend entirely.
			if svc.Cache != nil && len(cli.Content.URLs) > 1 {
				guard := bloom.NewCacheGuard(svc.Cache, bloomCapacity, bloomFalsePositiveRate)
				if err := guard.Warm(ctx); err == nil {
					svc.Cache = guard
				}
			}

			if cli.Content.Stats {
				counter, err := gemini.NewTokenCounter(gemini.DefaultModel)
				if err != nil {
					return fmt.Errorf("failed to create token counter: %w", err)
				}
				svc.TokenCounter = counter
			}
		}

		deps.Content = svc
	}

	if cmd == "ask" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		var content mcp.ContentService = deps.Content
		if logger != nil {
			content = mcpslog.NewLoggingContentService(content, logger)
		}

		deps.Asker = &gemini.Agent{
			Client:   client,
			Content:  content,
			Searcher: deps.Searcher,
			Weather:  deps.Weather,
			Sitemaps: deps.Sitemaps,
			Model:    cli.Ask.Model,
		}
	}

	return kongCtx.Run(deps)
}

const (
	// requestsPerSecond limits fetches per domain.
	requestsPerSecond = 1.0

	// askMaxContentBytes bounds tool output so a fetched page cannot
	// crowd out the model's context window.
	askMaxContentBytes = 100 << 10

	// askMaxAge is the cache freshness window for agent tool calls.
	askMaxAge = 24 * time.Hour

	// bloomCapacity and bloomFalsePositiveRate size the cache guard
	// filter for batch fetches.
	bloomCapacity          = 100_000
	bloomFalsePositiveRate = 0.01
)

// engineName returns the extraction engine selected by the command.
// Only the content command exposes an engine flag.
func engineName(cmd string, cli *CLI) string {
	if cmd == "content" {
		return cli.Content.Engine
	}
	return "pipeline"
}

// newExtractor constructs the selected extraction engine.
func newExtractor(name string) (mcp.Extractor, error) {
	switch name {
	case "pipeline":
		return extract.NewEngine(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	case "readability":
		return readability.NewExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown engine %q (want pipeline, trafilatura or readability)", name)
	}
}

// openCache opens the document cache backend selected by CacheBackend.
// The default is a SQLite database at DBPath.
func (m *Main) openCache(stderr io.Writer) (mcp.DocumentCache, error) {
	backend := m.CacheBackend
	switch {
	case backend == "off":
		return nil, nil
	case backend == "memory":
		return gocache.NewCache(cacheTTL), nil
	case strings.HasPrefix(backend, "redis://"):
		c := redis.NewCache(strings.TrimPrefix(backend, "redis://"), cacheTTL)
		if err := c.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Check WEBTOOL_CACHE points at a reachable Redis server\n")
			return nil, err
		}
		m.Redis = c
		return c, nil
	case backend == "" || backend == "sqlite":
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set WEBTOOL_DB to use a different database path\n")
			return nil, fmt.Errorf("failed to open cache database at %q: %w", m.DBPath, err)
		}
		return sqlite.NewCache(m.DB), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q (want sqlite, memory, redis://addr or off)", backend)
	}
}

// cacheTTL is the entry lifetime for the expiring cache backends.
const cacheTTL = 24 * time.Hour

func defaultDBPath() string {
	if path := os.Getenv("WEBTOOL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "webtool.db"
	}
	dir := filepath.Join(home, ".webtool")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "webtool.db")
}

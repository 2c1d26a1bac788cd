// Command sitesearch runs searches, autocomplete suggestions, and history
// queries against a catalog snapshot loaded from a JSON file.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/urfave/cli/v2"

	"github.com/letmevibethatforyou/sitesearch"
	"github.com/letmevibethatforyou/sitesearch/catalog"
	"github.com/letmevibethatforyou/sitesearch/history"
	"github.com/letmevibethatforyou/sitesearch/kv/dynamokv"
	"github.com/letmevibethatforyou/sitesearch/kv/filekv"
	"github.com/letmevibethatforyou/sitesearch/kv/memkv"
	"github.com/letmevibethatforyou/sitesearch/kv/sqlitekv"
)

const (
	defaultLimit   = 10
	defaultTimeout = 5 * time.Second
)

func main() {
	app := &cli.App{
		Name:  "sitesearch",
		Usage: "Search a content catalog and manage search history",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "catalog",
				Aliases: []string{"c"},
				Usage:   "Path to the catalog snapshot JSON file",
				EnvVars: []string{"SITESEARCH_CATALOG"},
			},
			&cli.StringFlag{
				Name:    "storage",
				Usage:   "History storage backend: memory, file, sqlite, or dynamo",
				EnvVars: []string{"SITESEARCH_STORAGE"},
				Value:   "file",
			},
			&cli.StringFlag{
				Name:    "storage-dir",
				Usage:   "Directory for the file storage backend",
				EnvVars: []string{"SITESEARCH_STORAGE_DIR"},
				Value:   ".sitesearch",
			},
			&cli.StringFlag{
				Name:    "sqlite-path",
				Usage:   "Database file for the sqlite storage backend",
				EnvVars: []string{"SITESEARCH_SQLITE_PATH"},
				Value:   "sitesearch.db",
			},
			&cli.StringFlag{
				Name:    "dynamo-table",
				Usage:   "Table name for the dynamo storage backend",
				EnvVars: []string{"SITESEARCH_DYNAMO_TABLE"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Run a unified search across all content types",
				ArgsUsage: "[query]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "query",
						Aliases: []string{"q"},
						Usage:   "Query string to search for; positional arg is a fallback",
					},
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"l"},
						Usage:   "Maximum number of results to return",
						Value:   defaultLimit,
					},
					&cli.IntFlag{
						Name:    "offset",
						Aliases: []string{"o"},
						Usage:   "Number of results to skip before returning hits",
						Value:   0,
					},
					&cli.StringSliceFlag{
						Name:  "type",
						Usage: "Restrict to a content type (product, article, news, rating); repeatable",
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "Timeout for the search",
						Value: defaultTimeout,
					},
					&cli.BoolFlag{
						Name:  "no-history",
						Usage: "Do not record this search into history",
					},
				},
				Action: searchAction,
			},
			{
				Name:      "suggest",
				Usage:     "Generate autocomplete suggestions for a partial query",
				ArgsUsage: "[query]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "query",
						Aliases: []string{"q"},
						Usage:   "Partial query to suggest for; positional arg is a fallback",
					},
					&cli.IntFlag{
						Name:  "max",
						Usage: "Maximum number of suggestions",
						Value: sitesearch.DefaultMaxSuggestions,
					},
				},
				Action: suggestAction,
			},
			{
				Name:  "popular",
				Usage: "Show the most frequent past queries",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"l"},
						Usage:   "Maximum number of queries to show",
						Value:   defaultLimit,
					},
				},
				Action: popularAction,
			},
			{
				Name:   "clear-history",
				Usage:  "Empty the persisted search history",
				Action: clearHistoryAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func searchAction(c *cli.Context) error {
	ctx := c.Context

	query := queryArg(c)

	limit := c.Int("limit")
	if limit <= 0 {
		slog.WarnContext(ctx, "limit must be positive; falling back to default", "limit", limit, "default", defaultLimit)
		limit = defaultLimit
	}

	offset := c.Int("offset")
	if offset < 0 {
		slog.WarnContext(ctx, "offset cannot be negative; resetting to 0", "offset", offset)
		offset = 0
	}

	timeout := c.Duration("timeout")
	if timeout <= 0 {
		slog.WarnContext(ctx, "timeout must be positive; using default", "timeout", timeout, "default", defaultTimeout)
		timeout = defaultTimeout
	}

	types, err := parseTypes(c.StringSlice("type"))
	if err != nil {
		return err
	}

	cat, err := loadCatalog(c.String("catalog"))
	if err != nil {
		return err
	}

	store, cleanup, err := buildHistoryStore(ctx, c)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := []sitesearch.SearchOption{
		sitesearch.WithLimit(limit),
		sitesearch.WithOffset(offset),
	}
	if len(types) > 0 {
		opts = append(opts, sitesearch.WithTypes(types...))
	}

	slog.InfoContext(ctx, "executing search",
		"query", query,
		"limit", limit,
		"offset", offset,
		"types", c.StringSlice("type"),
		"catalog_size", cat.Size(),
	)

	results, err := cat.Search(ctx, query, opts...)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if !c.Bool("no-history") && strings.TrimSpace(query) != "" {
		store.Save(ctx, query, int(results.Total), nil)
	}

	return printJSON(results)
}

func suggestAction(c *cli.Context) error {
	ctx := c.Context

	query := queryArg(c)

	maxSuggestions := c.Int("max")
	if maxSuggestions <= 0 {
		slog.WarnContext(ctx, "max must be positive; using default", "max", maxSuggestions, "default", sitesearch.DefaultMaxSuggestions)
		maxSuggestions = sitesearch.DefaultMaxSuggestions
	}

	cat, err := loadCatalog(c.String("catalog"))
	if err != nil {
		return err
	}

	store, cleanup, err := buildHistoryStore(ctx, c)
	if err != nil {
		return err
	}
	defer cleanup()

	suggestions := cat.Suggest(query, store.Load(ctx), sitesearch.WithMaxSuggestions(maxSuggestions))
	if suggestions == nil {
		suggestions = []sitesearch.Suggestion{}
	}

	return printJSON(suggestions)
}

func popularAction(c *cli.Context) error {
	ctx := c.Context

	limit := c.Int("limit")
	if limit <= 0 {
		slog.WarnContext(ctx, "limit must be positive; falling back to default", "limit", limit, "default", defaultLimit)
		limit = defaultLimit
	}

	store, cleanup, err := buildHistoryStore(ctx, c)
	if err != nil {
		return err
	}
	defer cleanup()

	popular := store.Popular(ctx, limit)
	if popular == nil {
		popular = []string{}
	}

	return printJSON(popular)
}

func clearHistoryAction(c *cli.Context) error {
	ctx := c.Context

	store, cleanup, err := buildHistoryStore(ctx, c)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	slog.InfoContext(ctx, "search history cleared")
	return nil
}

// queryArg returns the query flag, falling back to the first positional
// argument.
func queryArg(c *cli.Context) string {
	query := strings.TrimSpace(c.String("query"))
	if query == "" && c.NArg() > 0 {
		query = strings.TrimSpace(c.Args().First())
	}
	return query
}

// parseTypes validates the --type flags.
func parseTypes(raw []string) ([]sitesearch.ContentType, error) {
	types := make([]sitesearch.ContentType, 0, len(raw))
	for _, item := range raw {
		switch t := sitesearch.ContentType(strings.TrimSpace(item)); t {
		case sitesearch.ContentProduct, sitesearch.ContentArticle, sitesearch.ContentNews, sitesearch.ContentRating:
			types = append(types, t)
		default:
			return nil, fmt.Errorf("unknown content type: %q", item)
		}
	}
	return types, nil
}

// loadCatalog reads a catalog snapshot JSON file.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("catalog path is required; pass --catalog or set SITESEARCH_CATALOG")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var snapshot catalog.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	return catalog.FromSnapshot(snapshot), nil
}

// buildHistoryStore constructs the history store over the selected storage
// backend. The returned cleanup releases backend resources.
func buildHistoryStore(ctx context.Context, c *cli.Context) (*history.Store, func(), error) {
	noop := func() {}

	switch backend := c.String("storage"); backend {
	case "memory":
		return history.New(memkv.New()), noop, nil

	case "file":
		store, err := filekv.New(c.String("storage-dir"))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open file storage: %w", err)
		}
		return history.New(store), noop, nil

	case "sqlite":
		store, err := sqlitekv.Open(c.String("sqlite-path"))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite storage: %w", err)
		}
		cleanup := func() {
			if err := store.Close(); err != nil {
				slog.Warn("failed to close sqlite storage", "error", err)
			}
		}
		return history.New(store), cleanup, nil

	case "dynamo":
		table := strings.TrimSpace(c.String("dynamo-table"))
		if table == "" {
			return nil, nil, fmt.Errorf("dynamo storage requires --dynamo-table")
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		client := dynamodb.NewFromConfig(cfg)
		return history.New(dynamokv.New(client, table)), noop, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %q", backend)
	}
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

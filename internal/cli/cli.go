// Package cli implements the valdigraph command-line interface.
//
// Every editing command works on a document file: it loads the file (an
// XMCDA-2 document or a JSON bundle), applies one edit, and writes the result
// back in the same format, or to --output. Failed edits leave the file
// untouched. A document argument may also be an http(s) URL; remote
// documents are read-only, so edits of a URL need --output.
//
// Errors carry a code from pkg/errors, and [ExitCode] turns it into the
// process exit status.
//
// # Commands
//
//   - new: create an empty general graph
//   - inspect: print the actions and classified arcs of a document
//   - node, edge: structural edits and value edits
//   - render: draw the arc diagram as DOT, SVG, PDF or PNG
//   - export: convert between formats and rewrite the document header
//   - browse: interactive arc browser
//   - serve: HTTP API for browser renderers
//   - snapshot: named copies in a file or MongoDB store
//   - cache: manage the render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/valdigraph/pkg/buildinfo"
	"github.com/matzehuels/valdigraph/pkg/cache"
	"github.com/matzehuels/valdigraph/pkg/pipeline"
	"github.com/matzehuels/valdigraph/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "valdigraph"

	// connectTimeout bounds connecting to Redis and MongoDB.
	connectTimeout = 10 * time.Second
)

// Environment variables read as flag defaults.
const (
	envRedisURL = "VALDIGRAPH_REDIS_URL"
	envMongoURI = "VALDIGRAPH_MONGO_URI"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Valdigraph edits and draws valued digraphs",
		Long: `Valdigraph edits valued binary relations over a set of decision actions,
classifies every pair into an arc type and draws the result. Documents are
read and written as XMCDA-2 or as JSON bundles carrying a pairwise comparison
table.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.newCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.nodeCommand())
	root.AddCommand(c.edgeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.snapshotCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner and Store Factories
// =============================================================================

// cacheFlags selects the render cache backend.
type cacheFlags struct {
	noCache  bool
	redisURL string
}

func (f *cacheFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().StringVar(&f.redisURL, "redis-url", os.Getenv(envRedisURL), "cache renders in Redis instead of the cache directory (env "+envRedisURL+")")
}

// newRunner creates a render runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, f cacheFlags) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, f)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, c.Logger), nil
}

// newCache picks Redis, the file cache, or no cache. An unusable cache
// directory degrades to no cache.
func (c *CLI) newCache(ctx context.Context, f cacheFlags) (cache.Cache, error) {
	switch {
	case f.noCache:
		return cache.NewNullCache(), nil
	case f.redisURL != "":
		ctx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		return cache.NewRedisCache(ctx, f.redisURL)
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		c.Logger.Warn("render cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("render cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// storeFlags selects the snapshot store backend.
type storeFlags struct {
	dir      string
	mongoURI string
}

// register adds the store flags to fs, the local or persistent flag set
// of a command.
func (f *storeFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.dir, "store-dir", "", "snapshot directory (default: user config dir)")
	fs.StringVar(&f.mongoURI, "mongo-uri", os.Getenv(envMongoURI), "keep snapshots in MongoDB (env "+envMongoURI+")")
}

func (c *CLI) openStore(ctx context.Context, f storeFlags) (store.Store, error) {
	if f.mongoURI != "" {
		ctx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		return store.NewMongoStore(ctx, f.mongoURI)
	}
	return store.NewFileStore(f.dir)
}

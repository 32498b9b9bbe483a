// Package cli implements the wordtrie command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordtrie/pkg/buildinfo"
	"github.com/matzehuels/wordtrie/pkg/cache"
	"github.com/matzehuels/wordtrie/pkg/config"
	"github.com/matzehuels/wordtrie/pkg/errors"
	"github.com/matzehuels/wordtrie/pkg/observability"
	"github.com/matzehuels/wordtrie/pkg/trie"
	"github.com/matzehuels/wordtrie/pkg/words"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "wordtrie"

	// redisKeyPrefix namespaces wordtrie entries in a shared Redis.
	redisKeyPrefix = appName + ":"
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

	configPath string
	config     *config.Config
}

// New creates a new CLI instance with a default logger.
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
		Short: "Wordtrie builds autocomplete tries from themed word lists",
		Long: `Wordtrie generates a themed word list (with Gemini, or a built-in table when
offline), loads it into a prefix trie, and lets you complete prefixes, explore
the trie interactively, export it as a graph, or serve it over HTTP.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.SetSourceHooks(logHooks{c.Logger})
			observability.SetCacheHooks(logHooks{c.Logger})
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/wordtrie/config.toml)")

	root.AddCommand(c.wordsCommand())
	root.AddCommand(c.completeCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.shellCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file once per CLI. An explicit --config path
// must exist; the default location is optional.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.config != nil {
		return c.config, nil
	}
	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.Load(c.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}
	c.config = cfg
	return cfg, nil
}

// =============================================================================
// Word Loading
// =============================================================================

// sourceFlags are the word-source flags shared by commands that build a trie.
type sourceFlags struct {
	count   int
	offline bool
	noCache bool
	file    string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.count, "count", "n", 0, "number of words to generate (default from config, 30)")
	cmd.Flags().BoolVar(&f.offline, "offline", false, "skip the model and use built-in words")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "do not read or write the word list cache")
	cmd.Flags().StringVar(&f.file, "file", "", "read words from a .txt, .json or .csv file")
}

// loadWords resolves the word list for theme according to flags and config.
// Source failures are reported as a warning and replaced by fallback words.
func (c *CLI) loadWords(ctx context.Context, theme string, flags sourceFlags) (words.Result, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return words.Result{}, err
	}
	theme = strings.TrimSpace(theme)
	if theme == "" {
		theme = cfg.Theme
	}
	if err := errors.ValidateTheme(theme); err != nil {
		return words.Result{}, err
	}

	if flags.file != "" {
		loader := words.NewLoader(nil, nil, c.Logger)
		res, err := loader.LoadFile(flags.file, theme)
		if err != nil {
			return words.Result{}, err
		}
		printSuccess("Loaded %d words from %s", len(res.Words), flags.file)
		return res, nil
	}

	count := cfg.Count
	if flags.count != 0 {
		count = flags.count
	}
	if err := errors.ValidateCount(count); err != nil {
		return words.Result{}, err
	}

	c.Logger.Debug("loading words", "theme", theme, "count", count, "offline", flags.offline)

	var src words.Source
	if !flags.offline {
		src = words.NewGemini(words.GeminiConfig{
			APIKey:   cfg.APIKey(),
			Model:    cfg.Generator.Model,
			Endpoint: cfg.Generator.Endpoint,
			Timeout:  cfg.Generator.Timeout,
			Logger:   c.Logger,
		})
	}

	wc := c.newCache(ctx, cfg, flags.noCache)
	defer wc.Close()

	loader := words.NewLoader(src, wc, c.Logger)
	loader.TTL = cfg.Cache.TTL

	spinner := newSpinnerWithContext(ctx, "Loading "+theme+" words...")
	spinner.Start()
	prog := newProgress(c.Logger)
	res := loader.Load(ctx, theme, count)
	spinner.Stop()

	if err := ctx.Err(); err != nil {
		return words.Result{}, err
	}
	switch {
	case res.Err != nil:
		printWarning("Using fallback words: %s", errors.UserMessage(res.Err))
	case res.Origin == words.OriginFallback:
		printInfo("Using built-in %s words", res.Theme)
	default:
		printSuccess("Loaded %d %s words (%s)", len(res.Words), res.Theme, res.Origin)
	}
	prog.done("word list ready")
	return res, nil
}

// newCache opens the configured cache backend. Cache problems never stop a
// command: they degrade to no caching.
func (c *CLI) newCache(ctx context.Context, cfg *config.Config, noCache bool) cache.Cache {
	if noCache || cfg.Cache.Backend == config.CacheNone {
		return cache.NewNullCache()
	}
	if cfg.Cache.Backend == config.CacheRedis {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:   cfg.Cache.RedisAddr,
			DB:     cfg.Cache.RedisDB,
			Prefix: redisKeyPrefix,
		})
		if err != nil {
			c.Logger.Warn("redis cache unavailable, caching disabled", "error", err)
			return cache.NewNullCache()
		}
		return rc
	}

	dir := cfg.Cache.Dir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return cache.NewNullCache()
		}
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("file cache unavailable, caching disabled", "error", err)
		return cache.NewNullCache()
	}
	return fc
}

// buildTrie inserts words into a new trie.
func buildTrie(list []string) *trie.Trie {
	t := trie.New()
	t.Insert(list...)
	return t
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/wordtrie/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

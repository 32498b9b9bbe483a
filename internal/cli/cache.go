package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordtrie/pkg/cache"
	"github.com/matzehuels/wordtrie/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the word list cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// fileCacheDir returns the file cache directory from config or XDG.
func (c *CLI) fileCacheDir() (string, *config.Config, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return "", nil, err
	}
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, cfg, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return "", nil, fmt.Errorf("get cache dir: %w", err)
	}
	return dir, cfg, nil
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached word lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, cfg, err := c.fileCacheDir()
			if err != nil {
				return err
			}
			if cfg.Cache.Backend == config.CacheRedis {
				printInfo("Redis entries expire on their own after %s", cfg.Cache.TTL)
			}

			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			count, err := fc.Clear()
			if err != nil {
				return err
			}
			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}

			printSuccess("Cleared %d cached entries", count)
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _, err := c.fileCacheDir()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

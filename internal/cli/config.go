package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordtrie/pkg/config"
)

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Encode(cmd.OutOrStdout()); err != nil {
				return err
			}
			key := "not set"
			if cfg.APIKey() != "" {
				key = "set"
			}
			printKeyValue(statusOut, cfg.Generator.APIKeyEnv, key)
			return nil
		},
	})

	return cmd
}

package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordtrie/internal/server"
)

// serveCommand creates the HTTP API command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags sourceFlags
		addr  string
	)

	cmd := &cobra.Command{
		Use:   "serve [theme]",
		Short: "Serve the trie over HTTP",
		Long: `Build a trie from the theme's word list and serve completions, the word
list and graph exports over HTTP until interrupted. New words can be added
with POST /api/v1/words.`,
		Example: `  wordtrie serve space --addr :9000
  curl 'localhost:9000/api/v1/complete?prefix=pl'`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeThemeArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			res, err := c.loadWords(ctx, firstArg(args), flags)
			if err != nil {
				return err
			}
			t := buildTrie(res.Words)
			printStats(t.Len(), t.NodeCount(), res.Origin)

			srv := server.New(t, server.Options{Theme: res.Theme, Origin: res.Origin, Logger: c.Logger})
			printSuccess("Listening on %s", addr)
			printNextStep("Try", "curl 'http://"+displayAddr(addr)+"/api/v1/complete?prefix="+firstPrefix(res.Words)+"'")

			err = srv.ListenAndServe(ctx, addr)
			if errors.Is(err, context.Canceled) {
				c.Logger.Info("server stopped")
			}
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}

func firstPrefix(list []string) string {
	if len(list) == 0 {
		return ""
	}
	r := []rune(list[0])
	return string(r[:min(2, len(r))])
}

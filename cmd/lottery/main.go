package main

import (
	"fmt"
	"os"

	"solana-lottery/config"
	"solana-lottery/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// cliContext carries the loaded configuration into subcommands.
type cliContext struct {
	configPath string
	cfg        *config.Config
	log        zerolog.Logger
}

func newRootCmd() *cobra.Command {
	cc := &cliContext{}

	root := &cobra.Command{
		Use:           "lottery",
		Short:         "Daily Solana lottery: deposits, VIP passes and scheduled payouts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cc.configPath, "config", "c", "", "path to a YAML config file (default ./config.yaml)")

	// load reads configuration lazily so hash-password works without any.
	load := func(*cobra.Command, []string) error {
		cfg, err := config.Load(cc.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cc.cfg = cfg
		cc.log = logger.New(cfg.Log.Level, cfg.Log.Pretty)
		return nil
	}

	root.AddCommand(
		newServeCmd(cc, load),
		newDrawCmd(cc, load),
		newMigrateCmd(cc, load),
		newHashPasswordCmd(),
	)
	return root
}

// Package main is the entry point for the opapi command line tool
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lamali292/one-piece-api/internal/config"
	"github.com/lamali292/one-piece-api/internal/errors"
)

// app carries what the root command resolved for its subcommands.
type app struct {
	cfg *config.Config

	// flag overrides, applied over the environment
	dataDir  string
	policy   string
	logLevel string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "opapi",
		Short:         "One Piece API skill data tools",
		Long:          `opapi validates skill data packs and simulates how their rewards and experience sources apply to a player.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.dataDir, "data", "", "data pack directory (env OPAPI_DATA_DIR)")
	cmd.PersistentFlags().StringVar(&a.policy, "policy", "", "load policy: strict or warn (env OPAPI_LOAD_POLICY)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (env OPAPI_LOG_LEVEL)")

	cmd.AddCommand(newValidateCmd(a))
	cmd.AddCommand(newSimulateCmd(a))
	return cmd
}

func (a *app) configure(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = a.dataDir
	}
	if flags.Changed("policy") {
		cfg.Policy = config.Policy(a.policy)
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	a.cfg = cfg
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.ExitCodeOf(err))
	}
}

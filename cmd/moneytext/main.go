// Command moneytext spells amounts in Chinese financial numerals and
// converts amounts written in free text between currencies.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/govalues/moneytext/internal/config"
	"github.com/govalues/moneytext/internal/logging"
)

// app carries the state shared by all subcommands.
type app struct {
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "moneytext",
		Short: "Chinese financial numerals and free-text currency conversion",
		Long: `moneytext spells amounts the way they are written on Chinese cheques
and invoices (大写金额), and converts amounts found in free text such as
"5万日元" or "$1,000" between currencies using live exchange rates.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config %s: %w", a.configPath, err)
			}
			a.cfg = cfg

			logger, err := logging.New(cfg.Logging.Level, a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			a.logger.Debug("loaded config", zap.String("path", a.configPath))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath("config.yaml"), "Config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(
		a.renderCmd(),
		a.parseCmd(),
		a.convertCmd(),
		a.ratesCmd(),
		a.historyCmd(),
	)
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

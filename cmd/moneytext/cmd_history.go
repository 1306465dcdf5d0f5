package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/govalues/moneytext/internal/history"
)

func (a *app) historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List or clear saved conversions",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved conversions, newest first",
			Args:  cobra.NoArgs,
			RunE: a.withHistory(func(cmd *cobra.Command, h *history.History) error {
				records, err := h.List(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(records) == 0 {
					fmt.Fprintln(out, "暂无记录")
					return nil
				}
				for _, r := range records {
					fmt.Fprintf(out, "%s  %v %v -> %s\n",
						r.Timestamp.Local().Format(time.DateTime), r.Amount, r.From, r.Result)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove all saved conversions",
			Args:  cobra.NoArgs,
			RunE: a.withHistory(func(cmd *cobra.Command, h *history.History) error {
				return h.Clear(cmd.Context())
			}),
		},
	)
	return cmd
}

func (a *app) withHistory(run func(*cobra.Command, *history.History) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		h, closeHistory, err := a.openHistory(cmd.Context())
		if err != nil {
			return err
		}
		defer func() {
			if err := closeHistory(); err != nil {
				a.logger.Warn("closing history", zap.Error(err))
			}
		}()
		return run(cmd, h)
	}
}

package main

import (
	"fmt"
	"time"

	"github.com/govalues/moneytext"
	"github.com/spf13/cobra"

	"github.com/govalues/moneytext/internal/rates"
)

func (a *app) ratesCmd() *cobra.Command {
	var (
		bases   []string
		refresh bool
	)
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show exchange rate tables",
		Long: `Prints the exchange rates of every known currency against each base.
When the CNY table cannot be fetched, the built-in fallback rates are shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(bases) == 0 {
				bases = []string{a.cfg.Defaults.Source}
			}
			currs := make([]moneytext.Currency, 0, len(bases))
			for _, b := range bases {
				c, err := parseCurrFlag("base", b)
				if err != nil {
					return err
				}
				currs = append(currs, c)
			}

			provider, err := a.newProvider()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if refresh {
				for _, c := range currs {
					if _, err := provider.Refresh(ctx, c); err != nil {
						return err
					}
				}
			} else if err := provider.Prefetch(ctx, currs...); err != nil {
				return err
			}

			for i, c := range currs {
				t, err := provider.Rates(ctx, c)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if err := printTable(cmd, t); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&bases, "base", nil, "Base currency, may be repeated (default: defaults.source)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Ignore cached rates")
	return cmd
}

func printTable(cmd *cobra.Command, t rates.Table) error {
	out := cmd.OutOrStdout()
	switch {
	case t.Fallback:
		fmt.Fprintf(out, "%v (fallback rates)\n", t.Base)
	case !t.Updated.IsZero():
		fmt.Fprintf(out, "%v (updated %s)\n", t.Base, t.Updated.Format(time.DateTime))
	default:
		fmt.Fprintf(out, "%v\n", t.Base)
	}
	for _, c := range moneytext.Currencies() {
		if c == t.Base {
			continue
		}
		d, err := t.RateOf(c)
		if err != nil {
			fmt.Fprintf(out, "  %v  %-4s  -\n", c, c.Name())
			continue
		}
		r, err := t.Rate(t.Base, c)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %v  %-4s  %-10v  %s\n", c, c.Name(), d, r.Display())
	}
	return nil
}

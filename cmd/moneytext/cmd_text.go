package main

import (
	"fmt"

	"github.com/govalues/moneytext"
	"github.com/spf13/cobra"
)

func (a *app) renderCmd() *cobra.Command {
	var curr string
	cmd := &cobra.Command{
		Use:   "render <amount>",
		Short: "Spell an amount in Chinese financial numerals",
		Long: `Spells a non-negative decimal amount below one trillion, for example
"1234.5" as 壹仟贰佰叁拾肆元伍角. With --curr the standard reading in that
currency is printed instead, for example 壹佰美元.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if curr == "" {
				fmt.Fprintln(cmd.OutOrStdout(), moneytext.Render(args[0]))
				return nil
			}
			amount, err := moneytext.ParseAmount(curr, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), moneytext.Reading(amount))
			return nil
		},
	}
	cmd.Flags().StringVar(&curr, "curr", "", "Currency of the standard reading")
	return cmd
}

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Find the amount, magnitude and currency in text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := moneytext.ParseText(args[0])
			if !ok {
				return fmt.Errorf("no numeral in %q", args[0])
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "amount:   %v\n", p.Amount())
			if w := p.Unit().Word(); w != "" {
				fmt.Fprintf(out, "unit:     %s (%v)\n", w, p.Unit())
			} else {
				fmt.Fprintf(out, "unit:     %v\n", p.Unit())
			}
			if curr, ok := p.Curr(); ok {
				fmt.Fprintf(out, "currency: %v (%s)\n", curr, p.CurrName())
			} else {
				fmt.Fprintln(out, "currency: -")
			}
			if d, err := p.Scaled(); err == nil {
				fmt.Fprintf(out, "text:     %s\n", moneytext.Render(d.String()))
			}
			return nil
		},
	}
}

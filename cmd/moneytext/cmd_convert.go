package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/govalues/moneytext"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/govalues/moneytext/internal/history"
	"github.com/govalues/moneytext/internal/smart"
)

func (a *app) convertCmd() *cobra.Command {
	var (
		from, to         string
		unit, targetUnit string
		save             bool
	)
	cmd := &cobra.Command{
		Use:   "convert <text>",
		Short: "Convert an amount written in free text",
		Long: `Finds the first number in the text together with a magnitude word
(万, 亿) and a currency anywhere in the text, and converts it.

The source currency is the one named in the text, else --from, else
defaults.source. The target is --to, else defaults.target for CNY amounts
and CNY for everything else.

Example:
  moneytext convert "5万日元"
  moneytext convert "3" --from USD --unit 万 --target-unit 万`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := smart.Request{Text: strings.Join(args, " ")}
			var err error
			if req.Source, err = parseCurrFlag("from", from); err != nil {
				return err
			}
			if req.Target, err = parseCurrFlag("to", to); err != nil {
				return err
			}
			if req.Unit, err = parseUnitFlag("unit", unit); err != nil {
				return err
			}
			if req.TargetUnit, err = parseUnitFlag("target-unit", targetUnit); err != nil {
				return err
			}

			provider, err := a.newProvider()
			if err != nil {
				return err
			}
			conv := smart.New(provider, smart.Defaults{
				Source: moneytext.MustParseCurr(a.cfg.Defaults.Source),
				Target: moneytext.MustParseCurr(a.cfg.Defaults.Target),
			}, a.logger)

			res, err := conv.Convert(cmd.Context(), req)
			if err != nil {
				return err
			}
			printResult(cmd, res)

			if !save {
				return nil
			}
			h, closeHistory, err := a.openHistory(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := closeHistory(); err != nil {
					a.logger.Warn("closing history", zap.Error(err))
				}
			}()
			return h.Add(cmd.Context(), history.Record{
				Amount:    res.SourceAmount.Decimal(),
				From:      res.Source,
				To:        res.Target,
				Result:    res.FinalText(),
				Timestamp: time.Now().UTC(),
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Source currency when the text names none")
	cmd.Flags().StringVar(&to, "to", "", "Target currency")
	cmd.Flags().StringVar(&unit, "unit", "", "Source magnitude (1, 万, 亿), overriding the text")
	cmd.Flags().StringVar(&targetUnit, "target-unit", "", "Magnitude of the result (1, 万, 亿)")
	cmd.Flags().BoolVar(&save, "save", false, "Append the conversion to the history")
	return cmd
}

func printResult(cmd *cobra.Command, res smart.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "识别为：%v%s %v -> %s  (%s)\n",
		res.Parsed.Amount(), res.Unit.Word(), res.Source, res.FinalText(), res.RateText)
	fmt.Fprintf(out, "源金额 (%s)：%s\n", res.Source.Name(), res.SourceReading)
	fmt.Fprintf(out, "换算后 (%s)：%s\n", res.Target.Name(), res.BaseReading)
}

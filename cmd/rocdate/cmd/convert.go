package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paisley/rocdate/foundation/core/log"
	"github.com/paisley/rocdate/foundation/utils/timex"
)

// converter is the shared shape of ConvertAdToRoc, ConvertRocToAd and Reformat
type converter func(raw, from, to string) (string, bool, error)

func newToRocCmd(a *app) *cobra.Command {
	return newConvertCmd(a, convertDef{
		use:   "toroc <text>",
		short: "Convert Gregorian text to the ROC calendar",
		long: `Parse Gregorian text strictly with --from and render it under the ROC
chronology with --to, where y and yyy print the ROC year. Dates before
1912 fall in the 民國前 era.`,
		example: `  rocdate toroc 2024-01-31
  rocdate toroc --to "Gy年M月d日" 2024-01-31`,
		from: func(s patternDefaults) string { return s.date },
		to:   func(s patternDefaults) string { return s.roc },
		run:  timex.ConvertAdToRoc,
	})
}

func newToAdCmd(a *app) *cobra.Command {
	return newConvertCmd(a, convertDef{
		use:   "toad <text>",
		short: "Convert ROC calendar text to Gregorian text",
		long: `Parse ROC text leniently with --from and render the Gregorian date with
--to. Numbers may be written with fewer digits than the pattern shows,
so 113/1/5 reads with yyy/MM/dd.`,
		example: `  rocdate toad 113/01/31
  rocdate toad --from "Gy年M月d日" 民國113年1月31日`,
		from: func(s patternDefaults) string { return s.roc },
		to:   func(s patternDefaults) string { return s.date },
		run:  timex.ConvertRocToAd,
	})
}

func newReformatCmd(a *app) *cobra.Command {
	return newConvertCmd(a, convertDef{
		use:   "reformat <text>",
		short: "Re-render Gregorian text with another pattern",
		example: `  rocdate reformat --from yyyyMMdd --to yyyy-MM-dd 20240131
  rocdate reformat --to "EEEE yyyy/M/d" 2024-01-31`,
		from: func(s patternDefaults) string { return s.date },
		to:   func(s patternDefaults) string { return s.datetime },
		run:  timex.Reformat,
	})
}

// patternDefaults is the subset of settings a conversion reads its default patterns from
type patternDefaults struct {
	date, datetime, roc string
}

type convertDef struct {
	use, short, long, example string
	from, to                  func(patternDefaults) string
	run                       converter
}

func newConvertCmd(a *app, def convertDef) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:     def.use,
		Short:   def.short,
		Long:    def.long,
		Example: def.example,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults := patternDefaults{
				date:     a.settings.DatePattern,
				datetime: a.settings.DateTimePattern,
				roc:      a.settings.RocPattern,
			}
			if from == "" {
				from = def.from(defaults)
			}
			if to == "" {
				to = def.to(defaults)
			}
			if err := a.compile(from, to); err != nil {
				return err
			}

			timer := a.logger.StartTimer(cmd.Name()).WithField("input", args[0])
			out, ok, err := def.run(args[0], from, to)
			timer.Stop()
			if err != nil {
				return a.fail(err)
			}
			if !ok {
				return a.fail(blankInput("cmd." + cmd.Name()))
			}

			a.logger.Debug("converted", log.Fields{"from": from, "to": to, "output": out})
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "", "input pattern (default from config)")
	cmd.Flags().StringVarP(&to, "to", "t", "", "output pattern (default from config)")
	return cmd
}

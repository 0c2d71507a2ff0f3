package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/paisley/rocdate/foundation/core/error"
	"github.com/paisley/rocdate/foundation/utils/timex"
)

func newBetweenCmd(a *app) *cobra.Command {
	var (
		pattern string
		unit    string
	)

	cmd := &cobra.Command{
		Use:   "between <from> <to>",
		Short: "Count whole days or seconds between two instants",
		Long: `Parse both arguments with --pattern and print the signed distance from
the first to the second. Days count calendar dates, so the time of day
is ignored; seconds count elapsed time rounded down.`,
		Example: `  rocdate between 2024-01-01 2024-12-31
  rocdate between -u seconds -p "yyyy-MM-dd HH:mm" "2024-01-31 08:00" "2024-01-31 17:30"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pattern == "" {
				pattern = a.settings.DatePattern
			}
			p, err := timex.CompilePattern(pattern)
			if err != nil {
				return a.fail(err)
			}

			var ends [2]timex.DateTime
			for i, raw := range args {
				dt, err := parseInstant(raw, p)
				if err != nil {
					return a.fail(err)
				}
				if dt == nil {
					return a.fail(blankInput("cmd.between"))
				}
				ends[i] = *dt
			}

			var n int64
			switch unit {
			case "days", "d":
				n = timex.DaysBetween(ends[0].Date(), ends[1].Date())
			case "seconds", "s":
				n = timex.SecondsBetween(ends[0], ends[1])
			default:
				return a.fail(mdwerror.New("unknown unit: "+unit).
					WithCode(mdwerror.CodeInvalidInput).
					WithOperation("cmd.between").
					WithDetail("allowed", []string{"days", "seconds"}))
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "pattern of both arguments (default: display.date_pattern)")
	cmd.Flags().StringVarP(&unit, "unit", "u", "days", "days or seconds")
	return cmd
}

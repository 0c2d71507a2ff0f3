package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paisley/rocdate/foundation/utils/timex"
)

func newNowCmd(a *app) *cobra.Command {
	var (
		pattern string
		roc     bool
	)

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current date and time",
		Long: `Print the current wall clock reading in the configured zone
(zone.offset, UTC+8 by default). With --roc the year is the ROC year.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chrono := timex.ISO
			if pattern == "" {
				pattern = a.settings.DateTimePattern
			}
			if roc {
				chrono = timex.ROC
				if !cmd.Flags().Changed("pattern") {
					pattern = a.settings.RocPattern + " HH:mm:ss"
				}
			}

			f, err := a.formatter(pattern, chrono)
			if err != nil {
				return err
			}
			s, err := f.FormatDateTime(timex.NowIn(a.settings.Zone))
			if err != nil {
				return a.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "output pattern (default: display.datetime_pattern)")
	cmd.Flags().BoolVar(&roc, "roc", false, "number years in the ROC calendar")
	return cmd
}

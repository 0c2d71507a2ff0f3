package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/paisley/rocdate/foundation/core/error"
	"github.com/paisley/rocdate/foundation/core/log"
	"github.com/paisley/rocdate/foundation/utils/mathx"
	"github.com/paisley/rocdate/foundation/utils/timex"
)

func newFormatCmd(a *app) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "format <epoch-millis>",
		Short: "Format a Unix timestamp in milliseconds",
		Example: `  rocdate format 1706684645000
  rocdate format -p "Gy年M月d日 EEEE" 1706684645000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pattern == "" {
				pattern = a.settings.DateTimePattern
			}
			if err := a.compile(pattern); err != nil {
				return err
			}

			ms, err := parseMillis(args[0])
			if err != nil {
				return a.fail(err)
			}

			a.logger.Debug("formatting instant", log.Fields{"millis": ms, "pattern": pattern})
			fmt.Fprintln(cmd.OutOrStdout(), timex.FormatEpochMilliIn(ms, pattern, a.settings.Zone))
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "output pattern (default: display.datetime_pattern)")
	return cmd
}

// parseMillis accepts integers and scientific notation such as 1.7e12
func parseMillis(s string) (int64, error) {
	d, ok := mathx.ToDecimal(s)
	if ok && d.IsInteger() {
		if ms, err := d.Int64(); err == nil {
			return ms, nil
		}
	}
	return 0, mdwerror.New("not an epoch millisecond value: "+s).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("cmd.format").
		WithDetail("input", s)
}

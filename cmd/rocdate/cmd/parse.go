package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/paisley/rocdate/foundation/utils/timex"
)

func newParseCmd(a *app) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse text strictly and show its calendar fields",
		Long: `Parse text with a Gregorian pattern and print the resolved date-time,
its weekday, the ROC date and the epoch milliseconds. A pattern without
time letters reads as midnight.`,
		Example: `  rocdate parse 2024-01-31
  rocdate parse -p "yyyyMMddHHmmss" 20240131150405`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pattern == "" {
				pattern = a.settings.DatePattern
			}
			p, err := timex.CompilePattern(pattern)
			if err != nil {
				return a.fail(err)
			}

			dt, err := parseInstant(args[0], p)
			if err != nil {
				return a.fail(err)
			}
			if dt == nil {
				return a.fail(blankInput("cmd.parse"))
			}

			weekday, _ := a.formatter("EEEE", timex.ISO)
			day, _ := weekday.FormatDate(dt.Date())
			minguo := dt.Date().Minguo()

			rows := []string{
				titleStyle.Render(args[0]),
				row("datetime", dt.String()),
				row("weekday", day),
				row("minguo", minguo.String()),
				row("epoch ms", strconv.FormatInt(dt.EpochMilli(), 10)),
			}
			fmt.Fprintln(cmd.OutOrStdout(), lipgloss.JoinVertical(lipgloss.Left, rows...))
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "input pattern (default: display.date_pattern)")
	return cmd
}

// parseInstant reads date-only patterns as midnight
func parseInstant(raw string, p *timex.Pattern) (*timex.DateTime, error) {
	if p.HasTimeFields() {
		return timex.ParseDateTime(raw, p.String())
	}
	d, err := timex.ParseDate(raw, p.String())
	if err != nil || d == nil {
		return nil, err
	}
	return timex.StartOfDay(d), nil
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/paisley/rocdate/foundation/utils/slicex"
	"github.com/paisley/rocdate/foundation/utils/stringx"
	"github.com/paisley/rocdate/foundation/utils/timex"
)

func newMonthCmd(a *app) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "month [yyy/MM]",
		Short: "Show a month calendar titled with the ROC year",
		Long: `Show a calendar grid for one month, weeks starting on Sunday. The month
is given as ROC year and month (113/1 is January 2024); without an
argument the current month in the configured zone is shown and today
is highlighted.`,
		Example: `  rocdate month
  rocdate month 113/2
  rocdate month --lang en --title "MMMM y G" 113/2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			today := timex.NowIn(a.settings.Zone).Date()
			first := timex.MustDate(today.Year, today.Month, 1)

			if raw := firstArg(args); raw != "" {
				d, err := timex.FromMinguo(raw+"/1", "yyy/MM/dd")
				if err != nil {
					return a.fail(err)
				}
				first = *d
			}

			titles, err := a.formatter(title, timex.ROC)
			if err != nil {
				return err
			}
			heading, err := titles.FormatDate(first)
			if err != nil {
				return a.fail(err)
			}
			short, err := a.formatter("E", timex.ISO)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderMonth(first, today, heading, short))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "Gy年M月", "ROC pattern for the heading")
	return cmd
}

// renderMonth draws the month containing first. weekdays formats a date
// as its column heading.
func renderMonth(first, today timex.Date, heading string, weekdays *timex.Formatter) string {
	sunday := first.AddDays(-int(first.Weekday()))
	header := slicex.Map([]int{0, 1, 2, 3, 4, 5, 6}, func(i int) string {
		name, _ := weekdays.FormatDate(sunday.AddDays(i))
		return headerCellStyle.Render(name)
	})

	cells := slicex.Repeat(cellStyle.Render(""), int(first.Weekday()))
	for day := 1; day <= first.LengthOfMonth(); day++ {
		d := first.AddDays(day - 1)
		text := stringx.PadLeft(strconv.Itoa(day), 2, ' ')
		switch {
		case d.Equal(today):
			cells = append(cells, todayStyle.Render(text))
		case d.Weekday() == time.Sunday || d.Weekday() == time.Saturday:
			cells = append(cells, weekendStyle.Render(text))
		default:
			cells = append(cells, cellStyle.Render(text))
		}
	}

	lines := []string{
		titleStyle.Render(heading) + " " + mutedStyle.Render(fmt.Sprintf("%04d-%02d", first.Year, int(first.Month))),
		lipgloss.JoinHorizontal(lipgloss.Top, header...),
	}
	for _, week := range slicex.Chunk(cells, 7) {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, week...))
	}
	return gridStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

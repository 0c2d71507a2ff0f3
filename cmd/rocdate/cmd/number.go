package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/paisley/rocdate/foundation/core/error"
	"github.com/paisley/rocdate/foundation/utils/mathx"
)

func newNumberCmd(a *app) *cobra.Command {
	var (
		pattern string
		pad     int
	)

	cmd := &cobra.Command{
		Use:   "number <value>",
		Short: "Format a number for display",
		Long: `Format a number with thousands grouping (up to three fraction digits,
rounded half-even), with a decimal pattern such as "#,##0.00", or as a
zero-padded integer with --pad. Scientific notation is accepted.`,
		Example: `  rocdate number 1234567.891
  rocdate number -p "NT$#,##0" 1.5e6
  rocdate number --pad 3 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				out string
				ok  bool
			)
			switch {
			case pad > 0:
				out, ok = mathx.ZeroPad(args[0], pad)
			case pattern != "":
				out, ok = mathx.FormatPattern(args[0], pattern)
			default:
				out, ok = mathx.FormatThousands(args[0])
			}
			if !ok {
				return a.fail(mdwerror.New(fmt.Sprintf("cannot format %q", args[0])).
					WithCode(mdwerror.CodeInvalidFormat).
					WithOperation("cmd.number").
					WithDetail("pattern", pattern))
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "decimal pattern, e.g. #,##0.00")
	cmd.Flags().IntVar(&pad, "pad", 0, "zero-pad an integer to this width")
	return cmd
}

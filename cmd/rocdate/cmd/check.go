package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/paisley/rocdate/foundation/core/error"
	"github.com/paisley/rocdate/foundation/core/log"
	"github.com/paisley/rocdate/foundation/utils/timex"
)

func newCheckCmd(a *app) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "check <text>",
		Short: "Validate text strictly against a pattern",
		Long: `Check whether text matches a pattern exactly: every field at its full
width, real calendar dates only (2023-02-29 is rejected). Fields missing
from the pattern are not required. The exit status is 1 when the text
does not match.`,
		Example: `  rocdate check 2024-02-29
  rocdate check -p yyyyMMdd 20241301`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pattern == "" {
				pattern = a.settings.DatePattern
			}
			if err := a.compile(pattern); err != nil {
				return err
			}

			if timex.MatchesPattern(args[0], pattern) {
				fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("ok"))
				return nil
			}

			a.logger.Info("text rejected", log.Fields{"input": args[0], "pattern": pattern})
			return mdwerror.New(fmt.Sprintf("%q does not match %q", args[0], pattern)).
				WithCode(mdwerror.CodeValidationFailed).
				WithOperation("cmd.check")
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "pattern to check against (default: display.date_pattern)")
	return cmd
}

func blankInput(op string) error {
	return mdwerror.New("input is blank").
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation(op)
}

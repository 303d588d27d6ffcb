package main

import (
	"fmt"

	"github.com/fwojciec/trendwatch"
)

// Run executes the report command. Status lines go to stderr so the
// Markdown on stdout can be piped or redirected.
func (c *ReportCmd) Run(deps *Dependencies) error {
	profile, err := deps.Users.Profile(deps.Ctx, c.User)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", trendwatch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stderr, "Generating report for %s...\n", c.User)

	report, err := deps.Generator.GenerateReport(deps.Ctx, c.User, profile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", trendwatch.ErrorMessage(err))
		return err
	}

	filename, err := deps.Reports.SaveReport(deps.Ctx, report)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", trendwatch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stderr, "Saved %s\n", filename)
	fmt.Fprintln(deps.Stdout, report.Markdown)
	return nil
}

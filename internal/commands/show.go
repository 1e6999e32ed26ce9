package commands

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the entries and sum of a month" }
func (*showCmd) Usage() string {
	return `lineup show [month] [year]

  Displays every entry of the month with its total. Month and year default
  to the current ones when omitted or 0.
`
}

func (*showCmd) SetFlags(*flag.FlagSet) {}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, ok := appFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}

	if f.NArg() > 2 {
		return app.usageError(c, errArguments)
	}
	month, year, err := optionalPeriod(f.Args())
	if err != nil {
		return app.usageError(c, err)
	}

	summary, err := app.Ledger.MonthSummary(ctx, month, year)
	if err != nil {
		return app.fail(c, err)
	}

	app.Out.Month(summary)
	return subcommands.ExitSuccess
}

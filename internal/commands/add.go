package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"lineup/internal/core"
)

var errArguments = errors.New("wrong number of arguments")

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an entry to a month or a static template" }
func (*addCmd) Usage() string {
	return `lineup add entry <name> <amount> [month] [year]
lineup add static <name> <amount>

  entry   records an amount in a month. Month and year default to the
          current ones when omitted or 0. The first entry of a month copies
          every static into it.
  static  records a template copied into every month created afterwards.

  Negative amounts are expenses.
`
}

func (*addCmd) SetFlags(*flag.FlagSet) {}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, ok := appFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}

	rest := f.Args()
	if len(rest) == 0 {
		return app.usageError(c, errArguments)
	}

	switch rest[0] {
	case "entry":
		return c.entry(ctx, app, rest[1:])
	case "static":
		return c.static(ctx, app, rest[1:])
	default:
		return app.usageError(c, fmt.Errorf("unknown kind %q: must be entry or static", rest[0]))
	}
}

func (c *addCmd) entry(ctx context.Context, app *App, args []string) subcommands.ExitStatus {
	if len(args) < 2 || len(args) > 4 {
		return app.usageError(c, errArguments)
	}
	amount, err := core.ParseAmount(args[1])
	if err != nil {
		return app.usageError(c, fmt.Errorf("amount %q: %w", args[1], err))
	}
	month, year, err := optionalPeriod(args[2:])
	if err != nil {
		return app.usageError(c, err)
	}

	entry, err := app.Ledger.AddEntry(ctx, args[0], amount, month, year)
	if err != nil {
		return app.fail(c, err)
	}

	app.Out.Message("Added new Entry: %s", entry.Name)
	return subcommands.ExitSuccess
}

func (c *addCmd) static(ctx context.Context, app *App, args []string) subcommands.ExitStatus {
	if len(args) != 2 {
		return app.usageError(c, errArguments)
	}
	amount, err := core.ParseAmount(args[1])
	if err != nil {
		return app.usageError(c, fmt.Errorf("amount %q: %w", args[1], err))
	}

	st, err := app.Ledger.AddStatic(ctx, args[0], amount)
	if err != nil {
		return app.fail(c, err)
	}

	app.Out.Message("Added new Static: %s", st.Name)
	return subcommands.ExitSuccess
}

package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"lineup/internal/core"
)

type showStaticsCmd struct{}

func (*showStaticsCmd) Name() string     { return "show-statics" }
func (*showStaticsCmd) Synopsis() string { return "list static templates with their ids" }
func (*showStaticsCmd) Usage() string {
	return `lineup show-statics

  Lists every static template. The id column is what delete-static expects.
`
}

func (*showStaticsCmd) SetFlags(*flag.FlagSet) {}

func (c *showStaticsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, ok := appFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}
	if f.NArg() != 0 {
		return app.usageError(c, errArguments)
	}

	statics, err := app.Ledger.Statics(ctx)
	if err != nil {
		return app.fail(c, err)
	}

	app.Out.Statics(statics)
	return subcommands.ExitSuccess
}

type deleteStaticCmd struct{}

func (*deleteStaticCmd) Name() string     { return "delete-static" }
func (*deleteStaticCmd) Synopsis() string { return "delete a static template by id" }
func (*deleteStaticCmd) Usage() string {
	return `lineup delete-static <id>

  Deletes the static template. Months that already received it keep their
  entries.
`
}

func (*deleteStaticCmd) SetFlags(*flag.FlagSet) {}

func (c *deleteStaticCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, ok := appFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}
	if f.NArg() != 1 {
		return app.usageError(c, errArguments)
	}
	id, err := core.ParseID(f.Arg(0))
	if err != nil {
		return app.usageError(c, fmt.Errorf("id %q: %w", f.Arg(0), err))
	}

	if err := app.Ledger.DeleteStatic(ctx, id); err != nil {
		return app.fail(c, err)
	}

	app.Out.Message("Deleted static value with id = %d.", id)
	return subcommands.ExitSuccess
}

// Package commands implements the lineup verbs as subcommands.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"lineup/internal/core"
	"lineup/internal/render"
	"lineup/internal/services"
)

// App is handed to every command through Commander.Execute.
type App struct {
	Ledger *services.LedgerService
	Out    *render.Formatter
	Err    io.Writer
}

func NewApp(ledger *services.LedgerService, out *render.Formatter) *App {
	return &App{Ledger: ledger, Out: out, Err: os.Stderr}
}

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "ledger")
	c.Register(&showCmd{}, "ledger")

	c.Register(&showStaticsCmd{}, "statics")
	c.Register(&deleteStaticCmd{}, "statics")
}

// appFrom extracts the App passed to Commander.Execute.
func appFrom(args []interface{}) (*App, bool) {
	if len(args) == 0 {
		return nil, false
	}
	app, ok := args[0].(*App)
	return app, ok && app != nil
}

// usageError reports rejected input together with the command usage.
func (a *App) usageError(cmd subcommands.Command, err error) subcommands.ExitStatus {
	fmt.Fprintf(a.Err, "Error: %v\n\nUsage: %s", err, cmd.Usage())
	return subcommands.ExitUsageError
}

// fail maps an error from the ledger to an exit status.
func (a *App) fail(cmd subcommands.Command, err error) subcommands.ExitStatus {
	if core.IsInputError(err) {
		return a.usageError(cmd, err)
	}
	fmt.Fprintf(a.Err, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// optionalPeriod parses the trailing [month] [year] arguments.
func optionalPeriod(args []string) (month, year int, err error) {
	if len(args) > 0 {
		if month, err = core.ParseMonth(args[0]); err != nil {
			return 0, 0, fmt.Errorf("month %q: %w", args[0], err)
		}
	}
	if len(args) > 1 {
		if year, err = core.ParseYear(args[1]); err != nil {
			return 0, 0, fmt.Errorf("year %q: %w", args[1], err)
		}
	}
	return month, year, nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"

	"lineup/internal/cli"
	"lineup/internal/commands"
	"lineup/internal/config"
	"lineup/internal/render"
	"lineup/internal/services"
)

var (
	configFile = flag.String("config", config.DefaultConfigFile, "Path to the optional YAML configuration file")
	dbPath     = flag.String("db", "", "Path to the ledger database (overrides configuration)")
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env file for local overrides
	cli.LoadEnvFile()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	commands.Register(commander)

	flag.Parse()

	// help, flags and commands need no ledger
	if flag.NArg() == 0 || isBuiltin(flag.Arg(0)) {
		return int(commander.Execute(context.Background()))
	}

	cfg, err := cli.LoadAndValidateConfig(*configFile, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return int(subcommands.ExitFailure)
	}

	logger := cli.SetupLogger(cfg)

	ctx, stop := cli.NotifyContext()
	defer stop()

	repo, err := cli.InitSQLite(ctx, logger, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return int(subcommands.ExitFailure)
	}
	defer repo.Close()

	ledger := services.NewLedgerService(repo, logger)
	out := render.New(os.Stdout, render.ColorEnabled(cfg.Color))

	return int(commander.Execute(ctx, commands.NewApp(ledger, out)))
}

func isBuiltin(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	return false
}

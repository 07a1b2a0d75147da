package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/inputtree/internal/cli"
	"github.com/alexanderramin/inputtree/internal/config"
	"github.com/alexanderramin/inputtree/internal/repository"
	"github.com/alexanderramin/inputtree/internal/service"
	"github.com/alexanderramin/inputtree/internal/tree"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Use-case logging goes to stderr so it never mixes with tree output.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		level, _ := cfg.SlogLevel()
		observer = service.NewLogUseCaseObserver(os.Stderr, level)
	}

	factory := tree.NewFactory(tree.UUIDs)
	store := repository.NewMemoryForestRepo(factory.NewForest(), cfg.HistoryLimit)

	app := &cli.App{
		Forest: service.NewForestService(store, factory, cfg, observer),
	}

	// Detect interactive terminal for the bare entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

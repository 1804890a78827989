package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hammamikhairi/recipebox/internal/conversation"
	"github.com/hammamikhairi/recipebox/internal/display"
	"github.com/hammamikhairi/recipebox/internal/engine"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/recipe"
)

type replOptions struct {
	seed    bool
	imports []string
}

// runInteractive starts the Bubble Tea session over an in-memory collection.
func runInteractive(ctx context.Context, cc *commandContext, opts replOptions) error {
	// Direct logs to a file by default so the REPL stays clean.
	var logOut io.Writer = os.Stderr
	if logFile := cc.cfg.Logging.File; logFile != "" && logFile != "stderr" {
		dir := filepath.Dir(logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	log := logger.New(cc.logLevel(), logOut)

	// Route the standard log package and slog's default through the same
	// output so third-party libraries don't write over the prompt.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)
	slog.SetDefault(log.Slog())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Wire dependencies.
	recipes := recipe.NewCollection(log)
	if opts.seed {
		recipes.Seed()
	}
	store := cc.store(log)
	eng := engine.New(recipes, store, log,
		engine.WithDefaultCourse(cc.cfg.Defaults.Course),
		engine.WithDefaultServings(cc.cfg.Defaults.ServingSize),
	)
	ui := display.NewUI()
	notifier := conversation.NewScreenNotifier(log, ui)
	parser := conversation.NewKeywordParser(log)

	app := &cliApp{
		engine:   eng,
		parser:   parser,
		notifier: notifier,
		log:      log,
		ui:       ui,
	}

	if cc.cfg.Display.Banner {
		fmt.Println(display.RenderBanner(0))
	}
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	// Run app logic in a background goroutine.
	go func() {
		ui.WaitReady()
		for _, path := range opts.imports {
			app.importRecipe(ctx, path)
		}
		app.run(ctx, ui.InputChan())
		ui.Quit()
	}()

	// Bubble Tea owns the terminal and blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
		return err
	}
	return nil
}

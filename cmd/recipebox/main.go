// Recipe Box - keep recipes, scale them and print shopping lists.
//
// Usage:
//
//	recipebox [--seed] [--import FILE]...
//	recipebox show FILE...
//	recipebox shop FILE --serves N
//	recipebox convert SRC [DST]
//	recipebox check [DIR] [--watch]
//	recipebox config init [PATH]
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		cancel()
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipebox/internal/storage"
	"github.com/hammamikhairi/recipebox/internal/watch"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var follow bool

	cmd := &cobra.Command{
		Use:   "check [DIR]",
		Short: "Validate every recipe file in the library",
		Long:  "Check decodes every recipe file in DIR (default: the library directory) and reports the ones that would fail to import. With --watch it keeps running and checks files as they change.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := ctx.newLogger(cmd)
			store := ctx.store(log)
			if len(args) == 1 {
				store = storage.NewFileStore(args[0], log, storage.WithExtension(ctx.cfg.Library.Extension))
			}
			out := cmd.OutOrStdout()

			files, err := store.List(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(files))
			invalid := 0
			for _, file := range files {
				c := watch.Check(file)
				if c.Kind != watch.ChangeValid {
					invalid++
				}
				rows = append(rows, checkRow(out, c))
			}
			if len(rows) > 0 {
				fmt.Fprintln(out, renderTable([]string{"File", "Status", "Detail"}, rows, nil))
			}
			fmt.Fprintf(out, "%d file(s) checked, %d invalid\n", len(files), invalid)

			if !follow {
				if invalid > 0 {
					return fmt.Errorf("%d invalid recipe file(s)", invalid)
				}
				return nil
			}

			w, err := watch.NewWatcher(store.Dir(), ctx.cfg.Library.Extension)
			if err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			if err := w.Start(); err != nil {
				return fmt.Errorf("watch %s: %w", store.Dir(), err)
			}
			defer w.Stop()

			log.Info("watching %s for changes", store.Dir())
			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case c, ok := <-w.Changes:
					if !ok {
						return nil
					}
					row := checkRow(out, c)
					fmt.Fprintf(out, "%s: %s %s\n", row[0], row[1], row[2])
				}
			}
		},
	}

	cmd.Flags().BoolVarP(&follow, "watch", "w", false, "keep checking files as they change")
	return cmd
}

func checkRow(out io.Writer, c watch.Change) []string {
	name := filepath.Base(c.File)
	switch c.Kind {
	case watch.ChangeValid:
		return []string{name, paint(out, ansiGreen, "ok"), c.Recipe.Name}
	case watch.ChangeRemoved:
		return []string{name, "removed", ""}
	}
	return []string{name, paint(out, ansiRed, "invalid"), c.Err.Error()}
}

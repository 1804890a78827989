package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/listedit"
	"github.com/hammamikhairi/recipebox/internal/storage"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show [FILE...]",
		Short: "Print recipe files, or the library when no file is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := ctx.store(ctx.newLogger(cmd))
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				return printLibrary(cmd.Context(), out, store)
			}

			for i, path := range args {
				r, err := store.Read(cmd.Context(), path)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				printRecipe(out, r)
			}
			return nil
		},
	}
}

// printLibrary lists the library as a table. Files that fail to decode
// are listed with their error.
func printLibrary(ctx context.Context, out io.Writer, store *storage.FileStore) error {
	files, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(out, "No recipe files in %s\n", store.Dir())
		return nil
	}

	rows := make([][]string, 0, len(files))
	for _, file := range files {
		name := filepath.Base(file)
		r, err := store.Read(ctx, file)
		if err != nil {
			rows = append(rows, []string{name, paint(out, ansiRed, "unreadable"), "", "", ""})
			continue
		}
		rows = append(rows, []string{
			name,
			r.Name,
			r.Course,
			domain.FormatQuantity(r.ServingSize),
			strconv.Itoa(len(r.Ingredients)),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"File", "Name", "Course", "Serves", "Ingredients"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
	))
	return nil
}

func printRecipe(out io.Writer, r *domain.Recipe) {
	fmt.Fprintln(out, paint(out, ansiBold, r.Name))
	fmt.Fprintf(out, "%s, serves %s\n", r.Course, domain.FormatQuantity(r.ServingSize))

	if len(r.Ingredients) > 0 {
		rows := make([][]string, 0, len(r.Ingredients))
		for i, ing := range r.Ingredients {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				ing.Name,
				domain.FormatQuantity(ing.Quantity),
				ing.Unit,
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"#", "Ingredient", "Qty", "Unit"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
		))
	}

	for _, step := range listedit.Numbered(r.Instructions) {
		fmt.Fprintln(out, step)
	}
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipebox/internal/conversation"
	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/shopping"
)

func newShopCommand(ctx *commandContext) *cobra.Command {
	var serves string

	cmd := &cobra.Command{
		Use:   "shop FILE",
		Short: "Print a recipe's shopping list scaled to a serving size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := conversation.ParseQuantity(serves)
			if err != nil {
				return fmt.Errorf("--serves: %w", err)
			}

			store := ctx.store(ctx.newLogger(cmd))
			r, err := store.Read(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			items, err := shopping.Generate(r, target)
			if errors.Is(err, domain.ErrInvalidState) {
				return fmt.Errorf("%q has no serving size, so it can't be scaled", r.Name)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Shopping list: %s for %s\n", r.Name, domain.FormatQuantity(target))
			rows := make([][]string, 0, len(items))
			for _, it := range items {
				rows = append(rows, []string{it.Name, domain.FormatQuantity(it.Quantity), it.Unit})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Ingredient", "Qty", "Unit"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&serves, "serves", "s", "", "number of servings to shop for")
	_ = cmd.MarkFlagRequired("serves")
	return cmd
}

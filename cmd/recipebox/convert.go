package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipebox/internal/conversation"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "convert SRC [DST]",
		Short: "Rewrite a recipe file, including the old array format, as a canonical .rcpe file",
		Long:  "Convert reads SRC in either file format and writes it in the current format. Without DST the file is rewritten in place.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dst string
			if len(args) == 2 {
				dst = args[1]
			}

			log := ctx.newLogger(cmd)
			store := ctx.store(log)
			written, format, err := store.Convert(cmd.Context(), args[0], dst)
			if err != nil {
				return err
			}
			notifier := conversation.NewScreenNotifier(log, conversation.LinePrinter{W: cmd.OutOrStdout()})
			return notifier.Notify(cmd.Context(), fmt.Sprintf("Converted %s (%s) to %s", args[0], format, written))
		},
	}
}

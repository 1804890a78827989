package conversation

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

var _ domain.Notifier = (*ScreenNotifier)(nil)

// Printer is where notifications end up: the terminal UI in the
// interactive session, or a LinePrinter for one-shot commands.
type Printer interface {
	PrintChat(text string)
	PrintUrgent(text string)
}

// ScreenNotifier delivers notifications through a Printer.
type ScreenNotifier struct {
	log *logger.Logger
	out Printer
}

// NewScreenNotifier creates a notifier writing to out.
func NewScreenNotifier(log *logger.Logger, out Printer) *ScreenNotifier {
	return &ScreenNotifier{log: log, out: out}
}

// Notify prints a normal notification. Blank messages are dropped.
func (n *ScreenNotifier) Notify(ctx context.Context, message string) error {
	return n.deliver(ctx, message, n.out.PrintChat)
}

// NotifyUrgent prints an error or warning.
func (n *ScreenNotifier) NotifyUrgent(ctx context.Context, message string) error {
	return n.deliver(ctx, message, n.out.PrintUrgent)
}

func (n *ScreenNotifier) deliver(ctx context.Context, message string, print func(string)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil
	}
	n.log.Debug("notify: %s", message)
	print(message)
	return nil
}

// LinePrinter writes notifications as plain lines. Urgent lines get an
// "error: " prefix.
type LinePrinter struct {
	W io.Writer
}

func (p LinePrinter) PrintChat(text string)   { fmt.Fprintln(p.W, text) }
func (p LinePrinter) PrintUrgent(text string) { fmt.Fprintln(p.W, "error: "+text) }

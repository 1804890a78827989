package display

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

//go:embed banner.txt
var bannerArt string

const tagline = "keep recipes · scale them · shop for them"

// RenderBanner returns the startup art and tagline centred in width
// columns. A width of zero or less means the current terminal width.
func RenderBanner(width int) string {
	if width <= 0 {
		width = termWidth()
	}

	art := strings.TrimRight(bannerArt, "\n")
	block := lipgloss.JoinVertical(lipgloss.Center,
		BannerStyle.Render(art),
		"",
		secondaryStyle.Render(tagline),
	)
	if lipgloss.Width(block) >= width {
		return block + "\n"
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block) + "\n"
}

// termWidth returns the terminal column count, or 80 when stdout is not a
// terminal.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}

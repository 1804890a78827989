package display

import "github.com/charmbracelet/lipgloss"

// Tone selects how a printed line is styled.
type Tone int

const (
	ToneChat Tone = iota
	ToneHeading
	ToneText
	ToneHint
	ToneUrgent
)

// Palette.
const (
	colorSlate   = lipgloss.Color("#94a3b8")
	colorSky     = lipgloss.Color("#bae6fd")
	colorMint    = lipgloss.Color("#bbf7d0")
	colorAmber   = lipgloss.Color("#fde68a")
	colorCoral   = lipgloss.Color("#fca5a5")
	colorZinc200 = lipgloss.Color("#d4d4d8")
	colorZinc400 = lipgloss.Color("#a1a1aa")
	colorZinc500 = lipgloss.Color("#71717a")
	colorZinc600 = lipgloss.Color("#52525b")
	colorZinc800 = lipgloss.Color("#27272a")
)

func fg(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

var (
	// BannerStyle colours the startup art.
	BannerStyle = fg(colorSlate)

	headingStyle   = fg(colorMint).Bold(true)
	primaryStyle   = fg(colorZinc200)
	secondaryStyle = fg(colorZinc500)
	selectedStyle  = fg(colorAmber)

	tones = map[Tone]lipgloss.Style{
		ToneChat:    fg(colorSky),
		ToneHeading: headingStyle,
		ToneText:    primaryStyle,
		ToneHint:    secondaryStyle,
		ToneUrgent:  fg(colorCoral),
	}

	labelStyle = fg(colorZinc400)

	// Status bar and prompt.
	barStyle    = lipgloss.NewStyle().Background(colorZinc800).Foreground(colorZinc400)
	barSep      = fg(colorZinc600).Render("  │  ")
	barRecipe   = fg(colorMint)
	barForm     = fg(colorAmber)
	barConfirm  = fg(colorCoral)
	promptStyle = fg(colorSlate)
	echoStyle   = fg(colorZinc400)
)

// Styled renders text in the given tone, indented like all app output.
func Styled(t Tone, text string) string {
	return tones[t].Render("  " + text)
}

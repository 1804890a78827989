// Package display provides the terminal UI using Bubble Tea.
//
// [UI] keeps an input prompt and a status bar (selected recipe, open form,
// pending back/discard question) at the bottom of the terminal. Output
// from other goroutines is printed above them through Program.Println, so
// it never tears the prompt.
package display

import (
	"fmt"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// Status is what the bar at the bottom shows. It also picks the prompt.
type Status struct {
	Recipe  string // selected recipe name, empty when none
	Form    string // title of the open form, empty when none
	Confirm bool   // a back/discard prompt is waiting
}

func (s Status) empty() bool {
	return s.Recipe == "" && s.Form == "" && !s.Confirm
}

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run], which blocks. After [UI.WaitReady] returns,
// any goroutine may print, call [UI.SetStatus] and read [UI.InputChan].
type UI struct {
	program *tea.Program
	inputCh chan string
	readyCh chan struct{}
	done    atomic.Bool
}

// NewUI creates the display.
func NewUI() *UI {
	return &UI{
		inputCh: make(chan string, 16),
		readyCh: make(chan struct{}),
	}
}

func (u *UI) running() bool {
	return u.program != nil && !u.done.Load()
}

// Println prints above the prompt, or to stdout before Run starts and
// after it returns.
func (u *UI) Println(a ...any) {
	if u.running() {
		u.program.Println(a...)
		return
	}
	fmt.Println(a...)
}

// Print writes one styled line.
func (u *UI) Print(t Tone, text string) { u.Println(Styled(t, text)) }

func (u *UI) PrintChat(text string)    { u.Print(ToneChat, text) }
func (u *UI) PrintHeading(text string) { u.Print(ToneHeading, text) }
func (u *UI) PrintText(text string)    { u.Print(ToneText, text) }
func (u *UI) PrintHint(text string)    { u.Print(ToneHint, text) }
func (u *UI) PrintUrgent(text string)  { u.Print(ToneUrgent, text) }

// PrintLines prints pre-rendered lines as one block.
func (u *UI) PrintLines(lines []string) {
	if len(lines) > 0 {
		u.Println(strings.Join(lines, "\n"))
	}
}

// SetStatus updates the status bar and prompt.
func (u *UI) SetStatus(s Status) {
	if u.running() {
		u.program.Send(statusMsg(s))
	}
}

// InputChan returns completed input lines.
func (u *UI) InputChan() <-chan string { return u.inputCh }

// WaitReady blocks until the event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// Run starts the event loop and blocks until quit.
func (u *UI) Run() error {
	m := newModel(u.inputCh, u.readyCh, func(prompt, line string) {
		u.Println(promptStyle.Render(strings.TrimSpace(prompt)) + " " + echoStyle.Render(line))
	})

	u.program = tea.NewProgram(m)
	_, err := u.program.Run()
	u.done.Store(true)
	return err
}

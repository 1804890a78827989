package display

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Prompts are plain text so the textinput width math stays correct.
const (
	browsePrompt  = "recipes> "
	formPrompt    = "form> "
	confirmPrompt = "back/discard> "
)

func promptFor(s Status) string {
	switch {
	case s.Confirm:
		return confirmPrompt
	case s.Form != "":
		return formPrompt
	}
	return browsePrompt
}

// history recalls previously entered lines with the arrow keys.
type history struct {
	entries []string
	pos     int // len(entries) when not browsing
}

func (h *history) push(line string) {
	if n := len(h.entries); n == 0 || h.entries[n-1] != line {
		h.entries = append(h.entries, line)
	}
	h.pos = len(h.entries)
}

func (h *history) prev() (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	h.pos--
	return h.entries[h.pos], true
}

// next moves forward; past the newest entry it returns an empty line.
func (h *history) next() (string, bool) {
	if h.pos >= len(h.entries) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.entries) {
		return "", true
	}
	return h.entries[h.pos], true
}

type statusMsg Status

type model struct {
	input   textinput.Model
	inputCh chan<- string
	readyCh chan struct{}
	echo    func(prompt, line string)
	hist    *history
	status  Status
	width   int
}

func newModel(inputCh chan<- string, readyCh chan struct{}, echo func(prompt, line string)) model {
	ti := textinput.New()
	ti.Prompt = browsePrompt
	ti.PromptStyle = promptStyle
	ti.TextStyle = echoStyle
	ti.Cursor.Style = promptStyle
	ti.CharLimit = 500
	ti.Width = 60
	ti.Focus()

	return model{
		input:   ti,
		inputCh: inputCh,
		readyCh: readyCh,
		echo:    echo,
		hist:    &history{},
	}
}

func (m model) Init() tea.Cmd {
	ready := m.readyCh
	return tea.Batch(
		textinput.Blink,
		tea.SetWindowTitle(titleStr(Status{})),
		func() tea.Msg {
			close(ready)
			return nil
		},
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyUp:
			if line, ok := m.hist.prev(); ok {
				m.input.SetValue(line)
				m.input.CursorEnd()
			}
			return m, nil
		case tea.KeyDown:
			if line, ok := m.hist.next(); ok {
				m.input.SetValue(line)
				m.input.CursorEnd()
			}
			return m, nil
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(line) == "" {
				return m, nil
			}
			m.hist.push(line)
			m.inputCh <- line
			// Echo from a Cmd so Update never blocks on Println.
			echo, prompt := m.echo, m.input.Prompt
			return m, func() tea.Msg {
				echo(prompt, line)
				return nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.fitInput()
		return m, nil

	case statusMsg:
		m.status = Status(msg)
		m.input.Prompt = promptFor(m.status)
		m.fitInput()
		return m, tea.SetWindowTitle(titleStr(m.status))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) fitInput() {
	if w := m.width - len(m.input.Prompt); w > 0 {
		m.input.Width = w
	}
}

func (m model) View() string {
	var b strings.Builder
	if !m.status.empty() {
		b.WriteString(renderBar(m.status, m.width))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	return b.String()
}

func titleStr(s Status) string {
	switch {
	case s.Form != "":
		return "Recipe Box - " + s.Form
	case s.Recipe != "":
		return "Recipe Box - " + s.Recipe
	}
	return "Recipe Box"
}

func renderBar(s Status, width int) string {
	var parts []string
	if s.Recipe != "" {
		parts = append(parts, labelStyle.Render("recipe: ")+barRecipe.Render(s.Recipe))
	}
	if s.Form != "" {
		parts = append(parts, labelStyle.Render("editing: ")+barForm.Render(s.Form))
	}
	if s.Confirm {
		parts = append(parts, barConfirm.Render("back or discard?"))
	}
	if width <= 0 {
		width = 80
	}
	return barStyle.Width(width).Render(" " + strings.Join(parts, barSep) + " ")
}

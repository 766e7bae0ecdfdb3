package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mira/kith/internal/assistant"
)

// exchange is one prompt/reply pair shown in the transcript
type exchange struct {
	input string
	reply string
}

// Model is the root Bubble Tea model: a scrolling transcript of commands
// and replies above a single prompt line. All command semantics live in the
// assistant; this model only moves text around.
type Model struct {
	assist  *assistant.Assistant
	input   textinput.Model
	history []exchange

	width    int
	height   int
	quitting bool
}

// New creates a new root model
func New(a *assistant.Assistant) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a command (try 'help')"
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Width = 60
	ti.Focus()

	return Model{
		assist: a,
		input:  ti,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, DefaultKeyMap.Clear):
			m.history = nil
			return m, nil

		case key.Matches(msg, DefaultKeyMap.Submit):
			line := m.input.Value()
			m.input.SetValue("")
			if strings.TrimSpace(line) == "" {
				return m, nil
			}

			reply, quit := m.assist.Handle(line)
			m.history = append(m.history, exchange{input: line, reply: reply})
			if quit {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model - renders header + transcript + prompt + footer
func (m Model) View() string {
	if m.quitting {
		return "Good bye!\n"
	}

	header := titleStyle.Render("kith - contact assistant")
	welcome := subtitleStyle.Render("Welcome to the assistant bot!")

	transcript := m.renderTranscript()

	footer := helpStyle.Render("enter: run command  ctrl+l: clear  ctrl+c: quit")

	body := fmt.Sprintf("%s\n%s\n\n%s%s\n\n%s", header, welcome, transcript, m.input.View(), footer)

	if m.width == 0 {
		return body
	}

	innerWidth := m.width - 6 // account for border (2) + padding (4)
	if innerWidth < 20 {
		innerWidth = 20
	}
	frame := appBorderStyle.Width(innerWidth)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

// renderTranscript renders the most recent exchanges that fit the window
func (m Model) renderTranscript() string {
	if len(m.history) == 0 {
		return ""
	}

	var lines []string
	for _, ex := range m.history {
		lines = append(lines, inputEchoStyle.Render("> "+ex.input))
		if ex.reply != "" {
			lines = append(lines, replyStyle.Render(ex.reply))
		}
	}

	// Keep only what fits above the prompt
	if m.height > 0 {
		budget := m.height - 10 // header, welcome, prompt, footer, frame
		if budget < 3 {
			budget = 3
		}
		if len(lines) > budget {
			lines = lines[len(lines)-budget:]
		}
	}

	return strings.Join(lines, "\n") + "\n\n"
}

// Run starts the TUI
func Run(a *assistant.Assistant) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

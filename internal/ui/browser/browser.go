// Package browser implements the interactive command browser behind
// 'manage help --interactive'.
package browser

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/manage-tools/cli/internal/schema"
	"github.com/manage-tools/cli/internal/ui/style"
)

// Launch returns a function that opens the browser over the schema's
// commands. Injected into the dispatcher so the engine stays TUI-free.
func Launch(sch *schema.Schema) func() error {
	return func() error {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("interactive help requires an interactive terminal")
		}

		m := newModel(sch)
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err := p.Run()
		return err
	}
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Select: key.NewBinding(key.WithKeys("enter")),
	Back:   key.NewBinding(key.WithKeys("esc")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

type model struct {
	sch      *schema.Schema
	names    []string
	cursor   int
	detail   bool
	viewport viewport.Model
	width    int
	height   int
}

func newModel(sch *schema.Schema) model {
	return model{
		sch:      sch,
		names:    sch.Commands(),
		viewport: viewport.New(0, 0),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 2

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Back):
			if m.detail {
				m.detail = false
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			if m.detail {
				m.viewport.LineUp(1)
			} else if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, keys.Down):
			if m.detail {
				m.viewport.LineDown(1)
			} else if m.cursor < len(m.names)-1 {
				m.cursor++
			}

		case key.Matches(msg, keys.Select):
			if !m.detail && len(m.names) > 0 {
				text, _ := m.sch.CommandHelp(m.names[m.cursor])
				m.viewport.SetContent(text)
				m.viewport.GotoTop()
				m.detail = true
			}
		}
	}

	return m, nil
}

func (m model) View() string {
	if m.detail {
		footer := style.Muted("esc back - q quit")
		return m.viewport.View() + "\n" + footer
	}

	var b strings.Builder
	b.WriteString(style.Header("manage commands") + "\n\n")

	for i, name := range m.names {
		line := fmt.Sprintf("  %-28s", name)
		if i == m.cursor {
			line = style.Info("> " + line[2:])
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + style.Muted("enter details - q quit") + "\n")
	return b.String()
}

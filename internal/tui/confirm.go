package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	prompt    string
	answered  bool
	confirmed bool
}

func newConfirmModel(prompt string) confirmModel {
	return confirmModel{prompt: prompt}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.answered, m.confirmed = true, true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.quit):
		m.answered, m.confirmed = true, false
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.answered {
		if m.confirmed {
			return m.prompt + " " + okStyle.Render("yes") + "\n"
		}
		return m.prompt + " " + warnStyle.Render("no") + "\n"
	}
	return overlayBoxStyle.Render(m.prompt+"\n\n"+helpStyle.Render("y: yes    n: no")) + "\n"
}

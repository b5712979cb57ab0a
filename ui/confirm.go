package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Confirm asks one yes/no question. Anything but an explicit yes is a no.
type Confirm struct {
	question string
	answer   bool
	answered bool
}

func NewConfirm(question string) Confirm {
	return Confirm{question: question}
}

func (c Confirm) Answer() bool {
	return c.answered && c.answer
}

func (c Confirm) View() string {
	if c.answered {
		return ""
	}
	return warningStyle.Render(c.question) + " [y/N] "
}

func (c Confirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		c.answer = true
	case "n", "N", "enter", "esc", "ctrl+c":
		c.answer = false
	default:
		return c, nil
	}
	c.answered = true
	return c, tea.Quit
}

func (c Confirm) Init() tea.Cmd {
	return nil
}

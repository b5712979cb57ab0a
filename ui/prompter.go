package ui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Prompter asks the dungeon recovery questions in the terminal, one
// small program per question.
type Prompter struct {
	Out     io.Writer
	Options []tea.ProgramOption
}

func (p Prompter) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

func (p Prompter) Message(text string) {
	fmt.Fprintln(p.out(), warningStyle.Render(text))
}

func (p Prompter) Confirm(question string) bool {
	model, err := tea.NewProgram(NewConfirm(question), p.Options...).StartReturningModel()
	if err != nil {
		fmt.Fprintln(p.out(), "Error happened asking: "+err.Error())
		return false
	}
	return model.(Confirm).Answer()
}

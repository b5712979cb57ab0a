package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// Start runs the savefile selector over dir, the working directory when
// dir is empty, and returns the chosen path.
func Start(dir string) (string, error) {
	fileSelector, err := CreateFileSelector(dir)
	if err != nil {
		return "", err
	}
	model, err := tea.NewProgram(fileSelector).StartReturningModel()
	if err != nil {
		return "", errors.Wrap(err, "Start error running file selector")
	}
	return model.(FileSelector).Chosen(), nil
}

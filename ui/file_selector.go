package ui

import (
	"os"
	"path/filepath"
	"time"

	match "github.com/alexpantyukhin/go-pattern-match"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"roguesave/ds"
	"roguesave/rsave/rfile"
)

const (
	DirStateCorrect   = "correct"
	DirStateIncorrect = "incorrect"
	DirStateBlank     = ""
)

type (
	Entry struct {
		Name       string
		IsSavefile bool
		ModTime    time.Time
	}

	// FileSelector lists the regular files of one directory and lets the
	// user pick a savefile among them.
	FileSelector struct {
		dir      string
		dirState string
		entries  []Entry
		cursor   int
		chosen   string
	}
)

func CreateFileSelector(dir string) (FileSelector, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return FileSelector{}, errors.Wrap(err, "CreateFileSelector get current working directory error")
		}
		dir = cwd
	}
	entries, err := ReadDirectory(dir)
	if err != nil {
		return FileSelector{}, err
	}
	return newFileSelector(dir, entries), nil
}

func newFileSelector(dir string, entries []Entry) FileSelector {
	dirState := DirStateBlank
	if len(entries) > 0 {
		dirState = DirStateIncorrect
		if lo.SomeBy(entries, func(e Entry) bool { return e.IsSavefile }) {
			dirState = DirStateCorrect
		}
	}
	return FileSelector{
		dir:      dir,
		dirState: dirState,
		entries:  entries,
	}
}

func ReadDirectory(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, `ReadDirectory error reading "%s"`, dir)
	}

	entries := lo.FilterMap(
		dirEntries,
		func(t os.DirEntry, _ int) (Entry, bool) {
			if t.IsDir() {
				return Entry{}, false
			}
			info, err := t.Info()
			if err != nil {
				return Entry{}, false
			}
			return Entry{
				Name:       t.Name(),
				IsSavefile: rfile.IsSavefile(filepath.Join(dir, t.Name())),
				ModTime:    info.ModTime(),
			}, true
		},
	)
	return entries, nil
}

// Chosen is the path of the picked savefile, or "" when the user quit.
func (s FileSelector) Chosen() string {
	return s.chosen
}

func (s FileSelector) View() string {
	output := titleStyle.Render("ROGUESAVE") + "\n\n"
	output += "Current directory: " + s.dir + "\n"

	_, msgAny := match.
		Match(s.dirState).
		When(
			match.OneOf(DirStateIncorrect, DirStateBlank),
			warningStyle.Render("No savefile here, please choose another folder"),
		).
		When(DirStateCorrect, "Pick a savefile with up/down and enter, q to quit").
		When(match.ANY, nil).
		Result()
	msg, ok := msgAny.(string)
	if !ok {
		panic(ds.ErrUnreachableCode{Caller: "FileSelector.View", State: s.dirState})
	}
	output += msg + "\n\n"

	for i, entry := range s.entries {
		line := entry.Name
		if entry.IsSavefile {
			line += faintStyle.Render("  " + entry.ModTime.Format("2006-01-02 15:04"))
		}
		switch {
		case i == s.cursor:
			output += selectedStyle.Render("> "+line) + "\n"
		case entry.IsSavefile:
			output += "  " + savefileStyle.Render(line) + "\n"
		default:
			output += "  " + faintStyle.Render(line) + "\n"
		}
	}

	return output
}

func (s FileSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.entries)-1 {
			s.cursor++
		}
	case "enter":
		if len(s.entries) > 0 && s.entries[s.cursor].IsSavefile {
			s.chosen = filepath.Join(s.dir, s.entries[s.cursor].Name)
			return s, tea.Quit
		}
	case "q", "esc", "ctrl+c":
		return s, tea.Quit
	}
	return s, nil
}

func (s FileSelector) Init() tea.Cmd {
	return nil
}

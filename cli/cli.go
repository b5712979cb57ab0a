package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"

	"roguesave/ds"
	"roguesave/rsave"
	"roguesave/rsave/rdump"
	"roguesave/rsave/rfile"
	"roguesave/rsave/rinfo"
	"roguesave/rsave/rstate"
	"roguesave/ui"
)

type (
	Args struct {
		EditDir     string          `arg:"--edit-dir,env:ROGUESAVE_EDIT_DIR" help:"folder holding the edit/*.lua tables" placeholder:"DIR"`
		NoRecover   bool            `arg:"--no-recover" help:"fail instead of offering to discard a corrupt dungeon"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
		Convert     *ConvertCmd     `arg:"subcommand:convert"`
		Check       *CheckCmd       `arg:"subcommand:check"`
	}
	InteractiveCmd struct {
		Dir string `help:"folder to look for savefiles in" placeholder:"DIR"`
	}
	ConvertCmd struct {
		From  string `arg:"required" help:"path to savefile" placeholder:"SAVEFILE"`
		To    string `arg:"required" help:"path to destination file" placeholder:"file.json"`
		Force bool   `help:"overwrite the destination file"`
	}
	CheckCmd struct {
		Path string `arg:"positional,required" placeholder:"SAVEFILE"`
		JSON bool   `help:"print the summary as one line of JSON"`
	}

	Summary struct {
		Name     string   `json:"name"`
		Version  string   `json:"version"`
		Level    int      `json:"level"`
		Depth    int      `json:"depth"`
		Dead     bool     `json:"dead"`
		Dungeon  bool     `json:"dungeon"`
		Warnings []string `json:"warnings"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"A CLI utility to read a roguelike savefile, check it",
			"and convert it to JSON in the command line.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// LoadTables reads the edit tables from editDir, or uses the built-in
// ones when editDir is empty.
func LoadTables(editDir string) (*rinfo.Tables, error) {
	if editDir == "" {
		return rinfo.Default()
	}
	tables, err := rinfo.LoadLua(editDir)
	if err != nil {
		return nil, errors.Wrapf(err, `LoadTables error reading "%s"`, editDir)
	}
	return tables, nil
}

func Summarize(state *rstate.GameState) Summary {
	return Summary{
		Name:     state.Player.Name,
		Version:  state.Version.String(),
		Level:    state.Player.Lev,
		Depth:    state.Player.Depth,
		Dead:     state.Player.Dead(),
		Dungeon:  state.CharacterDungeon,
		Warnings: state.Warnings,
	}
}

func PrintSummary(out io.Writer, summary Summary) {
	fmt.Fprintf(out, "%s, level %d, version %s\n", summary.Name, summary.Level, summary.Version)
	switch {
	case summary.Dead:
		fmt.Fprintln(out, "The character is dead.")
	case summary.Dungeon:
		fmt.Fprintf(out, "In the dungeon at depth %d.\n", summary.Depth)
	default:
		fmt.Fprintln(out, "No dungeon level: a new one is made on the next start.")
	}
	for _, warning := range summary.Warnings {
		fmt.Fprintln(out, "Warning: "+warning)
	}
}

func StartChecking(out io.Writer, path string, tables *rinfo.Tables, config rsave.Config, asJSON bool) error {
	state, _, err := rfile.LoadPath(path, tables, config)
	if err != nil {
		return err
	}
	summary := Summarize(state)
	if asJSON {
		fmt.Fprintln(out, ds.DumpJSON(summary))
		return nil
	}
	PrintSummary(out, summary)
	return nil
}

func StartConverting(from string, to string, force bool, tables *rinfo.Tables, config rsave.Config) error {
	if !CheckExistence(from) {
		return errors.New("Source file does not exist!")
	}
	if CheckExistence(to) && !force {
		return errors.New(
			"Destination file existed. Please type the command again with --force to allow overwriting!",
		)
	}
	state, _, err := rfile.LoadPath(from, tables, config)
	if err != nil {
		return errors.Wrap(err, "Error happened decoding savefile")
	}
	bs, err := rdump.JSON(state)
	if err != nil {
		return err
	}
	if err := os.WriteFile(to, bs, 0644); err != nil {
		return errors.Wrap(err, "Error happened writing to file at: "+to)
	}
	return nil
}

func StartInteractive(dir string, tables *rinfo.Tables, config rsave.Config) error {
	path, err := ui.Start(dir)
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}
	return StartChecking(os.Stdout, path, tables, config, false)
}

func configFor(args Args) rsave.Config {
	config := rsave.DefaultConfig()
	if !args.NoRecover {
		config.Prompter = ui.Prompter{}
	}
	return config
}

func Start() {
	args := Args{}
	arg.MustParse(&args)

	tables, err := LoadTables(args.EditDir)
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
	config := configFor(args)

	switch {
	case args.Convert != nil:
		err = StartConverting(args.Convert.From, args.Convert.To, args.Convert.Force, tables, config)
		if err == nil {
			println("Done converting. Please check your result file at: " + args.Convert.To)
		}
	case args.Check != nil:
		err = StartChecking(os.Stdout, args.Check.Path, tables, config, args.Check.JSON)
	default:
		dir := ""
		if args.Interactive != nil {
			dir = args.Interactive.Dir
		}
		err = StartInteractive(dir, tables, config)
	}
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

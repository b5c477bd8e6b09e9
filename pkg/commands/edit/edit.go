package edit

import (
	"os"
	"os/exec"

	"github.com/arthur-debert/robe/pkg/commands/internal"
	"github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/logging"
	"github.com/arthur-debert/robe/pkg/types"
	"github.com/kballard/go-shellquote"
)

// DefaultEditor is used when neither the options nor $EDITOR name one
const DefaultEditor = "vi"

// Runner starts the editor and waits for it to exit
type Runner func(argv []string) error

// EditOptions holds options for the edit command
type EditOptions struct {
	StorageRoot string
	Target      string
	Profile     string   // Empty edits the live real path
	Editor      string   // Editor command line; empty reads $EDITOR
	Runner      Runner   // Defaults to running the editor on the terminal
	FileSystem  types.FS // Allow injecting a filesystem for testing
}

// Edit opens a target's real path, or one of its stored profiles, in the
// user's editor
func Edit(opts EditOptions) (*types.EditResult, error) {
	logger := logging.GetLogger("commands.edit")
	ref := types.Ref{Target: opts.Target, Profile: opts.Profile}

	w, err := internal.Open(opts.StorageRoot, opts.FileSystem)
	if err != nil {
		return nil, err
	}

	_, path, err := w.Resolve(ref)
	if err != nil {
		return nil, err
	}

	argv, err := EditorCommand(opts.Editor)
	if err != nil {
		return nil, err
	}
	argv = append(argv, path)

	runner := opts.Runner
	if runner == nil {
		runner = runTerminal
	}

	logger.Debug().Strs("argv", argv).Msg("Starting editor")
	if err := runner(argv); err != nil {
		return nil, errors.Wrapf(err, errors.ErrEditorExecute, "failed to run editor %s", argv[0])
	}

	return &types.EditResult{Ref: ref, Path: path, Editor: argv[:len(argv)-1]}, nil
}

// EditorCommand splits the editor command line with shell quoting rules.
// An empty editor falls back to $EDITOR and then to vi.
func EditorCommand(editor string) ([]string, error) {
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = DefaultEditor
	}

	argv, err := shellquote.Split(editor)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot parse editor %q", editor)
	}
	if len(argv) == 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "editor %q is empty", editor)
	}
	return argv, nil
}

func runTerminal(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/conn-castle/pkm/internal/messages"
	"github.com/conn-castle/pkm/internal/shell"
)

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.EditUse,
		Short: messages.EditShort,
		Args:  cobra.NoArgs,
		RunE:  runEdit,
	}
}

func runEdit(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	// Loading validates the manifest exists before handing it to an editor.
	file, err := a.loadManifest()
	if err != nil {
		return err
	}

	editor := shell.Editor(a.settings.Editor, os.Getenv)
	fmt.Fprintf(a.out, messages.EditorOpeningFmt, file.Path)

	editCmd := exec.Command(editor, file.Path)
	editCmd.Stdin = os.Stdin
	editCmd.Stdout = os.Stdout
	editCmd.Stderr = os.Stderr
	if err := editCmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf(messages.EditorExitFmt, exitErr.ExitCode())
		}
		return fmt.Errorf(messages.EditorNotFoundFmt, editor)
	}
	return nil
}

// Package prompt wraps interactive confirmation so commands can ask before
// destructive operations and degrade cleanly without a terminal.
package prompt

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/conn-castle/pkm/internal/messages"
	"github.com/conn-castle/pkm/internal/terminal"
)

// ErrNotInteractive is returned when a confirmation is required but no
// terminal is attached; callers should suggest the --yes flag.
var ErrNotInteractive = errors.New(messages.PromptRequiresTerminal)

// Confirmer asks yes/no questions.
type Confirmer struct {
	isTerminal func() bool
	runForm    func(*huh.Form) error
}

// NewConfirmer returns a Confirmer backed by the real terminal.
func NewConfirmer() *Confirmer {
	return &Confirmer{
		isTerminal: terminal.IsInteractive,
		runForm:    func(form *huh.Form) error { return form.Run() },
	}
}

// Confirm shows a yes/no prompt and returns the answer.
func (c *Confirmer) Confirm(title string) (bool, error) {
	if !c.isTerminal() {
		return false, ErrNotInteractive
	}
	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Value(&confirmed),
	))
	if err := c.runForm(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}

package prompt

import (
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmRequiresTerminal(t *testing.T) {
	c := &Confirmer{
		isTerminal: func() bool { return false },
		runForm:    func(*huh.Form) error { t.Fatal("form must not run"); return nil },
	}
	_, err := c.Confirm("Remove ripgrep (brew)?")
	assert.ErrorIs(t, err, ErrNotInteractive)
}

func TestConfirmAbortMeansNo(t *testing.T) {
	c := &Confirmer{
		isTerminal: func() bool { return true },
		runForm:    func(*huh.Form) error { return huh.ErrUserAborted },
	}
	confirmed, err := c.Confirm("Remove ripgrep (brew)?")
	require.NoError(t, err)
	assert.False(t, confirmed)
}

func TestConfirmPropagatesFormErrors(t *testing.T) {
	boom := errors.New("render failure")
	c := &Confirmer{
		isTerminal: func() bool { return true },
		runForm:    func(*huh.Form) error { return boom },
	}
	_, err := c.Confirm("Remove ripgrep (brew)?")
	assert.ErrorIs(t, err, boom)
}

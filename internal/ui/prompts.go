package ui

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mydehq/r3name/internal/types"
)

// R3nameTheme returns the huh theme used by prompts.
func R3nameTheme() *huh.Theme {
	return huh.ThemeCatppuccin()
}

// R3nameKeyMap maps esc and ctrl+c to quit.
func R3nameKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()

	km.Quit.SetKeys("esc", "ctrl+c")
	km.Quit.SetHelp("ctrl+c", "quit")
	km.Confirm.Submit.SetHelp("enter", "confirm • ctrl+c: quit")

	return km
}

// HandleAbort maps huh.ErrUserAborted to types.ErrUserAborted.
func HandleAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return types.ErrUserAborted
	}
	return err
}

// ConfirmPrompt asks before each rename. The form renders on w so prompts
// never mix with the report lines on stdout.
type ConfirmPrompt struct {
	w      io.Writer
	styles Styles
}

// NewConfirmPrompt creates a prompt that draws on w
func NewConfirmPrompt(w io.Writer, mode ColorMode) *ConfirmPrompt {
	return &ConfirmPrompt{w: w, styles: NewStyles(w, mode)}
}

// Confirm asks whether source should be renamed to target.
func (c *ConfirmPrompt) Confirm(source, target string) (bool, error) {
	confirmed := false
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Rename?").
				Description(fmt.Sprintf("%s\n→ %s", c.styles.Dim.Render(source), c.styles.Command.Render(target))).
				Affirmative("Rename").
				Negative("Skip").
				Value(&confirmed),
		),
	).
		WithTheme(R3nameTheme()).
		WithKeyMap(R3nameKeyMap()).
		WithProgramOptions(tea.WithOutput(c.w)).
		Run()
	if err != nil {
		return false, HandleAbort(err)
	}
	return confirmed, nil
}

package types

import (
	"errors"
	"fmt"
)

// ErrUserAborted is returned when the user cancels an interactive prompt.
var ErrUserAborted = errors.New("aborted by user")

// ErrNoMatch is returned when the pattern doesn't match a candidate path.
// It is a skip, not a failure.
type ErrNoMatch struct {
	Path    string
	Pattern string
}

func (e ErrNoMatch) Error() string {
	return fmt.Sprintf("path `%s` doesn't match regex `%s`", e.Path, e.Pattern)
}

// ErrSourceNotExist is returned when nothing exists at the candidate path
type ErrSourceNotExist struct {
	Path string
}

func (e ErrSourceNotExist) Error() string {
	return fmt.Sprintf("source path `%s` doesn't exist", e.Path)
}

// ErrDestinationExists is returned when the computed destination is already taken
type ErrDestinationExists struct {
	Path string
}

func (e ErrDestinationExists) Error() string {
	return fmt.Sprintf("destination path `%s` already exists", e.Path)
}

// ErrFilesystem wraps an error returned by the rename call itself
type ErrFilesystem struct {
	Err error
}

func (e ErrFilesystem) Error() string {
	return e.Err.Error()
}

func (e ErrFilesystem) Unwrap() error {
	return e.Err
}

// ErrInvalidPattern is returned when a pattern fails to compile
type ErrInvalidPattern struct {
	Pattern string
	Err     error
}

func (e ErrInvalidPattern) Error() string {
	return e.Err.Error()
}

func (e ErrInvalidPattern) Unwrap() error {
	return e.Err
}

// ErrPresetNotFound is returned when a preset name isn't in the config
type ErrPresetNotFound struct {
	Name string
}

func (e ErrPresetNotFound) Error() string {
	return fmt.Sprintf("no preset named %q", e.Name)
}

// IsSkip reports whether err means the path was skipped rather than failed.
func IsSkip(err error) bool {
	var noMatch ErrNoMatch
	return errors.As(err, &noMatch)
}

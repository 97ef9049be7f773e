// Package renamer applies a pattern/replacement pair to a batch of paths.
package renamer

import (
	"context"

	"github.com/mydehq/r3name/internal/matcher"
	"github.com/mydehq/r3name/internal/types"
	"github.com/spf13/afero"
)

// ConfirmFunc asks whether source should be renamed to target.
// Returning types.ErrUserAborted stops the batch.
type ConfirmFunc func(source, target string) (bool, error)

// ReportFunc receives each operation as soon as it is decided.
type ReportFunc func(op types.RenameOperation)

// Renamer renames candidate paths one at a time against a single pattern.
type Renamer struct {
	fs          afero.Fs
	pattern     *matcher.Pattern
	replacement string
	dryRun      bool
	confirm     ConfirmFunc
}

// New creates a Renamer over fs.
func New(fs afero.Fs, pattern *matcher.Pattern, replacement string) *Renamer {
	return &Renamer{
		fs:          fs,
		pattern:     pattern,
		replacement: replacement,
	}
}

// WithDryRun computes destinations without renaming anything.
func (r *Renamer) WithDryRun() *Renamer {
	r.dryRun = true
	return r
}

// WithConfirm asks fn before every rename that would be committed.
func (r *Renamer) WithConfirm(fn ConfirmFunc) *Renamer {
	r.confirm = fn
	return r
}

// DryRun reports whether the renamer is in preview mode
func (r *Renamer) DryRun() bool {
	return r.dryRun
}

// RenamePath processes a single candidate path and returns the new path.
//
// The checks run in order and stop at the first that applies: pattern match,
// source existence, substitution, destination collision, dry run, rename.
// Errors are one of types.ErrNoMatch, types.ErrSourceNotExist,
// types.ErrDestinationExists or types.ErrFilesystem.
func (r *Renamer) RenamePath(path string) (string, error) {
	newPath, err := r.plan(path)
	if err != nil || r.dryRun {
		return newPath, err
	}
	return newPath, r.commit(path, newPath)
}

func (r *Renamer) plan(path string) (string, error) {
	if !r.pattern.Match(path) {
		return "", types.ErrNoMatch{Path: path, Pattern: r.pattern.String()}
	}

	if !r.exists(path) {
		return "", types.ErrSourceNotExist{Path: path}
	}

	newPath := r.pattern.ReplaceFirst(path, r.replacement)

	if r.exists(newPath) {
		return newPath, types.ErrDestinationExists{Path: newPath}
	}

	return newPath, nil
}

func (r *Renamer) commit(path, newPath string) error {
	if err := r.fs.Rename(path, newPath); err != nil {
		return types.ErrFilesystem{Err: err}
	}
	return nil
}

func (r *Renamer) exists(path string) bool {
	ok, err := afero.Exists(r.fs, path)
	return err == nil && ok
}

// Execute processes paths in order, reporting each outcome through report.
// Per-path failures never stop the batch. It returns early only when ctx is
// cancelled between paths or the confirm prompt is aborted.
func (r *Renamer) Execute(ctx context.Context, paths []string, report ReportFunc) (types.BatchSummary, error) {
	var summary types.BatchSummary

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		op, err := r.process(path)
		if err != nil {
			return summary, err
		}

		summary.Add(op)
		if report != nil {
			report(op)
		}
	}

	return summary, nil
}

func (r *Renamer) process(path string) (types.RenameOperation, error) {
	op := types.RenameOperation{
		SourcePath: path,
		Pattern:    r.pattern.String(),
	}

	newPath, err := r.plan(path)
	op.TargetPath = newPath
	if err != nil {
		return classify(op, err), nil
	}

	if r.dryRun {
		op.Status = types.StatusWouldRename
		return op, nil
	}

	if r.confirm != nil {
		ok, err := r.confirm(path, newPath)
		if err != nil {
			return op, err
		}
		if !ok {
			op.Status = types.StatusSkipped
			op.SkipReason = types.SkipDeclined
			return op, nil
		}
	}

	if err := r.commit(path, newPath); err != nil {
		return classify(op, err), nil
	}

	op.Status = types.StatusRenamed
	return op, nil
}

func classify(op types.RenameOperation, err error) types.RenameOperation {
	if types.IsSkip(err) {
		op.Status = types.StatusSkipped
		op.SkipReason = types.SkipNoMatch
		return op
	}
	op.Status = types.StatusFailed
	op.Err = err
	return op
}

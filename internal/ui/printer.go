package ui

import (
	"fmt"
	"io"

	"github.com/mydehq/r3name/internal/types"
)

// Printer renders rename outcomes, one line per operation.
// Failures go to the error stream, everything else to the output stream.
type Printer struct {
	out      io.Writer
	errOut   io.Writer
	outStyle Styles
	errStyle Styles
}

// NewPrinter creates a Printer with a renderer per stream.
func NewPrinter(out, errOut io.Writer, mode ColorMode) *Printer {
	return &Printer{
		out:      out,
		errOut:   errOut,
		outStyle: NewStyles(out, mode),
		errStyle: NewStyles(errOut, mode),
	}
}

// Styles returns the styles bound to the output stream
func (p *Printer) Styles() Styles {
	return p.outStyle
}

// Report prints the line for a single operation
func (p *Printer) Report(op types.RenameOperation) {
	s := p.outStyle
	switch op.Status {
	case types.StatusRenamed:
		fmt.Fprintf(p.out, "%s %s -> %s\n",
			s.Header.Render("Renamed"), s.Dim.Render(quote(op.SourcePath)), s.Command.Render(quote(op.TargetPath)))

	case types.StatusWouldRename:
		fmt.Fprintf(p.out, "%s %s -> %s\n",
			s.Flag.Render("Would rename"), s.Dim.Render(quote(op.SourcePath)), s.Command.Render(quote(op.TargetPath)))

	case types.StatusSkipped:
		reason := "(declined)"
		if op.SkipReason == types.SkipNoMatch {
			reason = fmt.Sprintf("(doesn't match regex %s)", quote(op.Pattern))
		}
		fmt.Fprintf(p.out, "%s %s %s\n",
			s.Dim.Render("Skipping"), s.Path.Render(quote(op.SourcePath)), s.Dim.Render(reason))

	case types.StatusFailed:
		e := p.errStyle
		fmt.Fprintf(p.errOut, "%s %s: %v\n",
			e.Flag.Render("Failed to rename"), e.Path.Render(quote(op.SourcePath)), op.Err)
	}
}

// PrintPresets lists presets by name in the order given
func (p *Printer) PrintPresets(source string, names []string, presets map[string]types.Preset) {
	s := p.outStyle
	if len(names) == 0 {
		fmt.Fprintf(p.out, "No presets configured in: %s\n", s.Path.Render(source))
		return
	}

	fmt.Fprintf(p.out, "%s in: %s\n", s.Header.Render("Presets"), s.Path.Render(source))
	for _, name := range names {
		preset := presets[name]
		fmt.Fprintf(p.out, " %s %s %s -> %s\n",
			s.Dim.Render("-"), s.Command.Render(name), s.Pattern.Render(quote(preset.Pattern)), s.Pattern.Render(quote(preset.Replacement)))
		if preset.Description != "" {
			fmt.Fprintf(p.out, "   %s\n", s.Dim.Render(preset.Description))
		}
	}
}

func quote(s string) string {
	return "`" + s + "`"
}

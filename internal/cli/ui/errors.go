package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ErrorOptions configures a formatted error message.
type ErrorOptions struct {
	Context      string   // short upper-cased context, e.g. "model not found"
	Problem      string   // one-line problem statement
	Suggestions  []string // "did you mean" candidates
	HelpCommands []string // follow-up commands to try
	NoColor      bool
}

// FormatError renders a standardized error message.
//
// Example output:
//
//	✗ MODEL NOT FOUND: Pst
//
//	  Did you mean: Post?
//
//	  → List registered models: recordlens models
func FormatError(opts ErrorOptions) string {
	var b strings.Builder

	header := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)
	if opts.NoColor {
		header.DisableColor()
		yellow.DisableColor()
		cyan.DisableColor()
	}

	if opts.Context != "" {
		header.Fprintf(&b, "✗ %s: %s\n", strings.ToUpper(opts.Context), opts.Problem)
	} else {
		header.Fprintf(&b, "✗ %s\n", opts.Problem)
	}

	if len(opts.Suggestions) > 0 {
		b.WriteString("\n")
		yellow.Fprintf(&b, "  Did you mean: %s?\n", strings.Join(opts.Suggestions, ", "))
	}

	for i, help := range opts.HelpCommands {
		if i == 0 {
			b.WriteString("\n")
		}
		cyan.Fprintf(&b, "  → %s\n", help)
	}

	return b.String()
}

// PrintError writes a formatted error message to the writer.
func PrintError(w io.Writer, opts ErrorOptions) {
	fmt.Fprint(w, FormatError(opts))
}

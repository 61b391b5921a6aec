package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mgpai22/srtkit/internal/srt"
	"golang.org/x/term"
)

var (
	pathStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// reports whether w is a terminal that should get colour
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func render(style lipgloss.Style, styled bool, s string) string {
	if !styled {
		return s
	}
	return style.Render(s)
}

// formatDiagnostic renders err as path:row:column for parse errors, the
// way compilers report positions.
func formatDiagnostic(path string, err error, styled bool) string {
	var perr *srt.ParseError
	if errors.As(err, &perr) {
		return fmt.Sprintf(
			"%s:%d:%d: %s %s %s",
			render(pathStyle, styled, path),
			perr.Row,
			perr.Column,
			render(errorStyle, styled, "error:"),
			perr.Kind.Message(),
			render(dimStyle, styled, "["+perr.Kind.String()+"]"),
		)
	}
	return fmt.Sprintf(
		"%s: %s %v",
		render(pathStyle, styled, path),
		render(errorStyle, styled, "error:"),
		err,
	)
}

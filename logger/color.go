package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode selects when level tags carry ANSI styling.
type ColorMode int

const (
	// ColorAuto styles tags only when the output is a terminal.
	ColorAuto ColorMode = iota

	// ColorNever writes plain text.
	ColorNever

	// ColorAlways styles tags regardless of the output.
	ColorAlways
)

var levelColors = [...]lipgloss.Color{
	LevelTrace: lipgloss.Color("8"),
	LevelDebug: lipgloss.Color("4"),
	LevelInfo:  lipgloss.Color("2"),
	LevelNote:  lipgloss.Color("6"),
	LevelWarn:  lipgloss.Color("3"),
	LevelError: lipgloss.Color("1"),
}

func levelTags(w io.Writer, mode ColorMode) [len(levelNames)]string {
	var tags [len(levelNames)]string

	if !useColor(w, mode) {
		for i, name := range levelNames {
			tags[i] = "[" + name + "]"
		}
		return tags
	}

	r := lipgloss.NewRenderer(w)
	if mode == ColorAlways {
		r.SetColorProfile(termenv.ANSI)
	}

	for i, name := range levelNames {
		style := r.NewStyle().Foreground(levelColors[i])
		if Level(i) >= LevelWarn {
			style = style.Bold(true)
		}
		tags[i] = style.Render("[" + name + "]")
	}
	return tags
}

func useColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

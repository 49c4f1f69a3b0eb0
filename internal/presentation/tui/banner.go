package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the lesolver ASCII art banner to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{" _                  _             ", "#34d399"},
		{"| | ___  ___  ___ | |_   _____ _ __", "#2dd4bf"},
		{"| |/ _ \\/ __|/ _ \\| \\ \\ / / _ \\ '__|", "#22d3ee"},
		{"| |  __/\\__ \\ (_) | |\\ V /  __/ |", "#38bdf8"},
		{"|_|\\___||___/\\___/|_| \\_/ \\___|_|", "#60a5fa"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  version "+version).Faint())
	fmt.Fprintln(w)
}

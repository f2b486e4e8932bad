package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	"                    __",
	"  ___ ___  _ __   / _| __ _  ___ _ __",
	" / __/ _ \\| '_ \\ | |_ / _` |/ _ \\ '_ \\",
	"| (_| (_) | | | ||  _| (_| |  __/ | | |",
	" \\___\\___/|_| |_||_|  \\__, |\\___|_| |_|",
	"                      |___/",
}

var bannerColors = []string{"#34d399", "#2dd4bf", "#22d3ee", "#38bdf8", "#60a5fa", "#818cf8"}

// PrintBanner writes the confgen banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, out.String(line).Foreground(out.Color(bannerColors[i%len(bannerColors)])))
	}
	if version != "" {
		fmt.Fprintln(w, out.String("  v"+version).Faint())
	}
	fmt.Fprintln(w)
}

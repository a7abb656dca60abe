package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	" _                  _    _     _     _   ",
	"| |_ _ __ __ _  ___| | _| |__ (_)___| |_ ",
	"| __| '__/ _` |/ __| |/ / '_ \\| / __| __|",
	"| |_| | | (_| | (__|   <| | | | \\__ \\ |_ ",
	" \\__|_|  \\__,_|\\___|_|\\_\\_| |_|_|___/\\__|",
}

var bannerColors = []string{"#38bdf8", "#22d3ee", "#2dd4bf", "#34d399", "#a3e635"}

// PrintBanner writes the ASCII banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.EnvColorProfile()

	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line).Foreground(p.Color(bannerColors[i])))
	}
	fmt.Fprintln(w, termenv.String("  v"+strings.TrimSpace(version)).Faint())
	fmt.Fprintln(w)
}

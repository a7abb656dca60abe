package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/trackhist/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// The style follows the terminal background.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// RunSummary renders a completed run as markdown: selection counters, then one
// table per histogram listing the non-empty bins.
func RunSummary(run *domain.Run) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Run `%s`\n\n", run.ID)
	fmt.Fprintf(&b, "Workers: %d, elapsed: %s\n\n", run.Workers, run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond))

	b.WriteString("| | seen | accepted |\n|---|---:|---:|\n")
	fmt.Fprintf(&b, "| events | %d | %d |\n", run.Counters.EventsSeen, run.Counters.EventsAccepted)
	fmt.Fprintf(&b, "| tracks | %d | %d |\n\n", run.Counters.TracksSeen, run.Counters.TracksAccepted)

	for _, h := range run.Histograms {
		writeHistogram(&b, h)
	}
	return b.String()
}

func writeHistogram(b *strings.Builder, h domain.HistogramData) {
	fmt.Fprintf(b, "## %s\n\n", h.Name)
	fmt.Fprintf(b, "%d bins, %d entries (underflow %d, overflow %d)\n\n",
		len(h.Counts), h.Entries, h.Underflow, h.Overflow)

	var peak int64
	for _, c := range h.Counts {
		peak = max(peak, c)
	}
	if peak == 0 {
		b.WriteString("_empty_\n\n")
		return
	}

	b.WriteString("| bin | count | |\n|---|---:|---|\n")
	for i, c := range h.Counts {
		if c == 0 {
			continue
		}
		bar := strings.Repeat("#", int(1+19*c/peak))
		fmt.Fprintf(b, "| [%g, %g) | %d | `%s` |\n", h.Edges[i], h.Edges[i+1], c, bar)
	}
	b.WriteString("\n")
}

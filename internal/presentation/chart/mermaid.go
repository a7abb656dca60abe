package chart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/trackhist/pkg/domain"
)

// GenerateMermaid produces a Mermaid xychart bar chart of the histogram.
// Categories are the lower bin edges; under- and overflow are noted in the title.
func GenerateMermaid(h domain.HistogramData) string {
	var sb strings.Builder
	sb.WriteString("xychart-beta\n")

	title := h.Name
	if h.Underflow != 0 || h.Overflow != 0 {
		title = fmt.Sprintf("%s (underflow %d, overflow %d)", h.Name, h.Underflow, h.Overflow)
	}
	fmt.Fprintf(&sb, "    title %q\n", sanitizeLabel(title))

	categories := make([]string, len(h.Counts))
	for i := range h.Counts {
		categories[i] = strconv.Quote(strconv.FormatFloat(h.Edges[i], 'g', -1, 64))
	}
	fmt.Fprintf(&sb, "    x-axis %q [%s]\n", sanitizeLabel(h.Label), strings.Join(categories, ", "))
	sb.WriteString("    y-axis \"entries\"\n")

	counts := make([]string, len(h.Counts))
	for i, c := range h.Counts {
		counts[i] = strconv.FormatInt(c, 10)
	}
	fmt.Fprintf(&sb, "    bar [%s]\n", strings.Join(counts, ", "))

	return sb.String()
}

// sanitizeLabel strips ROOT TLatex markup, e.g. "#it{p}_{T}" becomes "pT".
func sanitizeLabel(s string) string {
	r := strings.NewReplacer("#it{", "", "#bf{", "", "_{", "", "^{", "^", "}", "", "\"", "'")
	return r.Replace(s)
}

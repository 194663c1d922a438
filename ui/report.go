package ui

import (
	"fmt"
	"strings"

	"drawcast/adapters/stats/engine"
	"drawcast/ports"
)

// buildReport renders the aggregation diagnostics as a markdown document.
func buildReport(stats ports.DrawStats) string {
	var b strings.Builder

	b.WriteString("# Draw history report\n\n")

	writeFrequencySection(&b, "Numbers (1-50)", engine.SummarizeFrequency(stats.NumberFreq))
	writeFrequencySection(&b, "Stars (1-12)", engine.SummarizeFrequency(stats.StarFreq))

	b.WriteString("## Top co-occurring pairs\n\n")
	pairs := engine.TopPairs(stats.CoOccurrence, 10)
	if len(pairs) == 0 {
		b.WriteString("No confirmed draws yet.\n\n")
	} else {
		b.WriteString("| Pair | Joint draws |\n|------|-------------|\n")
		for _, p := range pairs {
			fmt.Fprintf(&b, "| %d & %d | %d |\n", p.A, p.B, p.Count)
		}
		b.WriteString("\n")
	}

	if stats.SkippedSets > 0 {
		fmt.Fprintf(&b, "Skipped %d malformed value sets during aggregation.\n", stats.SkippedSets)
	}
	return b.String()
}

func writeFrequencySection(b *strings.Builder, title string, s engine.FrequencySummary) {
	fmt.Fprintf(b, "## %s\n\n", title)
	fmt.Fprintf(b, "- total weight: %.1f\n", s.Total)
	fmt.Fprintf(b, "- mean count: %.2f (sd %.2f, min %.1f, max %.1f)\n", s.Mean, s.StdDev, s.Min, s.Max)
	fmt.Fprintf(b, "- chi-square vs uniform: %.2f (p = %.3f)\n\n", s.ChiSquare, s.PValue)
}

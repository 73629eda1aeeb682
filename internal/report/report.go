// Package report renders finished statistics for the terminal. It is a
// display-only boundary: it receives summaries and writes text, nothing else.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"methbench/internal/invokebench"
	"methbench/internal/loadbench"
	"methbench/internal/stats"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	sectionStyle = lipgloss.NewStyle().Bold(true)
)

// WriteLoad prints one table per variant for the load benchmark, one row per
// phase.
func WriteLoad(w io.Writer, reports []loadbench.VariantReport) {
	fmt.Fprintln(w, headerStyle.Render("Load benchmark (cold compile + instantiate)"))

	for _, r := range reports {
		fmt.Fprintln(w)
		fmt.Fprintln(w, sectionStyle.Render(r.Label))

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "PHASE\tMEAN\tMEDIAN\tMIN\tMAX\tSTDDEV\tSTDERR\tRSD\tSAMPLES")
		writePhaseRow(tw, "compile", r.Compile)
		writePhaseRow(tw, "instantiate", r.Instantiate)
		writePhaseRow(tw, "total", r.Total)
		tw.Flush()
	}
}

func writePhaseRow(w io.Writer, phase string, s stats.Summary) {
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
		phase,
		fmtNanos(s.Mean), fmtNanos(s.Median), fmtNanos(s.Min), fmtNanos(s.Max),
		fmtNanos(s.StdDev), fmtNanos(s.StdErr), fmtPercent(s.RelStdDev), s.SampleCount)
}

// WriteInvocation prints the throughput table, one row per variant. The
// RELATIVE column scales each mean against the fastest variant in the set.
func WriteInvocation(w io.Writer, results []invokebench.VariantResult) {
	fmt.Fprintln(w, headerStyle.Render("Invocation benchmark (steady-state call cost)"))
	fmt.Fprintln(w)

	fastest := 0.0
	for _, r := range results {
		if fastest == 0 || r.Summary.Mean < fastest {
			fastest = r.Summary.Mean
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VARIANT\tMEAN/RUN\tMEDIAN\tMIN\tSTDDEV\tRSD\tRELATIVE\tSAMPLES")
	for _, r := range results {
		relative := "-"
		if fastest > 0 {
			relative = fmt.Sprintf("%.2fx", r.Summary.Mean/fastest)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			r.Variant,
			fmtNanos(r.Summary.Mean), fmtNanos(r.Summary.Median), fmtNanos(r.Summary.Min),
			fmtNanos(r.Summary.StdDev), fmtPercent(r.Summary.RelStdDev),
			relative, r.Summary.SampleCount)
	}
	tw.Flush()
}

// WriteJSON dumps any report payload as indented JSON to w.
func WriteJSON(w io.Writer, payload any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// fmtNanos renders a nanosecond quantity in the most readable unit.
func fmtNanos(ns float64) string {
	switch {
	case ns >= 1e9:
		return fmt.Sprintf("%.3fs", ns/1e9)
	case ns >= 1e6:
		return fmt.Sprintf("%.3fms", ns/1e6)
	case ns >= 1e3:
		return fmt.Sprintf("%.3fµs", ns/1e3)
	default:
		return fmt.Sprintf("%.0fns", ns)
	}
}

// fmtPercent tolerates the NaN/Inf a zero-mean series produces.
func fmtPercent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/numerix/finitediff"
	"github.com/katalvlaran/numerix/rootfind"
	"github.com/katalvlaran/numerix/roundof"
)

// Severity palette, one style per roundof bucket.
var severityStyles = map[roundof.Severity]lipgloss.Style{
	roundof.Low:     lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")), // emerald
	roundof.Medium:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")), // amber
	roundof.High:    lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")), // red
	roundof.Unknown: lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")), // gray
}

var headerStyle = lipgloss.NewStyle().Bold(true)

// formatFixed renders v with exactly precision decimal digits.
func formatFixed(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// formatNullable renders a nullable percentage, "-" when absent.
func formatNullable(v *float64, precision int) string {
	if v == nil {
		return "-"
	}
	return formatFixed(*v, precision)
}

// iterationTable lays out root-finding records as header + rows. The last
// column is the severity bucket of each record's relative error.
func iterationTable(recs []rootfind.IterationRecord, precision int) ([]string, [][]string) {
	headers := []string{"iteration", "approximation", "rel. error (%)", "severity"}
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{
			strconv.Itoa(r.Iteration),
			formatFixed(r.Approximation, precision),
			formatNullable(r.RelativeError, precision),
			roundof.Classify(r.RelativeError).String(),
		})
	}
	return headers, rows
}

// derivativeTable lays out one finite-difference result as three stencil rows.
func derivativeTable(res finitediff.Result, precision int) ([]string, [][]string) {
	headers := []string{"method", "estimate", "rel. error (%)", "severity"}
	symbolic := formatNullable(res.Symbolic, precision)
	rows := [][]string{
		{"forward", formatFixed(res.Forward, precision), formatNullable(res.ForwardError, precision), roundof.Classify(res.ForwardError).String()},
		{"backward", formatFixed(res.Backward, precision), formatNullable(res.BackwardError, precision), roundof.Classify(res.BackwardError).String()},
		{"centered", formatFixed(res.Centered, precision), formatNullable(res.CenteredError, precision), roundof.Classify(res.CenteredError).String()},
		{"symbolic", symbolic, "-", "-"},
	}
	return headers, rows
}

// renderTable prints an aligned table, coloring severityCol by bucket name.
func renderTable(w io.Writer, headers []string, rows [][]string, severityCol int) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(headerStyle.Render(pad(h, widths[i])))
		if i < len(headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteByte('\n')

	for _, row := range rows {
		for i, cell := range row {
			text := pad(cell, widths[i])
			if i == severityCol {
				if style, ok := severityStyle(cell); ok {
					text = style.Render(text)
				}
			}
			b.WriteString(text)
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(w, b.String())
}

// severityStyle resolves a bucket name back to its style.
func severityStyle(name string) (lipgloss.Style, bool) {
	for sev, style := range severityStyles {
		if sev.String() == name {
			return style, true
		}
	}
	return lipgloss.Style{}, false
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// writeCSV mirrors the rendered table into a CSV file.
func writeCSV(path string, headers []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

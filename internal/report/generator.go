// Package report provides journal report generation and number formatting.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/aryanc-04/gocalc/internal/history"
)

// FormatValue renders v with the given number of significant digits;
// precision -1 uses the shortest representation that round-trips.
func FormatValue(v float64, precision int) string {
	return strconv.FormatFloat(v, 'g', precision, 64)
}

// Generator creates reports from journal entries.
type Generator struct {
	precision int
}

// New creates a report generator.
func New(precision int) *Generator {
	return &Generator{precision: precision}
}

// Summary represents the complete journal report.
type Summary struct {
	TotalOperations int             `json:"totalOperations"`
	PerOperation    map[string]int  `json:"perOperation"`
	Entries         []history.Entry `json:"entries"`
	GeneratedAt     time.Time       `json:"generatedAt"`
}

// Generate writes a report of the given entries to w in the requested
// format. Unknown formats fall back to JSON.
func (g *Generator) Generate(w io.Writer, entries []history.Entry, stats history.Stats, format string) error {
	summary := &Summary{
		TotalOperations: stats.TotalOperations,
		PerOperation:    stats.PerOperation,
		Entries:         entries,
		GeneratedAt:     time.Now(),
	}

	switch format {
	case "json":
		return g.generateJSON(w, summary)
	case "text":
		return g.generateText(w, summary)
	default:
		return g.generateJSON(w, summary)
	}
}

func (g *Generator) generateJSON(w io.Writer, summary *Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

func (g *Generator) generateText(w io.Writer, summary *Summary) error {
	report := fmt.Sprintf(`
Calculation History
===================

Summary:
  Total operations: %d

`, summary.TotalOperations)

	if summary.TotalOperations > 0 {
		report += "Per operation:\n"

		for _, op := range []string{"add", "subtract", "multiply", "divide"} {
			count, ok := summary.PerOperation[op]
			if !ok {
				continue
			}

			report += fmt.Sprintf("  %-9s %d (%.1f%%)\n", op+":", count, percentage(count, summary.TotalOperations))
		}

		report += "\n"
	}

	if len(summary.Entries) > 0 {
		report += "Entries:\n"

		for _, entry := range summary.Entries {
			report += fmt.Sprintf("  %s  %s %s %s = %s\n",
				entry.Timestamp.Format("2006-01-02 15:04:05"),
				FormatValue(entry.OperandA, g.precision),
				opSymbol(entry.Operation),
				FormatValue(entry.OperandB, g.precision),
				FormatValue(entry.Result, g.precision),
			)
		}
	}

	if _, err := io.WriteString(w, report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// opSymbol maps a journal operation name to its arithmetic symbol.
func opSymbol(operation string) string {
	switch operation {
	case "add":
		return "+"
	case "subtract":
		return "-"
	case "multiply":
		return "*"
	case "divide":
		return "/"
	default:
		return operation
	}
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(part) / float64(total) * 100
}

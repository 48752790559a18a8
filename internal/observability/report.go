// Package observability renders match results for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/MatSouesme/LLM-TsaeChienne/internal/types"
)

const (
	// boxWidth is the width of formatted report boxes.
	boxWidth = 72
	// maxListItems caps strengths/weaknesses shown in the report.
	maxListItems = 5
)

// Printer writes formatted match reports.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a bordered box with a title and body.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range strings.Split(content, "\n") {
		// Truncate on rune boundaries; explanations carry accented text.
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult renders the full evaluation report: header, per-group
// breakdown, strengths/weaknesses and the overall narrative.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	header := fmt.Sprintf("Match Score: %.1f/100  —  %s", result.MatchScore, result.Recommendation)
	var summary strings.Builder
	fmt.Fprintf(&summary, "Job: %s", result.JobTitle)
	if result.Company != "" {
		fmt.Fprintf(&summary, " @ %s", result.Company)
	}
	if result.Location != "" {
		fmt.Fprintf(&summary, "\nLocation: %s", result.Location)
	}
	if result.Salary != nil {
		fmt.Fprintf(&summary, "\nSalary: %.0f", *result.Salary)
	}
	p.printBox(header, summary.String())

	for _, group := range result.Breakdown {
		var body strings.Builder
		for i, c := range group.Components {
			if i > 0 {
				body.WriteString("\n")
			}
			marker := ""
			if c.Degraded {
				marker = " (degraded)"
			}
			fmt.Fprintf(&body, "%-22s %5.1f / %4.1f%s\n    %s", c.Name, c.Earned, c.Maximum, marker, c.Explanation)
		}
		title := fmt.Sprintf("%s: %.1f/%.0f", group.Name, group.Total(), group.Maximum)
		p.printBox(title, body.String())
	}

	p.printList("Strengths", result.Strengths)
	p.printList("Weaknesses", result.Weaknesses)
	p.printBox("Overall", result.OverallExplanation)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	var body strings.Builder
	for i, item := range items {
		if i >= maxListItems {
			fmt.Fprintf(&body, "... and %d more", len(items)-maxListItems)
			break
		}
		if i > 0 {
			body.WriteString("\n")
		}
		fmt.Fprintf(&body, "- %s", item)
	}
	p.printBox(title, body.String())
}

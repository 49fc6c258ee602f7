package analyze

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pathctl/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81")) // Sky Blue/Cyan

	problemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Grey
)

// RenderReport formats a report as labeled sections, entries indented
// four spaces, "None" for an empty section. With color enabled the
// section headers and findings are styled; the layout is identical
// either way so the output stays grep-able.
func RenderReport(report model.Report, color bool) string {
	header := func(s string) string { return s }
	problem := func(s string) string { return s }
	dim := func(s string) string { return s }
	if color {
		header = func(s string) string { return headerStyle.Render(s) }
		problem = func(s string) string { return problemStyle.Render(s) }
		dim = func(s string) string { return dimStyle.Render(s) }
	}

	var b strings.Builder

	b.WriteString(header("Invalid Directories:") + "\n")
	writeSection(&b, report.Invalid, problem, dim)

	b.WriteString("\n")
	b.WriteString(header("Duplicate Directories:") + "\n")
	writeSection(&b, report.Duplicates, problem, dim)

	if report.Shadowed != nil {
		b.WriteString("\n")
		b.WriteString(header("Shadowed Files:") + "\n")
		if len(report.Shadowed) == 0 {
			b.WriteString("    " + dim("None") + "\n")
		}
		for _, ds := range report.Shadowed {
			b.WriteString("    " + ds.Dir + ":\n")
			for _, s := range ds.Shadows {
				b.WriteString("        " + problem(s.Filename) + " " + dim("hidden by "+s.Covered) + "\n")
			}
		}
	}

	return b.String()
}

func writeSection(b *strings.Builder, entries []string, problem, dim func(string) string) {
	if len(entries) == 0 {
		b.WriteString("    " + dim("None") + "\n")
		return
	}
	for _, e := range entries {
		b.WriteString("    " + problem(e) + "\n")
	}
}

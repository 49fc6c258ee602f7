package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pathctl/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	normalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	detailStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))

	adviceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange
)

func (m AppModel) View() string {
	if m.Loading {
		return "\n  Analyzing path... please wait.\n"
	}

	width := m.WindowSize.Width
	height := m.WindowSize.Height

	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}
	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	boxHeight := height - 6
	if boxHeight < 6 {
		boxHeight = 6
	}
	interiorHeight := boxHeight - 2
	if interiorHeight < 2 {
		interiorHeight = 2
	}

	// LEFT PANEL: path entry list with windowing around the cursor.
	var left strings.Builder
	left.WriteString(titleStyle.Render("Path Entries"))
	left.WriteString("\n\n")

	visibleItems := interiorHeight - 2
	if visibleItems < 1 {
		visibleItems = 1
	}
	startIdx := 0
	endIdx := len(m.FilteredIndices)
	if len(m.FilteredIndices) > visibleItems {
		if m.SelectedIdx >= visibleItems/2 {
			startIdx = m.SelectedIdx - (visibleItems / 2)
		}
		if startIdx+visibleItems > len(m.FilteredIndices) {
			startIdx = len(m.FilteredIndices) - visibleItems
		}
		if startIdx < 0 {
			startIdx = 0
		}
		endIdx = startIdx + visibleItems
	}

	for i := startIdx; i < endIdx; i++ {
		idx := m.FilteredIndices[i]
		entry := m.Entries[idx]

		statusIcon := model.IconOK
		switch {
		case entry.Missing:
			statusIcon = model.IconMissing
		case entry.IsDuplicate:
			statusIcon = model.IconDuplicate
		case len(entry.Shadows) > 0:
			statusIcon = model.IconShadow
		}

		line := fmt.Sprintf("%2d. %s %s", idx+1, statusIcon, entry.Value)
		if entry.Missing {
			line += " (missing)"
		} else if entry.IsDuplicate {
			line += " (duplicate)"
		}
		if len(line) > leftWidth-2 {
			line = line[:leftWidth-5] + "..."
		}

		style := normalItemStyle
		if i == m.SelectedIdx {
			style = selectedItemStyle
		} else if entry.Missing || entry.IsDuplicate {
			style = dimStyle
		}
		left.WriteString(style.Render(line))
		left.WriteString("\n")
	}
	if len(m.FilteredIndices) == 0 {
		left.WriteString(dimStyle.Render("  no matches"))
		left.WriteString("\n")
	}

	// RIGHT PANEL: details for the selected entry.
	right := m.renderDetails(rightWidth)

	leftBox := lipgloss.NewStyle().
		Width(leftWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(left.String())

	rightBox := detailStyle.
		Width(rightWidth).
		Height(interiorHeight).
		Render(right)

	body := lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)

	footer := dimStyle.Render("  ↑/↓ select · w which · esc clear · q quit")
	if m.InputMode {
		footer = "  which: " + m.InputBuffer.View()
	} else if m.SearchActive {
		footer = fmt.Sprintf("  which: %s (%d matches) · esc to clear", m.InputBuffer.Value(), len(m.FilteredIndices))
	}

	return body + "\n" + footer + "\n"
}

func (m AppModel) renderDetails(width int) string {
	if len(m.FilteredIndices) == 0 || m.SelectedIdx >= len(m.FilteredIndices) {
		return dimStyle.Render("Nothing selected.")
	}
	entry := m.Entries[m.FilteredIndices[m.SelectedIdx]]

	var b strings.Builder
	b.WriteString(titleStyle.Render("Details"))
	b.WriteString("\n\n")
	b.WriteString(entry.Value)
	b.WriteString("\n\n")

	switch {
	case entry.Missing:
		b.WriteString(adviceStyle.Render("Not an existing directory."))
		b.WriteString("\n")
	case entry.IsDuplicate:
		b.WriteString(adviceStyle.Render(entry.Remediation))
		b.WriteString("\n")
	default:
		b.WriteString(dimStyle.Render("Existing directory."))
		b.WriteString("\n")
	}

	if len(entry.Shadows) > 0 {
		b.WriteString("\nShadowed files:\n")
		for _, s := range entry.Shadows {
			b.WriteString(fmt.Sprintf("  %s %s\n", s.Filename, dimStyle.Render("hidden by "+s.Covered)))
		}
	}

	return b.String()
}

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/monadlab/monadlab/internal/catalog"
	"github.com/monadlab/monadlab/internal/demo"
)

var (
	accent  = lipgloss.Color("#8BC34A")
	danger  = lipgloss.Color("#e53935")
	muted   = lipgloss.Color("#6c7a89")
	heading = lipgloss.Color("#2196F3")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(heading)

	slugStyle = lipgloss.NewStyle().
			Foreground(accent)

	summaryStyle = lipgloss.NewStyle().
			Foreground(muted).
			Width(72)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1).
			Width(60)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true)

	failedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(danger)

	okStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(accent)
)

func renderListEntry(d catalog.Demo) string {
	return fmt.Sprintf("%s  %s", slugStyle.Render(fmt.Sprintf("%-12s", d.Slug)), d.Title)
}

func renderDemo(d catalog.Demo) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(d.Title))
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(strings.TrimSpace(d.Summary)))
	b.WriteString("\n\n")

	before := panelStyle.Render(panelTitleStyle.Render("Before") + "\n\n" + strings.TrimRight(d.Before, "\n"))
	after := panelStyle.Render(panelTitleStyle.Render("After") + "\n\n" + strings.TrimRight(d.After, "\n"))
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, before, after))

	return b.String()
}

func renderReport(r demo.RunReport) string {
	status := okStyle.Render("ok")
	if r.Failed {
		status = failedStyle.Render("failed")
	}
	return fmt.Sprintf("%s  input=%q  %s  (%s, run %s)",
		status, r.Input, r.Output, r.Elapsed, r.ID)
}

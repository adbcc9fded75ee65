// Package ui renders plan progress and summaries for the terminal: a
// Bubble Tea progress display while sourcing runs, and a lipgloss table
// for the finished plan.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runger/hwcli/internal/shop"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

// planColumns are the summary table headings.
var planColumns = []string{"REFS", "VALUE", "PART", "DISTRIBUTOR", "STOCK", "UNIT", "STATUS"}

// RenderPlan renders the plan as an aligned table with a totals line.
func RenderPlan(plan *shop.Plan) string {
	rows := make([][]string, 0, len(plan.Items))
	for _, item := range plan.Items {
		rows = append(rows, planRow(item))
	}

	widths := make([]int, len(planColumns))
	for i, h := range planColumns {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for i, h := range planColumns {
		b.WriteString(headerStyle.Render(pad(h, widths[i])))
		b.WriteString("  ")
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(pad(cell, widths[i]))
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(planSummary(plan)))
	b.WriteString("\n")
	return b.String()
}

func planRow(item shop.Item) []string {
	refs := strings.Join(item.References, ",")
	if item.Selected == nil {
		return []string{
			refs, item.Value, "", "", "", "",
			failStyle.Render(truncate(item.Err, 60)),
		}
	}
	c := item.Selected
	unit := ""
	if price, ok := c.UnitPrice(); ok {
		unit = fmt.Sprintf("%.4f %s", price, c.Currency)
	}
	return []string{
		refs, item.Value,
		truncate(c.MPN, 30),
		c.Distributor,
		fmt.Sprintf("%d", c.Stock),
		unit,
		okStyle.Render("ok"),
	}
}

func planSummary(plan *shop.Plan) string {
	sourced := plan.SourcedCount()
	line := fmt.Sprintf("%d/%d lines sourced", sourced, len(plan.Items))
	if total, ok := plan.TotalPrice(); ok && sourced > 0 {
		line += fmt.Sprintf(", est. total %.2f", total)
	}
	if sourced < len(plan.Items) {
		line += dimStyle.Render("  (run with --debug for details)")
	}
	return line
}

// pad right-pads s with spaces to width, ANSI-aware.
func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

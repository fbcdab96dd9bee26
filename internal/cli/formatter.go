package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/aggregate"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/domain"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/importer"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/intelligence"
)

// Gruvbox-inspired color palette.
var (
	colorGreen  = lipgloss.Color("#8ec07c")
	colorYellow = lipgloss.Color("#fabd2f")
	colorRed    = lipgloss.Color("#fb4934")
	colorBlue   = lipgloss.Color("#83a598")
	colorDim    = lipgloss.Color("#928374")
	colorHeader = lipgloss.Color("#fe8019")
)

var (
	styleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	styleYellow = lipgloss.NewStyle().Foreground(colorYellow)
	styleRed    = lipgloss.NewStyle().Foreground(colorRed)
	styleBlue   = lipgloss.NewStyle().Foreground(colorBlue)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
)

// statusStyle returns the lipgloss style for a project status value.
func statusStyle(status string) lipgloss.Style {
	switch domain.Canonical(status) {
	case domain.Canonical(domain.StatusOnTrack):
		return styleGreen
	case domain.Canonical(domain.StatusAtRisk):
		return styleYellow
	case domain.Canonical(domain.StatusDelayed):
		return styleRed
	case domain.Canonical(domain.StatusComplete):
		return styleBlue
	default:
		return styleDim
	}
}

// header renders a section header with an underline.
func header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", styleHeader.Render(upper), styleDim.Render(line))
}

// FormatOverview renders overview metrics for the terminal.
func FormatOverview(ov aggregate.Overview) string {
	var b strings.Builder
	b.WriteString(header("Overview") + "\n")
	fmt.Fprintf(&b, "Total projects: %d\n", ov.TotalProjects)
	for _, sc := range ov.StatusCounts {
		fmt.Fprintf(&b, "  %s %d\n", statusStyle(sc.Status).Render("● "+sc.Status), sc.Count)
	}
	if ov.MissingPlannedDate > 0 {
		fmt.Fprintf(&b, "%s\n", styleDim.Render(fmt.Sprintf("Missing planned dates: %d", ov.MissingPlannedDate)))
	}
	return b.String()
}

// FormatGantt renders timeline intervals as a table, one row per project.
func FormatGantt(intervals []domain.StageInterval) string {
	var b strings.Builder
	b.WriteString(header("Timeline") + "\n")
	if len(intervals) == 0 {
		b.WriteString(styleDim.Render("No projects with usable dates.") + "\n")
		return b.String()
	}
	for _, iv := range intervals {
		end := domain.FormatDate(iv.End)
		if iv.Ongoing {
			end = styleYellow.Render("ongoing")
		}
		fmt.Fprintf(&b, "%-12s %-30s %-10s %s -> %s\n",
			iv.ProjectID, truncateName(iv.ProjectName, 30), iv.Stage,
			iv.Start.Format("2006-01-02"), end)
	}
	return b.String()
}

// FormatCounts renders categorical counts for one dimension.
func FormatCounts(dim aggregate.Dimension, counts []aggregate.CategoryCount) string {
	var b strings.Builder
	b.WriteString(header("Counts by "+string(dim)) + "\n")
	for _, cc := range counts {
		label := cc.Value
		if label == aggregate.Unspecified {
			label = styleDim.Render(label)
		}
		fmt.Fprintf(&b, "  %-24s %d\n", label, cc.Count)
	}
	return b.String()
}

// FormatIssues renders normalization issues row by row.
func FormatIssues(issues []importer.Issue) string {
	var b strings.Builder
	b.WriteString(header("Data issues") + "\n")
	if len(issues) == 0 {
		b.WriteString(styleGreen.Render("No issues found.") + "\n")
		return b.String()
	}
	for _, is := range issues {
		fmt.Fprintf(&b, "  row %-4d %-14s %s\n", is.Row, is.Column, is.Reason)
	}
	return b.String()
}

// FormatAnswer renders a Q&A answer with its provenance line.
func FormatAnswer(ans *intelligence.Answer) string {
	var b strings.Builder
	b.WriteString(ans.Text + "\n")

	prov := fmt.Sprintf("source=%s filter=%s matches=%d", ans.Source, ans.FilterSource, ans.MatchCount)
	if ans.Truncated {
		prov += " (context truncated)"
	}
	b.WriteString(styleDim.Render(prov) + "\n")
	return b.String()
}

func truncateName(name string, max int) string {
	runes := []rune(name)
	if len(runes) <= max {
		return name
	}
	return string(runes[:max-1]) + "…"
}

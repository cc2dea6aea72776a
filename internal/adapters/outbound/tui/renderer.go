package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chartfmt/chartfmt/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(64)

	gradeColors = map[string]lipgloss.Color{
		"A": success,
		"B": lipgloss.Color("#A3E635"), // lime
		"C": warning,
		"D": lipgloss.Color("#FB923C"), // orange
		"F": danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	criticalStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	highStyle     = lipgloss.NewStyle().Foreground(danger)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	nameStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 60))
)

// RenderScore renders the quality score card for one chart.
func RenderScore(name string, score domain.QualityScore) string {
	var b strings.Builder

	grade := score.Grade
	title := headerStyle.Render("chartfmt")
	subtitle := dimStyle.Render(name)
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(fmt.Sprintf("%d / 100", score.Percentage))
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")

	renderSubScore(&b, "spacing", score.Spacing)
	renderSubScore(&b, "alignment", score.Alignment)
	renderSubScore(&b, "structure", score.Structure)
	renderSubScore(&b, "chord format", score.ChordFormat)
	renderSubScore(&b, "metadata", score.Metadata)

	b.WriteString("\n")
	return b.String()
}

func renderSubScore(b *strings.Builder, name string, value float64) {
	pct := int(value*100 + 0.5)
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(pct)).Render(fmt.Sprintf("%3d", pct))
	fmt.Fprintf(b, "  %s %s  %s\n", nameStyle.Render(padRight(name, 16)), coloredBar(pct, 20), scoreText)
}

// RenderIssues renders the issue list, most severe first.
func RenderIssues(issues []domain.QualityIssue) string {
	var b strings.Builder

	if len(issues) == 0 {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
		return b.String()
	}

	sorted := make([]domain.QualityIssue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return domain.SeverityRank(sorted[i].Severity) < domain.SeverityRank(sorted[j].Severity)
	})

	b.WriteString("  " + titleStyle.Render(fmt.Sprintf("Issues (%d)", len(sorted))) + "\n\n")
	for _, issue := range sorted {
		tag := severityTag(issue.Severity)
		location := "document"
		if issue.Line > 0 {
			location = fmt.Sprintf("line %d", issue.Line)
		}
		fix := ""
		if issue.AutoFixable {
			fix = passStyle.Render("  [auto-fixable]")
		}
		fmt.Fprintf(&b, "  %s %s %s%s\n", tag, dimStyle.Render(padRight(location, 9)), issue.Description, fix)
		fmt.Fprintf(&b, "      %s\n", faintStyle.Render(issue.Suggestion))
	}

	return b.String()
}

// RenderSuggestions renders the advisory recommendations.
func RenderSuggestions(suggestions []domain.FormattingSuggestion) string {
	if len(suggestions) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Suggestions") + "\n\n")
	for _, s := range suggestions {
		fmt.Fprintf(&b, "  %s %s %s\n", infoTagStyle.Render("→"), titleStyle.Render(s.Title), impactTag(s.Impact))
		fmt.Fprintf(&b, "    %s\n", dimStyle.Render(s.Description))
	}
	return b.String()
}

// RenderBatch renders the aggregate summary of a batch run.
func RenderBatch(result *domain.BatchFormattingResult) string {
	var b strings.Builder

	b.WriteString("  " + titleStyle.Render("Batch summary") + "\n\n")
	fmt.Fprintf(&b, "  %s %s\n", padRight("charts formatted", 22), passStyle.Render(fmt.Sprintf("%d", result.SuccessCount)))
	if result.FailureCount > 0 {
		fmt.Fprintf(&b, "  %s %s\n", padRight("failures", 22), criticalStyle.Render(fmt.Sprintf("%d", result.FailureCount)))
	}
	fmt.Fprintf(&b, "  %s %d\n", padRight("issues fixed", 22), result.TotalIssuesFixed)
	fmt.Fprintf(&b, "  %s %+.1f points\n", padRight("avg improvement", 22), result.AverageQualityImprovement*100)
	if result.CommitHash != "" {
		fmt.Fprintf(&b, "  %s %s\n", padRight("commit", 22), dimStyle.Render(shortHash(result.CommitHash)))
	}

	if len(result.Results) > 0 {
		b.WriteString("\n  " + separatorLine + "\n\n")
		ids := make([]string, 0, len(result.Results))
		for id := range result.Results {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			res := result.Results[id]
			delta := ""
			if d := res.Improvement(); d > 0 {
				delta = passStyle.Render(fmt.Sprintf("  %d → %d", res.Score.Percentage, res.ScoreAfter.Percentage))
			}
			fmt.Fprintf(&b, "  %s %s%s\n", gradeBadge(res.ScoreAfter.Grade), padRight(id, 36), delta)
		}
	}

	if len(result.Failures) > 0 {
		b.WriteString("\n")
		ids := make([]string, 0, len(result.Failures))
		for id := range result.Failures {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Fprintf(&b, "  %s %s %s\n", criticalStyle.Render("✗"), padRight(id, 36), dimStyle.Render(result.Failures[id]))
		}
	}

	return b.String()
}

// RenderHistory renders the score history of a chart directory.
func RenderHistory(entries []domain.ScoreEntry) string {
	var b strings.Builder

	if len(entries) == 0 {
		b.WriteString("  " + dimStyle.Render("No score history yet.") + "\n")
		return b.String()
	}

	b.WriteString("  " + titleStyle.Render("Score history") + "\n\n")
	for _, e := range entries {
		hash := ""
		if e.CommitHash != "" {
			hash = dimStyle.Render("  " + shortHash(e.CommitHash))
		}
		fmt.Fprintf(&b, "  %s %s %s %3d%s\n",
			dimStyle.Render(e.Timestamp),
			padRight(e.File, 28),
			gradeBadge(e.Grade),
			e.Percentage,
			hash,
		)
	}
	return b.String()
}

func severityTag(s domain.Severity) string {
	switch s {
	case domain.SeverityCritical:
		return criticalStyle.Render("CRIT")
	case domain.SeverityHigh:
		return highStyle.Render("HIGH")
	case domain.SeverityMedium:
		return warnStyle.Render("MED ")
	default:
		return infoTagStyle.Render("LOW ")
	}
}

func impactTag(i domain.ImpactLevel) string {
	switch i {
	case domain.ImpactMajor:
		return highStyle.Render("(major)")
	case domain.ImpactModerate:
		return warnStyle.Render("(moderate)")
	default:
		return dimStyle.Render("(minor)")
	}
}

func gradeBadge(grade string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(gradeColor(grade)).Render(grade)
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return dim
}

func scoreColor(pct int) lipgloss.Color {
	switch {
	case pct >= 90:
		return success
	case pct >= 70:
		return warning
	default:
		return danger
	}
}

func coloredBar(pct, width int) string {
	filled := pct * width / 100
	if filled > width {
		filled = width
	}
	bar := lipgloss.NewStyle().Foreground(scoreColor(pct)).Render(strings.Repeat("█", filled))
	rest := faintStyle.Render(strings.Repeat("░", width-filled))
	return bar + rest
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/chartfmt/chartfmt/internal/domain"
)

var (
	insertStyle = lipgloss.NewStyle().Foreground(success)
	deleteStyle = lipgloss.NewStyle().Foreground(danger).Strikethrough(true)
)

// RenderChanges renders the applied change log. With withDiff set, each
// change also gets an inline before/after character diff.
func RenderChanges(changes []domain.FormattingChange, withDiff bool) string {
	var b strings.Builder

	if len(changes) == 0 {
		b.WriteString("  " + dimStyle.Render("No changes applied.") + "\n")
		return b.String()
	}

	b.WriteString("  " + titleStyle.Render(fmt.Sprintf("Changes (%d)", len(changes))) + "\n\n")
	for _, c := range changes {
		fmt.Fprintf(&b, "  %s %s %s\n",
			infoTagStyle.Render(changeGlyph(c.Type)),
			dimStyle.Render(fmt.Sprintf("line %-4d", c.Line)),
			c.Description,
		)
		if withDiff {
			fmt.Fprintf(&b, "      %s\n", renderInlineDiff(c.Before, c.After))
		}
	}

	return b.String()
}

// renderInlineDiff shows a character-level diff of one change, with
// deletions struck out and insertions highlighted.
func renderInlineDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))

	var b strings.Builder
	for _, d := range diffs {
		text := visibleWhitespace(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString(deleteStyle.Render(text))
		case diffmatchpatch.DiffInsert:
			b.WriteString(insertStyle.Render(text))
		default:
			b.WriteString(dimStyle.Render(text))
		}
	}
	return b.String()
}

// visibleWhitespace makes whitespace-only edits visible in the diff output.
func visibleWhitespace(s string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	s = strings.ReplaceAll(s, "\n", "¶")
	s = strings.ReplaceAll(s, "\t", "⇥")
	return s
}

func changeGlyph(t domain.ChangeType) string {
	switch t {
	case domain.ChangeBlankLinesCollapsed:
		return "⌁"
	case domain.ChangeWhitespaceTrimmed:
		return "✂"
	case domain.ChangeChordReformatted:
		return "♯"
	case domain.ChangeSectionLabeled:
		return "§"
	default:
		return "·"
	}
}

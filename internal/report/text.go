package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dshills/codecritic/internal/analysis"
)

// Renderer formats a result for a terminal.
type Renderer struct {
	noColor  bool
	heading  lipgloss.Style
	muted    lipgloss.Style
	rating   map[analysis.Rating]lipgloss.Style
	severity map[analysis.Severity]lipgloss.Style
}

// NewRenderer builds a terminal renderer. With noColor set, all styles are
// pass-through.
func NewRenderer(noColor bool) *Renderer {
	r := &Renderer{noColor: noColor}
	if noColor {
		plain := lipgloss.NewStyle()
		r.heading = plain
		r.muted = plain
		r.rating = map[analysis.Rating]lipgloss.Style{}
		r.severity = map[analysis.Severity]lipgloss.Style{}
		return r
	}

	r.heading = lipgloss.NewStyle().Bold(true)
	r.muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	r.rating = map[analysis.Rating]lipgloss.Style{
		analysis.RatingExcellent: lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true),
		analysis.RatingGood:      lipgloss.NewStyle().Foreground(lipgloss.Color("#84CC16")).Bold(true),
		analysis.RatingFair:      lipgloss.NewStyle().Foreground(lipgloss.Color("#EAB308")).Bold(true),
		analysis.RatingPoor:      lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316")).Bold(true),
		analysis.RatingCritical:  lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
	}
	r.severity = map[analysis.Severity]lipgloss.Style{
		analysis.SeverityError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		analysis.SeverityWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		analysis.SeverityInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")),
		analysis.SeverityStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
	return r
}

// Render formats the result as a multi-line terminal report.
func (r *Renderer) Render(res *Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", r.heading.Render(res.File), r.muted.Render("("+res.Language+")"))
	fmt.Fprintf(&b, "Score: %.1f/%.0f %s\n", res.Score, res.MaxScore, r.ratingStyle(res.Rating).Render(string(res.Rating)))
	fmt.Fprintf(&b, "%s\n", res.Summary)
	fmt.Fprintf(&b, "%s\n\n", r.muted.Render(fmt.Sprintf(
		"%d issues: %d errors, %d warnings, %d info, %d style",
		res.TotalIssues, res.Breakdown.Errors, res.Breakdown.Warnings,
		res.Breakdown.InfoIssues, res.Breakdown.StyleIssues)))

	for _, iss := range res.Issues {
		fmt.Fprintf(&b, "%s %s %s\n",
			r.severityStyle(iss.Severity).Render(fmt.Sprintf("[%s]", iss.Severity)),
			fmt.Sprintf("L%d:%d", iss.Line, iss.Column),
			iss.Message)
		if iss.Text != "" {
			fmt.Fprintf(&b, "    %s\n", r.muted.Render(firstLine(iss.Text)))
		}
		if iss.Suggestion != "" {
			fmt.Fprintf(&b, "    %s\n", r.muted.Render("hint: "+iss.Suggestion))
		}
	}

	return b.String()
}

func (r *Renderer) ratingStyle(rating analysis.Rating) lipgloss.Style {
	if s, ok := r.rating[rating]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

func (r *Renderer) severityStyle(sev analysis.Severity) lipgloss.Style {
	if s, ok := r.severity[sev]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// firstLine trims multi-line matched text for single-line display.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}

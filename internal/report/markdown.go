package report

import (
	"fmt"
	"strings"

	"github.com/dshills/codecritic/internal/analysis"
)

// Markdown renders a result as a Markdown report.
func Markdown(r *Result) string {
	var b strings.Builder

	b.WriteString("# CodeCritic Report\n\n")
	fmt.Fprintf(&b, "**File:** %s (%s)\n", r.File, r.Language)
	fmt.Fprintf(&b, "**Score:** %.1f / %.0f (%s)\n", r.Score, r.MaxScore, r.Rating)
	fmt.Fprintf(&b, "**Summary:** %s\n", r.Summary)
	fmt.Fprintf(&b, "**Issues:** %d errors, %d warnings, %d info, %d style\n\n",
		r.Breakdown.Errors, r.Breakdown.Warnings, r.Breakdown.InfoIssues, r.Breakdown.StyleIssues)

	sections := []struct {
		title string
		sev   analysis.Severity
	}{
		{"Errors", analysis.SeverityError},
		{"Warnings", analysis.SeverityWarning},
		{"Info", analysis.SeverityInfo},
		{"Style", analysis.SeverityStyle},
	}

	for _, sec := range sections {
		issues := filterIssues(r.Issues, sec.sev)
		if len(issues) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", sec.title)
		for _, iss := range issues {
			renderIssue(&b, iss)
		}
	}

	if len(r.Issues) == 0 {
		b.WriteString("No issues found.\n")
	}

	return b.String()
}

func filterIssues(issues []analysis.Issue, sev analysis.Severity) []analysis.Issue {
	var result []analysis.Issue
	for _, iss := range issues {
		if iss.Severity == sev {
			result = append(result, iss)
		}
	}
	return result
}

func renderIssue(b *strings.Builder, iss analysis.Issue) {
	fmt.Fprintf(b, "### %s (L%d:%d)\n\n", iss.RuleName, iss.Line, iss.Column)
	fmt.Fprintf(b, "%s\n\n", iss.Message)
	if iss.Text != "" {
		fmt.Fprintf(b, "> `%s`\n\n", iss.Text)
	}
	if iss.Suggestion != "" {
		fmt.Fprintf(b, "**Suggestion:** %s\n\n", iss.Suggestion)
	}
}

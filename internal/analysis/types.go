// Package analysis implements the rule-matching and scoring core: it converts
// structural pattern matches into issues and reduces them, together with the
// file's line count, into a bounded quality score.
package analysis

// Rule is an immutable descriptor for one structural pattern check.
type Rule struct {
	Name       string
	Pattern    string
	Severity   Severity
	Message    string
	Suggestion string
	Weight     float64
}

// NewRule builds a rule with the default weight multiplier of 1.0.
func NewRule(name, pattern string, severity Severity, message, suggestion string) Rule {
	return Rule{
		Name:       name,
		Pattern:    pattern,
		Severity:   severity,
		Message:    message,
		Suggestion: suggestion,
		Weight:     1.0,
	}
}

// WithWeight returns a copy of the rule with the given weight multiplier.
func (r Rule) WithWeight(weight float64) Rule {
	r.Weight = weight
	return r
}

// Issue is one reported occurrence of a rule's pattern match.
type Issue struct {
	RuleName    string   `json:"rule"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	Line        int      `json:"line"`
	Column      int      `json:"column"`
	Text        string   `json:"text"`
	Suggestion  string   `json:"suggestion,omitempty"`
	ScoreImpact float64  `json:"score_impact"`
}

// ScoreBreakdown tallies issue counts and deduction sums per severity.
type ScoreBreakdown struct {
	Errors           int
	Warnings         int
	InfoIssues       int
	StyleIssues      int
	ErrorDeduction   float64
	WarningDeduction float64
	InfoDeduction    float64
	StyleDeduction   float64
	SizeBonus        float64
}

// Score is the aggregate quality result for one analyzed file.
type Score struct {
	OverallScore float64
	MaxScore     float64
	TotalIssues  int
	Breakdown    ScoreBreakdown
	Rating       Rating
	Summary      string
}

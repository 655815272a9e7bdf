// Package report assembles analysis output into renderable documents.
package report

import "github.com/dshills/codecritic/internal/analysis"

// Result is the structured output document for one analyzed file.
type Result struct {
	File        string           `json:"file"`
	Language    string           `json:"language"`
	Score       float64          `json:"score"`
	MaxScore    float64          `json:"max_score"`
	Rating      analysis.Rating  `json:"rating"`
	Summary     string           `json:"summary"`
	TotalIssues int              `json:"total_issues"`
	Breakdown   Breakdown        `json:"breakdown"`
	Issues      []analysis.Issue `json:"issues"`
}

// Breakdown carries per-severity counts and deduction sums.
type Breakdown struct {
	Errors      int        `json:"errors"`
	Warnings    int        `json:"warnings"`
	InfoIssues  int        `json:"info_issues"`
	StyleIssues int        `json:"style_issues"`
	Deductions  Deductions `json:"deductions"`
	SizeBonus   float64    `json:"size_bonus"`
}

// Deductions holds the per-severity deduction sums.
type Deductions struct {
	FromErrors   float64 `json:"from_errors"`
	FromWarnings float64 `json:"from_warnings"`
	FromInfo     float64 `json:"from_info"`
	FromStyle    float64 `json:"from_style"`
}

// Build assembles the result document from an issue list and its score.
func Build(file, language string, issues []analysis.Issue, score analysis.Score) *Result {
	if issues == nil {
		issues = []analysis.Issue{}
	}
	b := score.Breakdown
	return &Result{
		File:        file,
		Language:    language,
		Score:       score.OverallScore,
		MaxScore:    score.MaxScore,
		Rating:      score.Rating,
		Summary:     score.Summary,
		TotalIssues: score.TotalIssues,
		Breakdown: Breakdown{
			Errors:      b.Errors,
			Warnings:    b.Warnings,
			InfoIssues:  b.InfoIssues,
			StyleIssues: b.StyleIssues,
			Deductions: Deductions{
				FromErrors:   b.ErrorDeduction,
				FromWarnings: b.WarningDeduction,
				FromInfo:     b.InfoDeduction,
				FromStyle:    b.StyleDeduction,
			},
			SizeBonus: b.SizeBonus,
		},
		Issues: issues,
	}
}

package analysis

import (
	"fmt"
	"math"
)

const baseScore = 10.0

// ComputeScore reduces an issue list and the analyzed file's line count into
// a Score. Deductions are summed per severity, scaled by a line-count-derived
// size factor, and subtracted from a base of 10. The result is clamped to
// [0,10] and rounded half away from zero to one decimal place.
func ComputeScore(issues []Issue, lineCount int) Score {
	var b ScoreBreakdown
	for _, iss := range issues {
		d := math.Abs(iss.ScoreImpact)
		switch iss.Severity {
		case SeverityError:
			b.Errors++
			b.ErrorDeduction += d
		case SeverityWarning:
			b.Warnings++
			b.WarningDeduction += d
		case SeverityInfo:
			b.InfoIssues++
			b.InfoDeduction += d
		case SeverityStyle:
			b.StyleIssues++
			b.StyleDeduction += d
		}
	}

	total := b.ErrorDeduction + b.WarningDeduction + b.InfoDeduction + b.StyleDeduction

	// Larger files earn proportional leniency on low-severity noise, capped
	// at 30%. Very small files are held to a stricter relative standard.
	sizeFactor := 1.0
	switch {
	case lineCount > 200:
		leniency := math.Min(float64(lineCount-200)/1000.0, 0.3)
		b.SizeBonus = leniency * (b.InfoDeduction + b.StyleDeduction)
		sizeFactor = 1.0 + leniency
	case lineCount < 50:
		sizeFactor = 0.9
	}

	adjusted := total / sizeFactor
	overall := math.Max(0, baseScore-adjusted)
	rounded := math.Round(overall*10) / 10

	return Score{
		OverallScore: rounded,
		MaxScore:     baseScore,
		TotalIssues:  len(issues),
		Breakdown:    b,
		Rating:       RatingFor(rounded),
		Summary:      summaryFor(rounded, b),
	}
}

// summaryFor picks the one-line summary. Severity counts take priority over
// the numeric score, so summary and rating can disagree at boundary values.
func summaryFor(score float64, b ScoreBreakdown) string {
	switch {
	case b.Errors > 0:
		return fmt.Sprintf("Code has %d critical errors that need immediate attention", b.Errors)
	case b.Warnings > 5:
		return "Multiple warnings detected - consider addressing them"
	case b.InfoIssues > 10:
		return "Many minor issues found - good opportunity for cleanup"
	case score >= 9.0:
		return "Excellent code quality with minimal issues"
	case score >= 7.5:
		return "Good code quality with room for minor improvements"
	default:
		return "Code needs improvement in several areas"
	}
}

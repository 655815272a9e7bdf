package analysis

import (
	"bytes"
	"context"
	"fmt"

	"github.com/dshills/codecritic/internal/engine"
)

// Analyzer applies an ordered rule set to parsed source text.
type Analyzer struct {
	rules  []Rule
	engine engine.Engine
}

// New builds an Analyzer around the given pattern engine.
func New(eng engine.Engine) *Analyzer {
	return &Analyzer{engine: eng}
}

// AddRule appends a rule. Rules are evaluated in the order they were added.
func (a *Analyzer) AddRule(r Rule) {
	a.rules = append(a.rules, r)
}

// AddRules appends rules in order.
func (a *Analyzer) AddRules(rules []Rule) {
	a.rules = append(a.rules, rules...)
}

// HasRules reports whether any rule has been added.
func (a *Analyzer) HasRules() bool {
	return len(a.rules) > 0
}

// Analyze parses the source and evaluates every rule against it, emitting
// one Issue per captured node. Issues are ordered by rule, then by the order
// the engine yields matches and captures; nothing is deduplicated. A pattern
// the grammar cannot compile aborts the whole analysis.
func (a *Analyzer) Analyze(ctx context.Context, source []byte) ([]Issue, error) {
	tree, err := a.engine.Parse(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("analysis.Analyze: parse: %w", err)
	}
	defer tree.Close()

	var issues []Issue
	for _, rule := range a.rules {
		matches, err := a.engine.Evaluate(tree, rule.Pattern, source)
		if err != nil {
			return nil, fmt.Errorf("analysis.Analyze: rule %q: %w", rule.Name, err)
		}
		for _, m := range matches {
			for _, c := range m.Captures {
				issues = append(issues, Issue{
					RuleName:    rule.Name,
					Severity:    rule.Severity,
					Message:     rule.Message,
					Line:        int(c.Start.Row) + 1,
					Column:      int(c.Start.Column) + 1,
					Text:        c.Text,
					Suggestion:  rule.Suggestion,
					ScoreImpact: -(rule.Severity.BaseDeduction() * rule.Weight),
				})
			}
		}
	}
	return issues, nil
}

// AnalyzeWithScore runs Analyze and reduces the issues into a Score using
// the source's own line count.
func (a *Analyzer) AnalyzeWithScore(ctx context.Context, source []byte) ([]Issue, Score, error) {
	issues, err := a.Analyze(ctx, source)
	if err != nil {
		return nil, Score{}, err
	}
	return issues, ComputeScore(issues, CountLines(source)), nil
}

// CountLines counts text lines: a trailing newline does not start a new line,
// and empty input has zero lines.
func CountLines(source []byte) int {
	if len(source) == 0 {
		return 0
	}
	n := bytes.Count(source, []byte("\n"))
	if !bytes.HasSuffix(source, []byte("\n")) {
		n++
	}
	return n
}

package engine

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// Sitter evaluates tree-sitter pattern queries for a single grammar.
type Sitter struct {
	name string
	lang *sitter.Language
}

// NewSitter wraps a tree-sitter grammar as an Engine.
func NewSitter(name string, lang *sitter.Language) *Sitter {
	return &Sitter{name: name, lang: lang}
}

func (s *Sitter) Name() string { return s.name }

type sitterTree struct {
	tree *sitter.Tree
}

func (t *sitterTree) Close() { t.tree.Close() }

// Parse builds a syntax tree for the source. The context bounds the parse;
// query evaluation itself is not interruptible in the binding.
func (s *Sitter) Parse(ctx context.Context, source []byte) (Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(s.lang)
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("engine.Parse: %w", err)
	}
	return &sitterTree{tree: tree}, nil
}

// Evaluate compiles the pattern against the grammar and collects every match
// in the order the cursor yields them. Capture text is the verbatim source
// slice under the node.
func (s *Sitter) Evaluate(tree Tree, pattern string, source []byte) ([]Match, error) {
	st, ok := tree.(*sitterTree)
	if !ok {
		return nil, fmt.Errorf("engine.Evaluate: tree was not produced by this engine")
	}

	query, err := sitter.NewQuery([]byte(pattern), s.lang)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	defer query.Close()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(query, st.tree.RootNode())

	var matches []Match
	for {
		qm, ok := cursor.NextMatch()
		if !ok {
			break
		}
		qm = cursor.FilterPredicates(qm, source)
		var m Match
		for _, qc := range qm.Captures {
			start := qc.Node.StartPoint()
			m.Captures = append(m.Captures, Capture{
				Name:  query.CaptureNameForId(qc.Index),
				Start: Point{Row: start.Row, Column: start.Column},
				Text:  qc.Node.Content(source),
			})
		}
		if len(m.Captures) > 0 {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

// Package engine defines the structural pattern engine interface and its
// tree-sitter implementation.
package engine

import (
	"context"
	"fmt"
)

// Point is a zero-based position in the source text.
type Point struct {
	Row    uint32
	Column uint32
}

// Capture is a single syntax node bound by a pattern match.
type Capture struct {
	Name  string
	Start Point
	Text  string
}

// Match is one result of evaluating a pattern query against a tree.
type Match struct {
	Captures []Capture
}

// Tree is an opaque handle to a parsed syntax tree.
type Tree interface {
	Close()
}

// Engine parses source text and evaluates structural pattern queries
// against the resulting tree.
type Engine interface {
	Parse(ctx context.Context, source []byte) (Tree, error)
	Evaluate(tree Tree, pattern string, source []byte) ([]Match, error)
	Name() string
}

// PatternError reports a pattern query the grammar cannot compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern query %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

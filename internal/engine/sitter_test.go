package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/smacker/go-tree-sitter/golang"
)

const goSource = "package main\n\nfunc main() {\n\tpanic(\"boom\")\n}\n"

func TestSitterEvaluate(t *testing.T) {
	eng := NewSitter("go", golang.GetLanguage())
	if eng.Name() != "go" {
		t.Errorf("Name() = %q, want go", eng.Name())
	}

	src := []byte(goSource)
	tree, err := eng.Parse(context.Background(), src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	matches, err := eng.Evaluate(tree, `((call_expression function: (identifier) @call) (#eq? @call "panic"))`, src)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	c := matches[0].Captures[0]
	if c.Text != "panic" {
		t.Errorf("capture text = %q, want panic", c.Text)
	}
	if c.Start.Row != 3 || c.Start.Column != 1 {
		t.Errorf("capture at %d:%d, want 3:1 (zero-based)", c.Start.Row, c.Start.Column)
	}
}

func TestSitterEvaluateNoMatch(t *testing.T) {
	eng := NewSitter("go", golang.GetLanguage())
	src := []byte(goSource)
	tree, err := eng.Parse(context.Background(), src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	matches, err := eng.Evaluate(tree, `(goto_statement) @goto`, src)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("got %d matches, want 0", len(matches))
	}
}

func TestSitterMalformedPattern(t *testing.T) {
	eng := NewSitter("go", golang.GetLanguage())
	src := []byte(goSource)
	tree, err := eng.Parse(context.Background(), src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	_, err = eng.Evaluate(tree, "(call_expression", src)
	var pe *PatternError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PatternError, got %v", err)
	}
	if pe.Pattern != "(call_expression" {
		t.Errorf("PatternError.Pattern = %q", pe.Pattern)
	}
}

func TestSitterRejectsForeignTree(t *testing.T) {
	eng := NewSitter("go", golang.GetLanguage())
	mock := &MockEngine{}
	tree, _ := mock.Parse(context.Background(), nil)
	if _, err := eng.Evaluate(tree, "(identifier) @id", nil); err == nil {
		t.Error("expected error for a tree from another engine")
	}
}

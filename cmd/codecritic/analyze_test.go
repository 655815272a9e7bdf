package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/codecritic/internal/analysis"
	"github.com/dshills/codecritic/internal/report"
)

func TestExitError(t *testing.T) {
	err := exitError(4, "failed to load config %s", "rules.yaml")
	var ee *exitErr
	if !errors.As(err, &ee) {
		t.Fatalf("expected *exitErr, got %T", err)
	}
	if ee.code != 4 {
		t.Errorf("code = %d, want 4", ee.code)
	}
	if ee.Error() != "failed to load config rules.yaml" {
		t.Errorf("msg = %q", ee.Error())
	}
}

func testResult() *report.Result {
	issues := []analysis.Issue{
		{RuleName: "panic_call", Severity: analysis.SeverityWarning, Message: "panic() aborts the process",
			Line: 4, Column: 2, Text: "panic", ScoreImpact: -1.5},
	}
	return report.Build("main.go", "go", issues, analysis.ComputeScore(issues, 100))
}

func TestFormatResult(t *testing.T) {
	res := testResult()

	jsonOut, err := formatResult(res, &analyzeFlags{format: "json"})
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(jsonOut, `"rating": "Good"`) {
		t.Errorf("json output missing rating:\n%s", jsonOut)
	}
	if !strings.HasSuffix(jsonOut, "\n") {
		t.Error("json output should end with a newline")
	}

	mdOut, err := formatResult(res, &analyzeFlags{format: "md"})
	if err != nil {
		t.Fatalf("md: %v", err)
	}
	if !strings.Contains(mdOut, "# CodeCritic Report") {
		t.Errorf("markdown output missing heading:\n%s", mdOut)
	}

	// Writing text to a file forces colors off regardless of the terminal.
	textOut, err := formatResult(res, &analyzeFlags{format: "text", out: "report.txt"})
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	if strings.Contains(textOut, "\x1b[") {
		t.Error("text output to a file should not contain ANSI escapes")
	}
}

func TestFormatResultUnknownFormat(t *testing.T) {
	_, err := formatResult(testResult(), &analyzeFlags{format: "xml"})
	var ee *exitErr
	if !errors.As(err, &ee) {
		t.Fatalf("expected *exitErr, got %v", err)
	}
	if ee.code != 3 {
		t.Errorf("code = %d, want 3", ee.code)
	}
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dshills/codecritic/internal/analysis"
	"github.com/dshills/codecritic/internal/engine"
	"github.com/dshills/codecritic/internal/lang"
	"github.com/dshills/codecritic/internal/logging"
	"github.com/dshills/codecritic/internal/report"
	"github.com/dshills/codecritic/internal/ruleset"
)

type analyzeFlags struct {
	configPath string
	format     string
	out        string
	failBelow  float64
	noColor    bool
	verbose    bool
}

func newAnalyzeCmd() *cobra.Command {
	f := &analyzeFlags{}

	cmd := &cobra.Command{
		Use:   "analyze <source-file>",
		Short: "Analyze a source file and produce a quality score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", "", "Rule config file (default: builtin rules for the language)")
	flags.StringVar(&f.format, "format", "json", "Output format: json, md, or text")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.Float64Var(&f.failBelow, "fail-below", 0, "Exit non-zero if the score is below this value")
	flags.BoolVar(&f.noColor, "no-color", false, "Disable colored text output")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

func runAnalyze(sourcePath string, f *analyzeFlags) error {
	logger, err := logging.New(f.verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	language, err := lang.FromPath(sourcePath)
	if err != nil {
		return exitError(3, "unsupported file extension for %q (supported: %s)",
			sourcePath, strings.Join(lang.Extensions(), ", "))
	}
	logger.Debugf("Resolved language: %s", language.DisplayName)

	var cfg *ruleset.Config
	configLabel := "builtin " + language.Key
	if f.configPath != "" {
		configLabel = f.configPath
		cfg, err = ruleset.Load(f.configPath)
	} else {
		cfg, err = ruleset.LoadBuiltin(language.Key)
	}
	if err != nil {
		return exitError(4, "failed to load config %s: %v", configLabel, err)
	}

	rules := cfg.Rules()
	if len(rules) == 0 {
		return exitError(4, "config %s: %v for language %q", configLabel, ruleset.ErrNoRules, language.Key)
	}
	logger.Debugf("Loaded %d enabled rules from %s", len(rules), configLabel)

	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return exitError(3, "failed to read %q: %v", sourcePath, err)
	}

	analyzer := analysis.New(engine.NewSitter(language.Key, language.Grammar()))
	analyzer.AddRules(rules)

	logger.Debugf("Analyzing %s file: %s", language.DisplayName, sourcePath)
	issues, score, err := analyzer.AnalyzeWithScore(context.Background(), source)
	if err != nil {
		return exitError(5, "analysis failed: %v", err)
	}
	logger.Debugf("Found %d issues, score %.1f/%.0f", len(issues), score.OverallScore, score.MaxScore)

	result := report.Build(filepath.Base(sourcePath), language.Key, issues, score)

	output, err := formatResult(result, f)
	if err != nil {
		return err
	}

	if f.out != "" {
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Print(output)
	}

	if f.failBelow > 0 && score.OverallScore < f.failBelow {
		return exitError(2, "score %.1f is below fail threshold %.1f", score.OverallScore, f.failBelow)
	}

	return nil
}

func formatResult(res *report.Result, f *analyzeFlags) (string, error) {
	switch f.format {
	case "json":
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal output: %w", err)
		}
		return string(data) + "\n", nil
	case "md":
		return report.Markdown(res), nil
	case "text":
		noColor := f.noColor || f.out != "" || !isatty.IsTerminal(os.Stdout.Fd())
		return report.NewRenderer(noColor).Render(res), nil
	default:
		return "", exitError(3, "unknown format: %s", f.format)
	}
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

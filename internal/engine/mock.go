package engine

import "context"

// MockEngine is a test double that returns scripted matches per pattern.
type MockEngine struct {
	Matches  map[string][]Match
	ParseErr error
	EvalErr  error
}

func (m *MockEngine) Name() string { return "mock" }

type mockTree struct{}

func (mockTree) Close() {}

func (m *MockEngine) Parse(_ context.Context, _ []byte) (Tree, error) {
	if m.ParseErr != nil {
		return nil, m.ParseErr
	}
	return mockTree{}, nil
}

func (m *MockEngine) Evaluate(_ Tree, pattern string, _ []byte) ([]Match, error) {
	if m.EvalErr != nil {
		return nil, m.EvalErr
	}
	return m.Matches[pattern], nil
}

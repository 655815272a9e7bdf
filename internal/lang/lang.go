// Package lang maps source file extensions to supported grammars.
package lang

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
)

// ErrUnsupported reports a file extension with no grammar mapping.
var ErrUnsupported = errors.New("unsupported file extension")

// Language identifies one supported grammar.
type Language struct {
	Key         string // rule-set config key, e.g. "go"
	DisplayName string
	Extensions  []string
	grammar     *sitter.Language
}

// Grammar returns the tree-sitter grammar for the language.
func (l Language) Grammar() *sitter.Language { return l.grammar }

var languages = []Language{
	{Key: "rust", DisplayName: "Rust", Extensions: []string{".rs"}, grammar: rust.GetLanguage()},
	{Key: "go", DisplayName: "Go", Extensions: []string{".go"}, grammar: golang.GetLanguage()},
	{Key: "javascript", DisplayName: "JavaScript", Extensions: []string{".js", ".jsx"}, grammar: javascript.GetLanguage()},
	{Key: "java", DisplayName: "Java", Extensions: []string{".java"}, grammar: java.GetLanguage()},
	{Key: "python", DisplayName: "Python", Extensions: []string{".py"}, grammar: python.GetLanguage()},
	{Key: "cpp", DisplayName: "C++", Extensions: []string{".cpp", ".cc", ".cxx", ".hpp"}, grammar: cpp.GetLanguage()},
}

// FromPath resolves the language for a source file path by its extension,
// case-insensitively.
func FromPath(path string) (Language, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, l := range languages {
		for _, e := range l.Extensions {
			if e == ext {
				return l, nil
			}
		}
	}
	return Language{}, fmt.Errorf("lang.FromPath: %q: %w", ext, ErrUnsupported)
}

// All returns the supported languages.
func All() []Language {
	return append([]Language(nil), languages...)
}

// Extensions returns every supported extension across all languages.
func Extensions() []string {
	var exts []string
	for _, l := range languages {
		exts = append(exts, l.Extensions...)
	}
	return exts
}

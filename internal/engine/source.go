package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bigocheck/internal/models"
)

// ErrNotApplicable signals that the input is not recognized as
// belonging to the supported C-family grammar subset. It is reported
// once to the caller and no analysis is attempted.
var ErrNotApplicable = errors.New("source not recognized as C/C++ family")

var sourceExtensions = map[string]bool{
	".c": true, ".cc": true, ".cpp": true, ".cxx": true, ".c++": true,
	".h": true, ".hh": true, ".hpp": true, ".hxx": true,
}

// IsSourceFile reports whether the filename carries a supported
// C-family extension.
func IsSourceFile(name string) bool {
	return sourceExtensions[strings.ToLower(filepath.Ext(name))]
}

// AnalyzeSource checks the grammar family and analyzes the buffer
// contents. The name is used for reporting and for the extension part
// of the applicability check.
func AnalyzeSource(name, src string) (*models.AnalysisResult, error) {
	lines := strings.Split(src, "\n")
	if !applicable(name, lines) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotApplicable)
	}

	start := time.Now()
	result := Analyze(lines)
	result.File = name
	result.Duration = time.Since(start).String()
	return result, nil
}

// AnalyzeFile reads and analyzes one file from disk.
func AnalyzeFile(filename string) (*models.AnalysisResult, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return AnalyzeSource(filename, string(data))
}

// applicable accepts files with a known extension outright, and falls
// back to content sniffing for extensionless buffers: preprocessor
// directives, or the brace-and-semicolon shape of C-family code.
func applicable(name string, lines []string) bool {
	if IsSourceFile(name) {
		return true
	}
	braces, semis := 0, 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#include") || strings.HasPrefix(trimmed, "#define") {
			return true
		}
		braces += strings.Count(trimmed, "{")
		semis += strings.Count(trimmed, ";")
	}
	return braces > 0 && semis > 0
}

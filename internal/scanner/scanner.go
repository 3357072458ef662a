// Package scanner finds C/C++ source files beneath the paths given on
// the command line.
package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"bigocheck/internal/engine"
)

// Scanner recursively collects C/C++ files, skipping excluded
// directories.
type Scanner struct {
	Excludes []string
}

func NewScanner(excludes []string) *Scanner {
	return &Scanner{Excludes: excludes}
}

// ScanPath scans a file or directory for C/C++ sources.
func (s *Scanner) ScanPath(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if engine.IsSourceFile(path) {
			return []string{path}, nil
		}
		return nil, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(filePath string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // Skip files/dirs with errors
		}

		if d.IsDir() {
			if s.shouldSkipDir(filePath) {
				return filepath.SkipDir
			}
			return nil
		}

		if engine.IsSourceFile(filePath) && !s.shouldSkipMatch(filePath) {
			files = append(files, filePath)
		}

		return nil
	})

	return files, err
}

// ScanPaths scans multiple paths and concatenates their results.
func (s *Scanner) ScanPaths(paths []string) ([]string, error) {
	var allFiles []string
	for _, path := range paths {
		files, err := s.ScanPath(path)
		if err != nil {
			return nil, err
		}
		allFiles = append(allFiles, files...)
	}
	return allFiles, nil
}

func (s *Scanner) shouldSkipDir(path string) bool {
	defaultExclusions := []string{
		"build", ".git", "node_modules", "third_party", "cmake-build-debug", ".vscode", ".idea",
	}
	dirName := filepath.Base(path)
	for _, excluded := range defaultExclusions {
		if dirName == excluded {
			return true
		}
	}
	return s.shouldSkipMatch(path)
}

func (s *Scanner) shouldSkipMatch(path string) bool {
	for _, pattern := range s.Excludes {
		matched, _ := filepath.Match(pattern, path)
		if matched {
			return true
		}
		if strings.Contains(path, strings.TrimSuffix(pattern, "/**")) && strings.HasSuffix(pattern, "/**") {
			return true
		}
	}
	return false
}

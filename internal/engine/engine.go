// Package engine runs the complexity analysis: a time pass composing
// loop and call classes through the active nesting, and an independent
// space pass over declarations. The engine keeps no state between
// invocations; every call returns a fresh result.
package engine

import (
	"strings"

	"bigocheck/internal/complexity"
	"bigocheck/internal/models"
	"bigocheck/internal/patterns"
)

// Analyze runs both passes over the given line sequence and returns
// the aggregated result. Lines are 1-indexed in all records.
func Analyze(lines []string) *models.AnalysisResult {
	result := models.NewAnalysisResult()
	analyzeSpace(lines, result)
	analyzeTime(lines, result)
	return result
}

// analyzeTime is the single composition pass: it tracks brace depth,
// a stack of active loop base classes, and a stack of open function
// scopes, folding every discovered effective class into the overall
// and innermost-function summaries by dominance. Dominance, not
// last-write-wins: a later cheaper operation never downgrades a
// recorded class.
func analyzeTime(lines []string, result *models.AnalysisResult) {
	var nestingStack []complexity.Class
	var functionStack []models.FunctionScope
	braceDepth := 0

	fold := func(effective complexity.Class) {
		result.OverallTime = complexity.Dominant(result.OverallTime, effective)
		if n := len(functionStack); n > 0 {
			functionStack[n-1].Time = complexity.Dominant(functionStack[n-1].Time, effective)
		}
	}

	for i, line := range lines {
		lineNo := i + 1
		trimmed := strings.TrimSpace(line)
		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")

		m := patterns.Classify(line)
		switch m.Kind {
		case patterns.KindFunction:
			// Function scopes open only outside loop nesting; the entry
			// depth accounts for a brace on the header line itself.
			if len(nestingStack) == 0 {
				functionStack = append(functionStack, models.FunctionScope{
					Name:       m.Name,
					Line:       lineNo,
					EntryDepth: braceDepth + opens,
					Time:       complexity.New(complexity.Const),
					Space:      complexity.New(complexity.Const),
				})
			}

		case patterns.KindLoop:
			effective := effectiveClass(nestingStack, m.Class)
			result.Loops = append(result.Loops, models.LoopRecord{
				Line:      lineNo,
				Source:    trimmed,
				Base:      m.Class,
				Effective: effective,
				Depth:     len(nestingStack),
			})
			nestingStack = append(nestingStack, m.Class)
			fold(effective)

		case patterns.KindCall:
			effective := effectiveClass(nestingStack, m.Class)
			result.Calls = append(result.Calls, models.CallRecord{
				Line:      lineNo,
				Source:    trimmed,
				Name:      m.Name,
				Base:      m.Class,
				Effective: effective,
				Depth:     len(nestingStack),
			})
			fold(effective)

		case patterns.KindDecl:
			if n := len(functionStack); n > 0 {
				functionStack[n-1].Space = complexity.Dominant(functionStack[n-1].Space, m.Class)
			}
		}

		// A lone closing brace approximates the end of the innermost
		// open construct. This does not track which construct the brace
		// actually closes; see the scope-approximation note in DESIGN.md.
		if (trimmed == "}" || trimmed == "};") && len(nestingStack) > 0 {
			nestingStack = nestingStack[:len(nestingStack)-1]
		}

		braceDepth += opens - closes
		for len(functionStack) > 0 && functionStack[len(functionStack)-1].EntryDepth > braceDepth {
			top := functionStack[len(functionStack)-1]
			functionStack = functionStack[:len(functionStack)-1]
			result.Functions = append(result.Functions, top)
		}
	}

	// Unbalanced braces leave scopes open; flush them in LIFO order so
	// malformed input still produces a complete result.
	for len(functionStack) > 0 {
		top := functionStack[len(functionStack)-1]
		functionStack = functionStack[:len(functionStack)-1]
		result.Functions = append(result.Functions, top)
	}
}

// effectiveClass multiplies a base class through the enclosing loops,
// outermost applied last: multiply(outer, multiply(inner, base)). With
// no enclosing loops the base passes through unchanged.
func effectiveClass(nestingStack []complexity.Class, base complexity.Class) complexity.Class {
	effective := base
	for i := len(nestingStack) - 1; i >= 0; i-- {
		effective = complexity.Multiply(nestingStack[i], effective)
	}
	return effective
}

package patterns

import (
	"regexp"
	"strings"

	"bigocheck/internal/complexity"
)

var (
	mulDivAssignRe = regexp.MustCompile(`(?:\*=|/=|<<=|>>=)\s*\d`)
	mulDivEqRe     = regexp.MustCompile(`=\s*(?:\w+\s*[*/]\s*2|2\s*\*\s*\w+)\b`)
	selfAddRe      = regexp.MustCompile(`(\w+)\s*\+=\s*(\w+)`)
	bitTrickRe     = regexp.MustCompile(`[&^]=?\s*\(?\s*\w+\s*-\s*1`)
	squareCmpRe    = regexp.MustCompile(`(\w+)\s*\*\s*(\w+)\s*<=?`)
	identRe        = regexp.MustCompile(`[A-Za-z_]\w*`)
)

// classifyLoop assigns a base complexity to a loop header line. The
// heuristics look only at the header; loop bodies are never examined,
// so unrecognized shapes default to Linear rather than erroring.
func classifyLoop(trimmed string) complexity.Class {
	switch {
	case forRe.MatchString(trimmed):
		return classifyFor(trimmed)
	case whileRe.MatchString(trimmed):
		return classifyWhile(trimmed)
	default:
		// do-while: the condition trails the body, which is unexamined.
		return complexity.New(complexity.Linear)
	}
}

func classifyFor(trimmed string) complexity.Class {
	header := parenContents(trimmed)
	if header == "" {
		return complexity.New(complexity.Linear)
	}

	// Range-based form iterates the whole container once.
	if !strings.Contains(header, ";") && strings.Contains(header, ":") {
		return complexity.New(complexity.Linear)
	}

	parts := strings.Split(header, ";")
	if len(parts) != 3 {
		return complexity.New(complexity.Linear)
	}
	cond, incr := parts[1], parts[2]

	if isLogarithmicStep(incr) {
		return complexity.New(complexity.Log)
	}
	if isSqrtBound(cond) {
		return complexity.New(complexity.Sqrt)
	}
	return complexity.New(complexity.Linear)
}

// isLogarithmicStep recognizes increments that halve or double the
// induction variable: *=2, /=2, shift assignments, x = x*2, x += x, and
// the x & (x-1) family of bit tricks.
func isLogarithmicStep(incr string) bool {
	if mulDivAssignRe.MatchString(incr) || mulDivEqRe.MatchString(incr) || bitTrickRe.MatchString(incr) {
		return true
	}
	if m := selfAddRe.FindStringSubmatch(incr); m != nil && m[1] == m[2] {
		return true
	}
	return false
}

// isSqrtBound recognizes conditions of the form i*i < n or an explicit
// square-root call bounding the loop.
func isSqrtBound(cond string) bool {
	if strings.Contains(cond, "sqrt(") || strings.Contains(cond, "sqrtl(") {
		return true
	}
	m := squareCmpRe.FindStringSubmatch(cond)
	return m != nil && m[1] == m[2]
}

func classifyWhile(trimmed string) complexity.Class {
	cond := parenContents(trimmed)
	if strings.ContainsAny(cond, "*/") && identRe.MatchString(cond) {
		return complexity.New(complexity.Log)
	}
	return complexity.New(complexity.Linear)
}

// parenContents returns the text between the first '(' and the last ')'
// of the line, or "" when no parenthesized section exists.
func parenContents(line string) string {
	open := strings.Index(line, "(")
	end := strings.LastIndex(line, ")")
	if open < 0 || end <= open {
		return ""
	}
	return line[open+1 : end]
}

// Package patterns classifies single source lines of C/C++-like code.
// All regex/string heuristics live here so the composition engine stays
// independent of how classification is implemented.
package patterns

import (
	"regexp"
	"strings"

	"bigocheck/internal/complexity"
)

type LineKind int

const (
	KindNone LineKind = iota
	KindFunction
	KindLoop
	KindCall
	KindDecl
)

func (k LineKind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindLoop:
		return "loop"
	case KindCall:
		return "call"
	case KindDecl:
		return "declaration"
	default:
		return "none"
	}
}

// Match is the outcome of classifying one line. Class carries the base
// complexity for loops and calls and the space class for declarations;
// Name carries the function or call name when known.
type Match struct {
	Kind  LineKind
	Name  string
	Class complexity.Class
}

var (
	controlKeywordRe = regexp.MustCompile(`^\s*(?:if|else|while|for|switch|do|return|case)\b`)
	funcHeaderRe     = regexp.MustCompile(`^[A-Za-z_][\w:<>,&*\s]*?[\s*&]([A-Za-z_]\w*)\s*\([^()]*\)\s*(?:const\s*)?\{?\s*$`)
	forRe            = regexp.MustCompile(`^\s*for\b`)
	whileRe          = regexp.MustCompile(`^\s*while\b`)
	doRe             = regexp.MustCompile(`^\s*do\b`)
)

// Classify decides what one trimmed line is. Exactly one classification
// fires per line, in priority order: function header, loop header,
// library/algorithm call, memory declaration. Everything else is
// KindNone — including lines the heuristics cannot make sense of.
func Classify(line string) Match {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#") {
		return Match{Kind: KindNone}
	}

	if name, ok := matchFunctionHeader(trimmed); ok {
		return Match{Kind: KindFunction, Name: name}
	}

	if forRe.MatchString(trimmed) || whileRe.MatchString(trimmed) || doRe.MatchString(trimmed) {
		return Match{Kind: KindLoop, Class: classifyLoop(trimmed)}
	}

	if call, ok := classifyCall(trimmed); ok {
		return Match{Kind: KindCall, Name: call.Name, Class: call.Class}
	}

	if class, ok := classifyDecl(trimmed); ok {
		return Match{Kind: KindDecl, Class: class}
	}

	return Match{Kind: KindNone}
}

// matchFunctionHeader recognizes a function-definition header. Control
// statements share the `name(args)` shape, so any line led by a control
// keyword is rejected up front; prototypes end in a semicolon and are
// rejected too.
func matchFunctionHeader(trimmed string) (string, bool) {
	if controlKeywordRe.MatchString(trimmed) {
		return "", false
	}
	if strings.HasSuffix(trimmed, ";") {
		return "", false
	}
	m := funcHeaderRe.FindStringSubmatch(trimmed)
	if m == nil {
		return "", false
	}
	return m[1], true
}

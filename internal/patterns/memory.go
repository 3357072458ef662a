package patterns

import (
	"regexp"
	"strings"

	"bigocheck/internal/complexity"
)

var containerNames = []string{
	"vector<", "set<", "map<", "multiset<", "multimap<",
	"unordered_set<", "unordered_map<", "priority_queue<",
	"queue<", "stack<", "deque<", "bitset<",
}

var (
	arrayDeclRe  = regexp.MustCompile(`^(?:static\s+|const\s+|unsigned\s+|signed\s+)*(?:int|long long|long|char|bool|float|double|short|string|size_t)\s+\w+\s*\[`)
	nestedTmplRe = regexp.MustCompile(`<\s*\w+\s*<`)
	twoBracketRe = regexp.MustCompile(`\[[^\]]*\]\s*\[`)
	sizeTokenRe  = regexp.MustCompile(`[\[(]\s*([^\][(),;]*?)\s*[\])(,]`)
	numericRe    = regexp.MustCompile(`^\d+$`)
)

// classifyDecl recognizes a container or array declaration and assigns
// its space class. Structural shape is checked before the size token:
// adjacency structures, 2D shapes, and the usual tree/DSU arrays carry
// fixed classes regardless of the declared extent.
func classifyDecl(trimmed string) (complexity.Class, bool) {
	if !isContainerDecl(trimmed) {
		return complexity.Class{}, false
	}
	lower := strings.ToLower(trimmed)

	if strings.Contains(lower, "adj") || strings.Contains(lower, "graph") {
		return complexity.New(complexity.VPlusE), true
	}
	if nestedTmplRe.MatchString(trimmed) || twoBracketRe.MatchString(trimmed) {
		return complexity.New(complexity.Quadratic), true
	}
	if isTreeOrDSUName(lower) {
		return complexity.New(complexity.Linear), true
	}

	return sizeTokenClass(trimmed), true
}

func isContainerDecl(trimmed string) bool {
	for _, name := range containerNames {
		if strings.Contains(trimmed, name) {
			return true
		}
	}
	return arrayDeclRe.MatchString(trimmed)
}

func isTreeOrDSUName(lower string) bool {
	for _, hint := range []string{"tree", "seg", "fenwick", "bit[", "parent", "rank"} {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// sizeTokenClass extracts the first bracketed or parenthesized size
// token. A literal integer means constant extent; any symbolic token,
// or none at all, is conservatively linear.
func sizeTokenClass(trimmed string) complexity.Class {
	m := sizeTokenRe.FindStringSubmatch(trimmed)
	if m == nil || m[1] == "" {
		return complexity.New(complexity.Linear)
	}
	if numericRe.MatchString(m[1]) {
		return complexity.New(complexity.Const)
	}
	return complexity.New(complexity.Linear)
}

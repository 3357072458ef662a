package patterns

import (
	"regexp"
	"strings"

	"bigocheck/internal/complexity"
)

// Call is one recognized library/algorithm call on a line.
type Call struct {
	Name  string
	Class complexity.Class
}

// methodCallClasses covers member calls (receiver.name or
// receiver->name). Ordered associative containers pay a logarithmic
// cost per operation; the unordered_ variants are amortized constant
// and are special-cased in classifyCall.
var methodCallClasses = map[string]complexity.Kind{
	"insert":      complexity.Log,
	"erase":       complexity.Log,
	"find":        complexity.Log,
	"count":       complexity.Log,
	"lower_bound": complexity.Log,
	"upper_bound": complexity.Log,
	"query":       complexity.Log,
	"update":      complexity.Log,
	"substr":      complexity.Linear,
	"compare":     complexity.Linear,
}

// freeCallClasses covers freestanding calls, std:: qualified or not.
var freeCallClasses = map[string]complexity.Kind{
	"sort":          complexity.Linearithmic,
	"stable_sort":   complexity.Linearithmic,
	"binary_search": complexity.Log,
	"lower_bound":   complexity.Log,
	"upper_bound":   complexity.Log,
	"equal_range":   complexity.Log,
	"reverse":       complexity.Linear,
	"fill":          complexity.Linear,
	"copy":          complexity.Linear,
	"accumulate":    complexity.Linear,
	"find":          complexity.Linear,
	"count":         complexity.Linear,
	"push_heap":     complexity.Log,
	"pop_heap":      complexity.Log,
	"make_heap":     complexity.Linearithmic,
	"sort_heap":     complexity.Linearithmic,
	"gcd":           complexity.Log,
	"__gcd":         complexity.Log,
	"memset":        complexity.Linear,
	"memcpy":        complexity.Linear,
	"dfs":           complexity.VPlusE,
	"bfs":           complexity.VPlusE,
	"dijkstra":      complexity.ELogV,
	"floyd":         complexity.Cubic,
	"warshall":      complexity.Cubic,
	"bellman":       complexity.VTimesE,
	"bellman_ford":  complexity.VTimesE,
	"find_set":      complexity.InverseAckermann,
	"union_set":     complexity.InverseAckermann,
	"unite":         complexity.InverseAckermann,
	"query":         complexity.Log,
	"update":        complexity.Log,
	"sieve":         complexity.NLogLogN,
}

var (
	methodCallRe = regexp.MustCompile(`(\w+)\s*(?:\.|->)\s*(\w+)\s*\(`)
	freeCallRe   = regexp.MustCompile(`(?:^|[^.\w>:])(?:std::)?(\w+)\s*\(`)
)

// classifyCall scans one line for the leftmost recognized call.
// Member calls are consulted first so that container operations are
// not mistaken for the linear std algorithms of the same name.
// Unrecognized names are skipped silently: absence of evidence, not
// an error.
func classifyCall(trimmed string) (Call, bool) {
	lower := strings.ToLower(trimmed)

	for _, m := range methodCallRe.FindAllStringSubmatch(trimmed, -1) {
		receiver, method := m[1], m[2]
		if c, ok := classifyMethod(lower, receiver, method); ok {
			return c, true
		}
	}

	for _, m := range freeCallRe.FindAllStringSubmatch(trimmed, -1) {
		name := m[1]
		if kind, ok := freeCallClasses[strings.ToLower(name)]; ok {
			return Call{Name: name, Class: complexity.New(kind)}, true
		}
	}

	return Call{}, false
}

func classifyMethod(lowerLine, receiver, method string) (Call, bool) {
	lowerMethod := strings.ToLower(method)
	lowerRecv := strings.ToLower(receiver)
	trieRecv := strings.Contains(lowerRecv, "trie") || strings.Contains(lowerLine, "trie")

	// Trie traversal is bounded by key length, not element count.
	if trieRecv && (lowerMethod == "insert" || lowerMethod == "search") {
		return Call{Name: method, Class: complexity.New(complexity.StringLength)}, true
	}

	// Heap push/pop, recognized by receiver naming convention.
	if lowerMethod == "push" || lowerMethod == "pop" {
		if strings.Contains(lowerRecv, "pq") || strings.Contains(lowerRecv, "heap") ||
			strings.Contains(lowerLine, "priority_queue") {
			return Call{Name: method, Class: complexity.New(complexity.Log)}, true
		}
		return Call{}, false
	}

	kind, ok := methodCallClasses[lowerMethod]
	if !ok {
		return Call{}, false
	}
	if strings.Contains(lowerLine, "unordered_") && kind == complexity.Log {
		kind = complexity.Const
	}
	return Call{Name: method, Class: complexity.New(kind)}, true
}

package patterns

import (
	"testing"

	"bigocheck/internal/complexity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classOf(t *testing.T, line string, kind LineKind) complexity.Class {
	t.Helper()
	m := Classify(line)
	require.Equal(t, kind, m.Kind, "line %q", line)
	return m.Class
}

func TestFunctionHeaders(t *testing.T) {
	cases := []struct {
		line string
		name string
	}{
		{"int main() {", "main"},
		{"void dfs(int u, int p) {", "dfs"},
		{"long long solve(vector<int>& v)", "solve"},
		{"static int helper(int a, int b) {", "helper"},
	}
	for _, tc := range cases {
		m := Classify(tc.line)
		require.Equal(t, KindFunction, m.Kind, "line %q", tc.line)
		assert.Equal(t, tc.name, m.Name)
	}
}

func TestFunctionHeaderRejections(t *testing.T) {
	for _, line := range []string{
		"if (check(x)) {",
		"while (ok(x)) {",
		"switch (kind(x)) {",
		"int solve(int n);", // prototype
		"return f(x);",
	} {
		m := Classify(line)
		assert.NotEqual(t, KindFunction, m.Kind, "line %q", line)
	}
}

func TestForLoopClassification(t *testing.T) {
	cases := []struct {
		line string
		want complexity.Kind
	}{
		{"for (int i = 0; i < n; i++) {", complexity.Linear},
		{"for (int i = 1; i < n; i *= 2) {", complexity.Log},
		{"for (int i = n; i >= 1; i /= 2) {", complexity.Log},
		{"for (int i = 1; i < n; i <<= 1) {", complexity.Log},
		{"for (int i = 1; i < n; i = i * 2) {", complexity.Log},
		{"for (int i = 1; i < n; i += i) {", complexity.Log},
		{"for (int i = 0; i * i <= n; i++) {", complexity.Sqrt},
		{"for (int i = 0; i < sqrt(n); i++) {", complexity.Sqrt},
		{"for (auto x : v) {", complexity.Linear},
		{"for (const auto& [k, val] : mp) {", complexity.Linear},
		{"for (;;) {", complexity.Linear},
	}
	for _, tc := range cases {
		got := classOf(t, tc.line, KindLoop)
		assert.Equal(t, complexity.New(tc.want), got, "line %q", tc.line)
	}
}

func TestWhileLoopClassification(t *testing.T) {
	assert.Equal(t, complexity.New(complexity.Linear), classOf(t, "while (n > 0) {", KindLoop))
	assert.Equal(t, complexity.New(complexity.Log), classOf(t, "while (n / 2 > 0) {", KindLoop))
	assert.Equal(t, complexity.New(complexity.Log), classOf(t, "while (x * x < n) {", KindLoop))
}

func TestDoLoopIsLinear(t *testing.T) {
	assert.Equal(t, complexity.New(complexity.Linear), classOf(t, "do {", KindLoop))
}

func TestCallClassification(t *testing.T) {
	cases := []struct {
		line string
		name string
		want complexity.Kind
	}{
		{"sort(v.begin(), v.end());", "sort", complexity.Linearithmic},
		{"stable_sort(v.begin(), v.end());", "stable_sort", complexity.Linearithmic},
		{"bool ok = binary_search(v.begin(), v.end(), x);", "binary_search", complexity.Log},
		{"auto it = lower_bound(v.begin(), v.end(), x);", "lower_bound", complexity.Log},
		{"reverse(v.begin(), v.end());", "reverse", complexity.Linear},
		{"int s = accumulate(v.begin(), v.end(), 0);", "accumulate", complexity.Linear},
		{"int g = gcd(a, b);", "gcd", complexity.Log},
		{"int g = std::__gcd(a, b);", "__gcd", complexity.Log},
		{"memset(dist, 0x3f, sizeof(dist));", "memset", complexity.Linear},
		{"st.insert(x);", "insert", complexity.Log},
		{"st.erase(x);", "erase", complexity.Log},
		{"if (st.find(x) != st.end())", "find", complexity.Log},
		{"auto p = s.substr(1, 3);", "substr", complexity.Linear},
		{"seg.update(1, 0, n - 1, pos, val);", "update", complexity.Log},
		{"int best = seg.query(1, 0, n - 1, l, r);", "query", complexity.Log},
		{"pq.push(make_pair(d, v));", "push", complexity.Log},
		{"trie.insert(word);", "insert", complexity.StringLength},
		{"dfs(1, 0);", "dfs", complexity.VPlusE},
		{"bfs(source);", "bfs", complexity.VPlusE},
		{"dijkstra(src);", "dijkstra", complexity.ELogV},
		{"bellman(src);", "bellman", complexity.VTimesE},
		{"floyd();", "floyd", complexity.Cubic},
		{"unite(a, b);", "unite", complexity.InverseAckermann},
		{"sieve(n);", "sieve", complexity.NLogLogN},
	}
	for _, tc := range cases {
		m := Classify(tc.line)
		require.Equal(t, KindCall, m.Kind, "line %q", tc.line)
		assert.Equal(t, tc.name, m.Name, "line %q", tc.line)
		assert.Equal(t, complexity.New(tc.want), m.Class, "line %q", tc.line)
	}
}

func TestUnorderedReceiverIsAmortizedConst(t *testing.T) {
	m := Classify("unordered_set<int> seen; seen.insert(x);")
	require.Equal(t, KindCall, m.Kind)
	assert.Equal(t, complexity.New(complexity.Const), m.Class)
}

func TestUnrecognizedCallsAreSkipped(t *testing.T) {
	for _, line := range []string{
		"v.push_back(x);",
		"printf(\"%d\\n\", x);",
		"helper(a, b, c);",
		"cin >> n;",
	} {
		m := Classify(line)
		assert.Equal(t, KindNone, m.Kind, "line %q", line)
	}
}

func TestDeclClassification(t *testing.T) {
	cases := []struct {
		line string
		want complexity.Kind
	}{
		{"int a[10];", complexity.Const},
		{"vector<int> v(100);", complexity.Const},
		{"int buf[200005];", complexity.Const},
		{"vector<int> v(n);", complexity.Linear},
		{"int cnt[MAXN];", complexity.Linear},
		{"vector<int> v;", complexity.Linear},
		{"string names[10];", complexity.Const},
		{"vector<vector<int>> grid;", complexity.Quadratic},
		{"int dp[105][105];", complexity.Quadratic},
		{"vector<int> adj[200005];", complexity.VPlusE},
		{"vector<vector<int>> graph(n);", complexity.VPlusE},
		{"int parent[N];", complexity.Linear},
		{"int tree[4 * N];", complexity.Linear},
	}
	for _, tc := range cases {
		got := classOf(t, tc.line, KindDecl)
		assert.Equal(t, complexity.New(tc.want), got, "line %q", tc.line)
	}
}

func TestNonDeclLinesProduceNoSpaceClass(t *testing.T) {
	for _, line := range []string{
		"int x = 0;",
		"x += y;",
		"// vector<int> commented out",
		"#include <vector>",
		"",
	} {
		m := Classify(line)
		assert.Equal(t, KindNone, m.Kind, "line %q", line)
	}
}

func TestOneClassificationPerLine(t *testing.T) {
	// A loop header with a call inside classifies as the loop only.
	m := Classify("for (int i = 0; i < n; i++) { sort(v.begin(), v.end()); }")
	assert.Equal(t, KindLoop, m.Kind)
}

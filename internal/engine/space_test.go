package engine

import (
	"testing"

	"bigocheck/internal/complexity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpaceDominance(t *testing.T) {
	result := Analyze([]string{
		"int a[10];",
		"vector<int> v(n);",
	})
	require.Len(t, result.SpaceItems, 2)
	assert.Equal(t, complexity.New(complexity.Const), result.SpaceItems[0].Class)
	assert.Equal(t, complexity.New(complexity.Linear), result.SpaceItems[1].Class)
	assert.Equal(t, complexity.New(complexity.Linear), result.OverallSpace)
}

func TestSpaceDominanceOrderInsensitive(t *testing.T) {
	forward := Analyze([]string{"vector<int> v(n);", "int a[10];"})
	backward := Analyze([]string{"int a[10];", "vector<int> v(n);"})
	assert.Equal(t, forward.OverallSpace, backward.OverallSpace)
}

func TestAdjacencyListSpace(t *testing.T) {
	result := Analyze([]string{"vector<int> adj[200005];"})
	require.Len(t, result.SpaceItems, 1)
	assert.Equal(t, complexity.New(complexity.VPlusE), result.OverallSpace)
}

func TestTwoDimensionalSpace(t *testing.T) {
	result := Analyze([]string{"vector<vector<int>> grid;"})
	assert.Equal(t, complexity.New(complexity.Quadratic), result.OverallSpace)

	result = Analyze([]string{"int dp[1005][1005];"})
	assert.Equal(t, complexity.New(complexity.Quadratic), result.OverallSpace)
}

func TestSpacePassIgnoresLoopsAndCalls(t *testing.T) {
	result := Analyze([]string{
		"for (int i = 0; i < n; i++) {",
		"sort(v.begin(), v.end());",
		"}",
	})
	assert.Empty(t, result.SpaceItems)
	assert.Equal(t, complexity.New(complexity.Const), result.OverallSpace)
}

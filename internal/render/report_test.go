package render

import (
	"strings"
	"testing"

	"bigocheck/internal/config"
	"bigocheck/internal/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Output.Colors = false
	return cfg
}

func sampleResult(t *testing.T) (r *Renderer, reportLines []string) {
	t.Helper()
	result, err := engine.AnalyzeSource("buf.cpp", strings.Join([]string{
		"int main() {",
		"vector<int> v(n);",
		"for (int i = 0; i < n; i++) {",
		"sort(v.begin(), v.end());",
		"}",
		"}",
	}, "\n"))
	require.NoError(t, err)
	renderer := NewRenderer(plainConfig())
	return renderer, strings.Split(renderer.Render(result), "\n")
}

func TestRenderIsIdempotent(t *testing.T) {
	cfg := plainConfig()
	result, err := engine.AnalyzeSource("buf.cpp", "for (int i = 0; i < n; i++) {\n}\n")
	require.NoError(t, err)

	renderer := NewRenderer(cfg)
	first := renderer.Render(result)
	second := renderer.Render(result)
	assert.Equal(t, first, second)
}

func TestRerenderFromCache(t *testing.T) {
	cfg := plainConfig()
	result, err := engine.AnalyzeSource("buf.cpp", "for (int i = 0; i < n; i++) {\n}\n")
	require.NoError(t, err)

	renderer := NewRenderer(cfg)
	first := renderer.Render(result)

	again, ok := renderer.Rerender("buf.cpp")
	require.True(t, ok)
	assert.Equal(t, first, again)

	_, ok = renderer.Rerender("unknown.cpp")
	assert.False(t, ok)
}

func TestVisibilityToggleClearsAnnotationsWithoutMutatingResult(t *testing.T) {
	result, err := engine.AnalyzeSource("buf.cpp", "for (int i = 0; i < n; i++) {\n}\n")
	require.NoError(t, err)
	loopsBefore := len(result.Loops)

	renderer := NewRenderer(plainConfig())
	require.NotEmpty(t, renderer.Annotations(result))

	renderer.SetVisible(false)
	assert.Empty(t, renderer.Annotations(result))
	assert.Len(t, result.Loops, loopsBefore)

	renderer.SetVisible(true)
	assert.NotEmpty(t, renderer.Annotations(result))
}

func TestAnnotationsKeyedByLine(t *testing.T) {
	result, err := engine.AnalyzeSource("buf.cpp", strings.Join([]string{
		"for (int i = 0; i < n; i++) {",
		"sort(v.begin(), v.end());",
		"}",
	}, "\n"))
	require.NoError(t, err)

	renderer := NewRenderer(plainConfig())
	annotations := renderer.Annotations(result)
	require.Len(t, annotations, 2)
	assert.Contains(t, annotations[1], "O(n)")
	assert.Contains(t, annotations[2], "sort")
	assert.Contains(t, annotations[2], "O(n² log n)")
}

func TestConsoleReportContents(t *testing.T) {
	_, lines := sampleResult(t)
	report := strings.Join(lines, "\n")
	assert.Contains(t, report, "Overall time:  O(n² log n)")
	assert.Contains(t, report, "Overall space: O(n)")
	assert.Contains(t, report, "main")
}

func TestJSONReport(t *testing.T) {
	cfg := plainConfig()
	cfg.Output.Format = "json"
	result, err := engine.AnalyzeSource("buf.cpp", "for (int i = 1; i < n; i *= 2) {}\n")
	require.NoError(t, err)

	renderer := NewRenderer(cfg)
	report := renderer.Render(result)
	assert.Contains(t, report, `"overall_time": "O(log n)"`)
	assert.Contains(t, report, `"loops"`)
}

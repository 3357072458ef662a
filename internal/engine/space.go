package engine

import (
	"strings"

	"bigocheck/internal/complexity"
	"bigocheck/internal/models"
	"bigocheck/internal/patterns"
)

// analyzeSpace is the independent declaration pass. It is insensitive
// to scope and ordering: each recognized declaration becomes one
// SpaceItem and the overall space class is the dominance reduction
// over all of them.
func analyzeSpace(lines []string, result *models.AnalysisResult) {
	for i, line := range lines {
		m := patterns.Classify(line)
		if m.Kind != patterns.KindDecl {
			continue
		}
		result.SpaceItems = append(result.SpaceItems, models.SpaceItem{
			Line:   i + 1,
			Source: strings.TrimSpace(line),
			Class:  m.Class,
		})
		result.OverallSpace = complexity.Dominant(result.OverallSpace, m.Class)
	}
}

package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"bigocheck/internal/complexity"
	"bigocheck/internal/config"
	"bigocheck/internal/models"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Renderer turns an AnalysisResult into annotated reports. It caches
// results keyed by buffer identity so a redisplay never re-invokes
// analysis, and a visibility toggle clears or restores annotations
// without touching the cached results.
type Renderer struct {
	config  *config.Config
	visible bool
	cache   map[string]*models.AnalysisResult
}

// NewRenderer creates a renderer with annotations visible.
func NewRenderer(cfg *config.Config) *Renderer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Renderer{
		config:  cfg,
		visible: true,
		cache:   make(map[string]*models.AnalysisResult),
	}
}

// SetVisible toggles annotation visibility. Cached results are kept
// either way so restoring is a pure re-render.
func (r *Renderer) SetVisible(v bool) {
	r.visible = v
}

func (r *Renderer) Visible() bool {
	return r.visible
}

// Render formats a result and caches it under its buffer identity.
func (r *Renderer) Render(result *models.AnalysisResult) string {
	if result.File != "" {
		r.cache[result.File] = result
	}
	switch r.config.Output.Format {
	case "json":
		return r.generateJSON(result)
	default:
		return r.generateConsole(result)
	}
}

// Rerender re-renders a previously analyzed buffer from the cache.
func (r *Renderer) Rerender(key string) (string, bool) {
	result, ok := r.cache[key]
	if !ok {
		return "", false
	}
	return r.Render(result), true
}

// Annotations maps each record's line number to its inline annotation
// text. An invisible renderer returns an empty map; the result itself
// is never mutated.
func (r *Renderer) Annotations(result *models.AnalysisResult) map[int]string {
	annotations := make(map[int]string)
	if !r.visible {
		return annotations
	}
	for _, loop := range result.Loops {
		annotations[loop.Line] = fmt.Sprintf("%s %s", r.iconFor(loop.Effective), loop.Effective)
	}
	for _, call := range result.Calls {
		annotations[call.Line] = fmt.Sprintf("%s %s %s", r.iconFor(call.Effective), call.Name, call.Effective)
	}
	return annotations
}

// generateJSON creates a JSON report
func (r *Renderer) generateJSON(result *models.AnalysisResult) string {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error generating JSON report: %v", err)
	}
	return string(data)
}

// generateConsole creates a colorized console report
func (r *Renderer) generateConsole(result *models.AnalysisResult) string {
	var report strings.Builder

	useColors := r.config.Output.Colors

	if useColors {
		report.WriteString(color.CyanString("🔍 bigocheck Complexity Report\n"))
		report.WriteString(color.WhiteString("═══════════════════════════════════════\n\n"))
	} else {
		report.WriteString("bigocheck Complexity Report\n")
		report.WriteString("=======================================\n\n")
	}

	r.writeSummary(&report, result, useColors)

	if r.visible && r.config.Render.ShowAnnotations {
		r.writeAnnotations(&report, result, useColors)
	}

	if r.config.Render.ShowFunctions && len(result.Functions) > 0 {
		r.writeFunctionTable(&report, result)
	}

	if r.config.Limits.Enabled {
		r.writeConstraintCheck(&report, result, useColors)
	}

	if result.Duration != "" {
		if useColors {
			report.WriteString(color.WhiteString("Analysis completed in %s\n", result.Duration))
		} else {
			report.WriteString(fmt.Sprintf("Analysis completed in %s\n", result.Duration))
		}
	}

	return report.String()
}

func (r *Renderer) writeSummary(report *strings.Builder, result *models.AnalysisResult, useColors bool) {
	if useColors {
		report.WriteString(color.WhiteString("📊 Summary:\n"))
	} else {
		report.WriteString("Summary:\n")
	}
	if result.File != "" {
		report.WriteString(fmt.Sprintf("   File: %s\n", result.File))
	}
	if useColors {
		report.WriteString(fmt.Sprintf("   Overall time:  %s\n", r.colorFor(result.OverallTime)(result.OverallTime.String())))
		report.WriteString(fmt.Sprintf("   Overall space: %s\n", r.colorFor(result.OverallSpace)(result.OverallSpace.String())))
	} else {
		report.WriteString(fmt.Sprintf("   Overall time:  %s\n", result.OverallTime))
		report.WriteString(fmt.Sprintf("   Overall space: %s\n", result.OverallSpace))
	}
	report.WriteString(fmt.Sprintf("   Loops: %d, calls: %d, declarations: %d\n\n",
		result.LoopCount(), len(result.Calls), len(result.SpaceItems)))
}

func (r *Renderer) writeAnnotations(report *strings.Builder, result *models.AnalysisResult, useColors bool) {
	annotations := r.Annotations(result)
	if len(annotations) == 0 {
		if useColors {
			report.WriteString(color.GreenString("🎉 Nothing worth annotating — all constant time!\n\n"))
		} else {
			report.WriteString("Nothing worth annotating - all constant time!\n\n")
		}
		return
	}

	if useColors {
		report.WriteString(color.WhiteString("📋 Annotations:\n"))
	} else {
		report.WriteString("Annotations:\n")
	}

	lines := make([]int, 0, len(annotations))
	for line := range annotations {
		lines = append(lines, line)
	}
	sort.Ints(lines)

	for _, line := range lines {
		report.WriteString(fmt.Sprintf("   line %4d: %s\n", line, annotations[line]))
	}
	report.WriteString("\n")
}

func (r *Renderer) writeFunctionTable(report *strings.Builder, result *models.AnalysisResult) {
	table := tablewriter.NewWriter(report)
	table.SetHeader([]string{"Function", "Line", "Time", "Space"})
	table.SetBorder(false)
	for _, fn := range result.Functions {
		table.Append([]string{fn.Name, fmt.Sprintf("%d", fn.Line), fn.Time.String(), fn.Space.String()})
	}
	table.Render()
	report.WriteString("\n")
}

func (r *Renderer) writeConstraintCheck(report *strings.Builder, result *models.AnalysisResult, useColors bool) {
	check := CheckConstraints(r.config.Limits, result.OverallTime)
	if check.Exceeded {
		if useColors {
			report.WriteString(color.RedString("🚨 Estimated %.3g ops exceeds budget of %.3g ops (n=%d, %dms)\n\n",
				check.EstimatedOps, check.BudgetOps, r.config.Limits.ProblemSize, r.config.Limits.TimeLimitMS))
		} else {
			report.WriteString(fmt.Sprintf("WARNING: estimated %.3g ops exceeds budget of %.3g ops (n=%d, %dms)\n\n",
				check.EstimatedOps, check.BudgetOps, r.config.Limits.ProblemSize, r.config.Limits.TimeLimitMS))
		}
	} else if r.config.Output.Verbose {
		report.WriteString(fmt.Sprintf("Estimated %.3g ops within budget of %.3g ops\n\n",
			check.EstimatedOps, check.BudgetOps))
	}
}

// iconFor picks the configured icon for a class by severity band.
func (r *Renderer) iconFor(c complexity.Class) string {
	icons := r.config.Render.Icons
	switch {
	case c.Rank() >= r.config.Render.HighlightRank:
		return icons.Bad
	case c.Rank() >= complexity.New(complexity.Linearithmic).Rank():
		return icons.Warning
	default:
		return icons.Good
	}
}

func (r *Renderer) colorFor(c complexity.Class) func(format string, a ...interface{}) string {
	switch {
	case c.Rank() >= r.config.Render.HighlightRank:
		return color.RedString
	case c.Rank() >= complexity.New(complexity.Linearithmic).Rank():
		return color.YellowString
	default:
		return color.GreenString
	}
}

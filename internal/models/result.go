package models

import (
	"bigocheck/internal/complexity"
)

// LoopRecord describes one recognized loop header. Effective is the
// loop's own class multiplied through every loop enclosing it at the
// point of detection. Records are immutable once appended.
type LoopRecord struct {
	Line      int              `json:"line"`
	Source    string           `json:"source"`
	Base      complexity.Class `json:"base"`
	Effective complexity.Class `json:"effective"`
	Depth     int              `json:"depth"`
}

// CallRecord describes one recognized library/algorithm call, shaped
// like a LoopRecord plus the matched call name.
type CallRecord struct {
	Line      int              `json:"line"`
	Source    string           `json:"source"`
	Name      string           `json:"name"`
	Base      complexity.Class `json:"base"`
	Effective complexity.Class `json:"effective"`
	Depth     int              `json:"depth"`
}

// FunctionScope is the span between a recognized function header and
// the point its brace depth closes. Time and Space are dominance-folded
// from every operation discovered while this scope is innermost.
type FunctionScope struct {
	Name       string           `json:"name"`
	Line       int              `json:"line"`
	EntryDepth int              `json:"-"`
	Time       complexity.Class `json:"time"`
	Space      complexity.Class `json:"space"`
}

// SpaceItem is one classified container/array declaration, independent
// of the time-analysis scopes.
type SpaceItem struct {
	Line   int              `json:"line"`
	Source string           `json:"source"`
	Class  complexity.Class `json:"class"`
}

// AnalysisResult is the full outcome of one analysis invocation. It is
// owned by that invocation alone and immutable once returned; callers
// may cache it keyed by source-buffer identity for redisplay.
type AnalysisResult struct {
	File         string           `json:"file,omitempty"`
	Loops        []LoopRecord     `json:"loops"`
	Calls        []CallRecord     `json:"calls"`
	Functions    []FunctionScope  `json:"functions"`
	SpaceItems   []SpaceItem      `json:"space_items"`
	OverallTime  complexity.Class `json:"overall_time"`
	OverallSpace complexity.Class `json:"overall_space"`
	Duration     string           `json:"analysis_duration,omitempty"`
}

func NewAnalysisResult() *AnalysisResult {
	return &AnalysisResult{
		Loops:        make([]LoopRecord, 0),
		Calls:        make([]CallRecord, 0),
		Functions:    make([]FunctionScope, 0),
		SpaceItems:   make([]SpaceItem, 0),
		OverallTime:  complexity.New(complexity.Const),
		OverallSpace: complexity.New(complexity.Const),
	}
}

// LoopCount reports the number of loop records, used by the
// notification summary alongside the two overall classes.
func (r *AnalysisResult) LoopCount() int {
	return len(r.Loops)
}

package render

import (
	"math"

	"bigocheck/internal/complexity"
	"bigocheck/internal/config"
)

// CheckResult is the outcome of comparing an overall time class
// against a problem-size/time-limit budget.
type CheckResult struct {
	EstimatedOps float64 `json:"estimated_ops"`
	BudgetOps    float64 `json:"budget_ops"`
	Exceeded     bool    `json:"exceeded"`
}

// CheckConstraints derives an operation-count estimate from the
// overall time class and flags it when the estimate exceeds
// (time_limit_ms/1000) × threshold_ops_per_sec. Only the overall class
// is consumed, never individual records.
func CheckConstraints(limits config.LimitsConfig, timeClass complexity.Class) CheckResult {
	estimated := EstimateOps(timeClass, float64(limits.ProblemSize))
	budget := float64(limits.TimeLimitMS) / 1000.0 * limits.ThresholdOpsPerSec
	return CheckResult{
		EstimatedOps: estimated,
		BudgetOps:    budget,
		Exceeded:     estimated > budget,
	}
}

// EstimateOps evaluates a class at a concrete problem size. Graph
// classes assume V ≈ E ≈ n. Exponential and factorial growth overflow
// to +Inf for realistic sizes, which reads as "always exceeds".
func EstimateOps(c complexity.Class, n float64) float64 {
	if n < 2 {
		n = 2
	}
	lg := math.Log2(n)

	switch c.Kind {
	case complexity.Const:
		return 1
	case complexity.InverseAckermann:
		return 5
	case complexity.Log:
		return lg
	case complexity.LogSquared:
		return lg * lg
	case complexity.Sqrt:
		return math.Sqrt(n)
	case complexity.Linear, complexity.StringLength:
		return n
	case complexity.Linearithmic:
		return n * lg
	case complexity.NLogLogN:
		return n * math.Log2(lg)
	case complexity.NSqrtN:
		return n * math.Sqrt(n)
	case complexity.Quadratic:
		return n * n
	case complexity.QuadraticLog:
		return n * n * lg
	case complexity.Cubic:
		return n * n * n
	case complexity.VPlusE:
		return 2 * n
	case complexity.VTimesE:
		return n * n
	case complexity.ELogV:
		return n * lg
	case complexity.Exponential:
		return math.Pow(2, n)
	case complexity.Factorial:
		lnFact, _ := math.Lgamma(n + 1)
		return math.Exp(lnFact)
	case complexity.Compound:
		return EstimateOps(*c.Lhs, n) * EstimateOps(*c.Rhs, n)
	default:
		return math.Inf(1)
	}
}

package complexity

// Kind identifies one bucket in the closed complexity lattice.
type Kind int

const (
	Const Kind = iota
	InverseAckermann
	Log
	LogSquared
	Sqrt
	Linear
	StringLength // O(m), string-length bound; same rank slot as Linear
	Linearithmic
	NLogLogN
	NSqrtN
	Quadratic
	QuadraticLog
	Cubic
	VPlusE
	VTimesE
	ELogV
	Exponential
	Factorial
	Compound // product of two classes with no closed-form reduction
)

// Class is a symbolic asymptotic complexity bucket. The zero value is Const.
// Compound classes carry their two components; all other kinds stand alone.
type Class struct {
	Kind Kind
	Lhs  *Class
	Rhs  *Class
}

func New(k Kind) Class {
	return Class{Kind: k}
}

// NewCompound builds the fallback product class rendered as O(a × b).
// Chains of three or more unmatched factors stay right-nested; there is
// no canonical flattening.
func NewCompound(a, b Class) Class {
	return Class{Kind: Compound, Lhs: &a, Rhs: &b}
}

// rank table: higher is worse. Unknown or compound classes get the
// sentinel above every known class, so dominance keeps the worst
// assumption rather than silently discarding them.
const unknownRank = 17

func (c Class) Rank() int {
	switch c.Kind {
	case Const:
		return 0
	case InverseAckermann:
		return 1
	case Log:
		return 2
	case LogSquared:
		return 3
	case Sqrt:
		return 4
	case Linear, StringLength:
		return 5
	case Linearithmic:
		return 6
	case NLogLogN:
		return 7
	case NSqrtN:
		return 8
	case Quadratic:
		return 9
	case QuadraticLog:
		return 10
	case Cubic:
		return 11
	case VPlusE:
		return 12
	case VTimesE:
		return 13
	case ELogV:
		return 14
	case Exponential:
		return 15
	case Factorial:
		return 16
	default:
		return unknownRank
	}
}

// Dominant returns the worse of a and b by rank. Ties return a, which
// also covers two unknown-ranked classes comparing equal.
func Dominant(a, b Class) Class {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// Multiply composes two classes for nested constructs. Const is the
// identity on both sides; a small closed-form table covers the common
// pairs and everything else falls back to a Compound product.
func Multiply(a, b Class) Class {
	if a.Kind == Const {
		return b
	}
	if b.Kind == Const {
		return a
	}

	switch {
	case a.Kind == Linear && b.Kind == Linear:
		return New(Quadratic)
	case (a.Kind == Linear && b.Kind == Log) || (a.Kind == Log && b.Kind == Linear):
		return New(Linearithmic)
	case (a.Kind == Linear && b.Kind == Linearithmic) || (a.Kind == Linearithmic && b.Kind == Linear):
		return New(QuadraticLog)
	case (a.Kind == Quadratic && b.Kind == Linear) || (a.Kind == Linear && b.Kind == Quadratic):
		return New(Cubic)
	case a.Kind == Log && b.Kind == Log:
		return New(LogSquared)
	case (a.Kind == Sqrt && b.Kind == Linear) || (a.Kind == Linear && b.Kind == Sqrt):
		return New(NSqrtN)
	}

	return NewCompound(a, b)
}

// expr renders the growth expression without the O() wrapper so that
// compound products compose readably.
func (c Class) expr() string {
	switch c.Kind {
	case Const:
		return "1"
	case InverseAckermann:
		return "α(n)"
	case Log:
		return "log n"
	case LogSquared:
		return "log² n"
	case Sqrt:
		return "√n"
	case Linear:
		return "n"
	case StringLength:
		return "m"
	case Linearithmic:
		return "n log n"
	case NLogLogN:
		return "n log log n"
	case NSqrtN:
		return "n√n"
	case Quadratic:
		return "n²"
	case QuadraticLog:
		return "n² log n"
	case Cubic:
		return "n³"
	case VPlusE:
		return "V+E"
	case VTimesE:
		return "V×E"
	case ELogV:
		return "E log V"
	case Exponential:
		return "2^n"
	case Factorial:
		return "n!"
	case Compound:
		return c.Lhs.expr() + " × " + c.Rhs.expr()
	default:
		return "?"
	}
}

func (c Class) String() string {
	return "O(" + c.expr() + ")"
}

// MarshalJSON renders the class as its display string, e.g. "O(n log n)".
func (c Class) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// Package circuit type definitions: op kinds, ops, and the Circuit builder.
package circuit

// Kind enumerates the closed set of primitive operations.
//
//   - OpX     — unconditional bit flip of Lines[0].
//   - OpCX    — bit flip of the last line, controlled on all preceding lines
//     (k ≥ 1 controls). The wide-AND variant is treated as an externally
//     provided primitive; executors may realize it natively or via a
//     balanced ancilla tree.
//   - OpCSwap — exchange of Lines[1] and Lines[2] iff Lines[0] is 1.
//   - OpPhase — multiply the amplitude by e^{iθ} iff Lines[0] is 1.
//   - OpRY    — rotate Lines[0] by θ about Y:
//     |0⟩ → cos(θ/2)|0⟩ + sin(θ/2)|1⟩,
//     |1⟩ → -sin(θ/2)|0⟩ + cos(θ/2)|1⟩.
type Kind uint8

const (
	// OpX is a single-line bit flip.
	OpX Kind = iota
	// OpCX is a bit flip on the last listed line controlled on the others.
	OpCX
	// OpCSwap is a controlled exchange of two lines.
	OpCSwap
	// OpPhase is a single-line diagonal phase rotation.
	OpPhase
	// OpRY is a single-line Y rotation.
	OpRY
)

// Op is one primitive operation: a kind, the ordered lines it acts on, and
// an optional real parameter (used by OpPhase and OpRY, zero otherwise).
//
// The Lines slice of an Op obtained from a Circuit is shared storage and
// must be treated as read-only.
type Op struct {
	Kind  Kind
	Lines []int
	Theta float64
}

// Inverse returns the inverse of op. OpX, OpCX and OpCSwap are self-inverse;
// OpPhase and OpRY negate their parameter. The returned op owns a fresh
// Lines slice.
func (op Op) Inverse() Op {
	inv := Op{Kind: op.Kind, Lines: append([]int(nil), op.Lines...)}
	switch op.Kind {
	case OpPhase, OpRY:
		inv.Theta = -op.Theta
	default:
		inv.Theta = op.Theta
	}

	return inv
}

// Circuit is an ordered sequence of primitive operations over a fixed number
// of lines. It is an append-only builder; Inverse and Compose never mutate
// their sub-circuit argument.
//
// Precondition (not validated, per the contract): every line index passed to
// an append helper lies in [0, Width()).
type Circuit struct {
	width int
	ops   []Op
}

// New returns an empty circuit over width lines.
// Precondition: width > 0.
func New(width int) *Circuit {
	return &Circuit{width: width}
}

// Width returns the number of lines the circuit spans.
func (c *Circuit) Width() int { return c.width }

// Len returns the number of primitive operations.
func (c *Circuit) Len() int { return len(c.ops) }

// Op returns the i-th operation in order.
func (c *Circuit) Op(i int) Op { return c.ops[i] }

// Ops returns the operation sequence in order. The slice is a fresh copy but
// each op's Lines storage is shared with the circuit; treat it as read-only.
func (c *Circuit) Ops() []Op {
	return append([]Op(nil), c.ops...)
}

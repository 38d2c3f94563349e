package circuit

// X appends a bit flip on line t.
func (c *Circuit) X(t int) {
	c.ops = append(c.ops, Op{Kind: OpX, Lines: []int{t}})
}

// CX appends a bit flip on line t controlled on every line in ctrls.
// At least one control is required.
func (c *Circuit) CX(t int, ctrls ...int) {
	lines := make([]int, 0, len(ctrls)+1)
	lines = append(lines, ctrls...)
	lines = append(lines, t)
	c.ops = append(c.ops, Op{Kind: OpCX, Lines: lines})
}

// CSwap appends an exchange of lines a and b controlled on line ctrl.
func (c *Circuit) CSwap(ctrl, a, b int) {
	c.ops = append(c.ops, Op{Kind: OpCSwap, Lines: []int{ctrl, a, b}})
}

// Phase appends a diagonal phase of angle theta on line t.
func (c *Circuit) Phase(theta float64, t int) {
	c.ops = append(c.ops, Op{Kind: OpPhase, Lines: []int{t}, Theta: theta})
}

// RY appends a Y rotation by theta on line t.
func (c *Circuit) RY(theta float64, t int) {
	c.ops = append(c.ops, Op{Kind: OpRY, Lines: []int{t}, Theta: theta})
}

// Append concatenates sub onto c with the identity line mapping: sub's line i
// is c's line i. Returns ErrSubWidth when sub spans more lines than c.
func (c *Circuit) Append(sub *Circuit) error {
	if sub.width > c.width {
		return ErrSubWidth
	}
	for _, op := range sub.ops {
		c.ops = append(c.ops, Op{
			Kind:  op.Kind,
			Lines: append([]int(nil), op.Lines...),
			Theta: op.Theta,
		})
	}

	return nil
}

// Compose embeds sub into c under an explicit remapping: sub's local line i
// acts on c's line lines[i]. Relative op order inside sub is preserved.
//
// The line list must be a bijection from sub's local index space onto a
// subset of c's lines:
//   - len(lines) == sub.Width(), else ErrLineCount
//   - every entry in [0, c.Width()), else ErrLineRange
//   - no duplicate entries, else ErrLineDuplicate
//
// On error c is left unchanged.
func (c *Circuit) Compose(sub *Circuit, lines []int) error {
	if len(lines) != sub.width {
		return ErrLineCount
	}
	seen := make(map[int]struct{}, len(lines))
	for _, ln := range lines {
		if ln < 0 || ln >= c.width {
			return ErrLineRange
		}
		if _, dup := seen[ln]; dup {
			return ErrLineDuplicate
		}
		seen[ln] = struct{}{}
	}

	for _, op := range sub.ops {
		mapped := make([]int, len(op.Lines))
		for i, ln := range op.Lines {
			mapped[i] = lines[ln]
		}
		c.ops = append(c.ops, Op{Kind: op.Kind, Lines: mapped, Theta: op.Theta})
	}

	return nil
}

// Inverse returns a new circuit that undoes c: the op sequence reversed with
// each op inverted. c is not modified.
func (c *Circuit) Inverse() *Circuit {
	inv := &Circuit{width: c.width, ops: make([]Op, 0, len(c.ops))}
	for i := len(c.ops) - 1; i >= 0; i-- {
		inv.ops = append(inv.ops, c.ops[i].Inverse())
	}

	return inv
}

// Depth returns the layered depth of the circuit: ops are packed greedily
// into layers such that no two ops in a layer touch a common line. Two ops
// sharing any line (even control-control) are counted as sequential.
//
// Complexity: O(total op arity).
func (c *Circuit) Depth() int {
	level := make([]int, c.width)
	depth := 0
	for _, op := range c.ops {
		d := 0
		for _, ln := range op.Lines {
			if level[ln] > d {
				d = level[ln]
			}
		}
		d++
		for _, ln := range op.Lines {
			level[ln] = d
		}
		if d > depth {
			depth = d
		}
	}

	return depth
}

// Count returns the number of ops of the given kind.
func (c *Circuit) Count(k Kind) int {
	n := 0
	for _, op := range c.ops {
		if op.Kind == k {
			n++
		}
	}

	return n
}

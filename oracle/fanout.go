package oracle

import (
	"math/bits"

	"github.com/katalvlaran/qprep/circuit"
)

// Fanout — logarithmic-depth broadcast of one line onto n lines.
//
// Local layout: line 0 is the control, lines 1..n are the outputs.
//
// Contract:
//
//	control=1 flips every output, control=0 leaves them unchanged — i.e. the
//	net effect is XOR-ing the control's value onto all n outputs, for
//	arbitrary incoming output values. When the outputs enter as 0 this is
//	the broadcast |c⟩|0^n⟩ → |c⟩|c^n⟩ of the data oracles; the dirty-value
//	generality is what ControlledSwap relies on.
//
// Algorithm Outline:
//  1. Build the doubling ladder L(n): for i = 1..n-1 a controlled flip from
//     output (i - 2^⌊log2 i⌋) onto output i. Applied to the unit pattern
//     "only output 0 set", L broadcasts the bit to every output, doubling
//     the covered range each layer.
//  2. Emit L⁻¹, then a controlled flip from the control onto output 0,
//     then L. Over GF(2) the whole sequence is L ∘ (add c·e₀) ∘ L⁻¹, which
//     adds c·(L e₀) = c·(1,…,1): the ladder's cascade telescopes away for
//     control=0 and covers every output for control=1.
//
// Every primitive used is self-inverse, so Fanout(n).Inverse() is again a
// valid fanout built by the same reversal rule.
//
// Complexity: exactly 2n-1 gates, depth 2⌈log2 n⌉+1.
func Fanout(n int) *circuit.Circuit {
	c := circuit.New(n + 1)
	for i := n - 1; i >= 1; i-- {
		c.CX(1+i, 1+ladderSrc(i))
	}
	c.CX(1, 0)
	for i := 1; i <= n-1; i++ {
		c.CX(1+i, 1+ladderSrc(i))
	}

	return c
}

// ladderSrc returns i with its highest set bit cleared: the ladder source
// feeding output i.
func ladderSrc(i int) int {
	return i - 1<<(bits.Len(uint(i))-1)
}

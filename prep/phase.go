package prep

import (
	"math"

	"github.com/katalvlaran/qprep/circuit"
)

// PhaseGradient returns the b-line gadget whose line i carries a phase of
// ±2π/2^(i+1) on |1⟩: applied to a register holding the digitized angle x
// (position 0 most significant) it imprints exp(±i·2π·x/2^b) on the state.
//
// The negative orientation is the one the multiplexed rotation consumes;
// the positive one imprints the terminal amplitude arguments directly.
func PhaseGradient(b int, negative bool) *circuit.Circuit {
	sign := 1.0
	if negative {
		sign = -1.0
	}

	c := circuit.New(b)
	for i := 0; i < b; i++ {
		c.Phase(sign*2*math.Pi/float64(uint64(1)<<uint(i+1)), i)
	}

	return c
}

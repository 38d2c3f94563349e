package prep

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qprep/circuit"
	"github.com/katalvlaran/qprep/oracle"
)

// synthFunc builds the level-m data oracle for a 2^m-entry angle table.
type synthFunc func(m int, table oracle.Table) *circuit.Circuit

// PrepareViaSelect compiles psi (length 2^n, assumed normalized) into a
// circuit over n+b+1 lines using the direct SELECT oracle at every level.
// Angles are digitized to b bits; the returned Layout has no scratch region.
func PrepareViaSelect(n int, psi []complex128, b int) (*circuit.Circuit, Layout, error) {
	lay := Layout{State: n, Output: b}
	synth := func(m int, table oracle.Table) *circuit.Circuit {
		return oracle.Select(m, b, table)
	}

	return build(n, psi, b, lay, synth)
}

// PrepareViaSelectSwap compiles psi with SELECT-SWAP oracles, splitting each
// level's m address bits at k = ⌈m/2⌉. The scratch region is sized for the
// widest level, b·(2^⌈n/2⌉ - 1) lines; for n == 1 it is empty and the result
// coincides with PrepareViaSelect.
func PrepareViaSelectSwap(n int, psi []complex128, b int) (*circuit.Circuit, Layout, error) {
	lay := Layout{State: n, Output: b}
	if n > 1 {
		lay.Scratch = b*(1<<uint((n+1)/2)) - b
	}
	synth := func(m int, table oracle.Table) *circuit.Circuit {
		return oracle.SelectSwap(m, b, table, (m+1)/2)
	}

	return build(n, psi, b, lay, synth)
}

// build runs the shared level-by-level driver.
//
// Level 0 is a bare RY on line 0 splitting |0⟩ against the marginal of the
// most significant bit. Each later level m loads the 2^m conditional split
// angles through the oracle, applies the multiplexed rotation to line m and
// uncomputes the oracle. The terminal pass loads the digitized amplitude
// arguments and imprints them with a positive phase gradient.
func build(n int, psi []complex128, b int, lay Layout, synth synthFunc) (*circuit.Circuit, Layout, error) {
	if n < 1 {
		return nil, Layout{}, ErrQubits
	}
	if b < 1 {
		return nil, Layout{}, ErrPrecision
	}
	if len(psi) != 1<<uint(n) {
		return nil, Layout{}, ErrDimension
	}

	c := circuit.New(lay.Width())

	pm := Probabilities(psi, n, 1)
	c.RY(2*math.Acos(math.Sqrt(clamp01(pm[0]))), 0)

	if n == 1 {
		// Two amplitudes need no oracle: imprint both arguments directly.
		c.X(0)
		c.Phase(cmplx.Phase(psi[0]), 0)
		c.X(0)
		c.Phase(cmplx.Phase(psi[1]), 0)

		return c, lay, nil
	}

	outs := make([]int, b)
	for i := range outs {
		outs[i] = lay.State + i
	}

	for m := 1; m < n; m++ {
		next := Probabilities(psi, n, m+1)
		table := make(oracle.Table, 1<<uint(m))
		for w := range table {
			if pm[w] == 0 {
				continue // dead branch, any angle works; load nothing
			}
			theta := math.Acos(math.Sqrt(clamp01(next[2*w] / pm[w])))
			table[w] = AngleBits(theta, b)
		}

		o := synth(m, table)
		lines := oracleLines(m, o.Width(), lay)
		embed(c, o, lines)
		multiplexRotation(c, m, b, outs)
		embed(c, o.Inverse(), lines)

		pm = next
	}

	table := make(oracle.Table, len(psi))
	for x, a := range psi {
		if a == 0 {
			continue
		}
		table[x] = AngleBits(cmplx.Phase(a), b)
	}
	o := synth(n, table)
	lines := oracleLines(n, o.Width(), lay)
	embed(c, o, lines)
	embed(c, PhaseGradient(b, false), outs)
	embed(c, o.Inverse(), lines)

	return c, lay, nil
}

// multiplexRotation turns the digitized angle sitting on outs into a Y
// rotation of line m by twice that angle, via the sandwich
// RY(2φ) = S · H · diag(e^{-iφ}, e^{+iφ}) · H · S† with H built from RY and
// X. The fanout copies line m's value onto outs so the negative gradient
// sees x or its complement; the lone Phase(-2π/2^b) on line m compensates
// the complement's off-by-one.
func multiplexRotation(c *circuit.Circuit, m, b int, outs []int) {
	const half = math.Pi / 2

	c.Phase(-half, m)
	c.RY(half, m)
	c.X(m)

	fan := oracle.Fanout(b)
	fanLines := append([]int{m}, outs...)
	embed(c, fan, fanLines)
	embed(c, PhaseGradient(b, true), outs)
	c.Phase(-2*math.Pi/float64(uint64(1)<<uint(b)), m)
	embed(c, fan, fanLines)

	c.RY(half, m)
	c.X(m)
	c.Phase(half, m)
}

// oracleLines maps a level-m oracle's local lines (addr, out block, flag)
// onto the physical layout: address bits to the first m state lines, the out
// block onto output then scratch, flag to the shared flag line. w is the
// oracle's own width.
func oracleLines(m, w int, lay Layout) []int {
	lines := make([]int, 0, w)
	for i := 0; i < m; i++ {
		lines = append(lines, i)
	}
	for i := 0; i < w-m-1; i++ {
		lines = append(lines, lay.State+i)
	}

	return append(lines, lay.Flag())
}

// embed panics on a wiring bug; line lists here are derived, never external.
func embed(dst, sub *circuit.Circuit, lines []int) {
	if err := dst.Compose(sub, lines); err != nil {
		panic(err)
	}
}

func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}

	return v
}

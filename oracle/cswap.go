package oracle

import "github.com/katalvlaran/qprep/circuit"

// ControlledSwap — exchange of two n-line blocks under one control line, in
// logarithmic depth and with no ancilla beyond the blocks themselves.
//
// Local layout: line 0 is the control, lines 1..n are block A, lines
// n+1..2n are block B.
//
// Contract:
//
//	control=1 exchanges A and B exactly; control=0 leaves both unchanged.
//	Either way every line of A and B finishes at its correct value — the
//	lines of A that are transiently borrowed as scratch are restored
//	regardless of their (unknown) values.
//
// Algorithm Outline:
//
//	n single-control exchanges sharing one control line would serialize on
//	it. Instead, give each pair its own control: borrow the idle odd lines
//	of block A as dirty scratch.
//	 1. If n is odd, exchange the final pair directly under the control.
//	 2. For the remaining even count, in four stages:
//	    (a) exchange each even position A[i]↔B[i] controlled on the
//	        adjacent odd line A[i+1] — a garbage exchange;
//	    (b) Fanout the true control onto all odd lines (XOR);
//	    (c) repeat the pairwise exchanges, now controlled on odd⊕c;
//	    (d) Fanout again, restoring the odd lines.
//	    Per pair the two exchanges fire d and d⊕c times: together exactly
//	    c times. Compute, use as control, uncompute — with scratch whose
//	    incoming value is never known.
//	 3. Repeat the scheme with even/odd roles swapped to cover the odd
//	    positions (the even lines are dirty by then, which is fine).
//
// Complexity: O(n) gates, O(log n) depth (two fanouts per half-scheme,
// pairwise exchanges all disjoint).
func ControlledSwap(n int) *circuit.Circuit {
	c := circuit.New(2*n + 1)
	aLine := func(i int) int { return 1 + i }
	bLine := func(i int) int { return 1 + n + i }

	m := n
	if n%2 == 1 {
		m = n - 1
		c.CSwap(0, aLine(n-1), bLine(n-1))
	}
	if m == 0 {
		return c
	}

	for _, dataOff := range [2]int{0, 1} {
		scratchOff := 1 - dataOff
		scratch := make([]int, 0, m/2)
		for i := scratchOff; i < m; i += 2 {
			scratch = append(scratch, aLine(i))
		}
		fan := Fanout(len(scratch))
		fanLines := append([]int{0}, scratch...)

		pairSwaps := func() {
			for i := dataOff; i < m; i += 2 {
				ctrl := i + 1
				if dataOff == 1 {
					ctrl = i - 1
				}
				c.CSwap(aLine(ctrl), aLine(i), bLine(i))
			}
		}

		pairSwaps()
		embed(c, fan, fanLines)
		pairSwaps()
		embed(c, fan, fanLines)
	}

	return c
}

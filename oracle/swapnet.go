package oracle

import "github.com/katalvlaran/qprep/circuit"

// SwapNetwork — binary routing tree that moves a selected slot into slot 0.
//
// Local layout: lines 0..k-1 selector (line 0 most significant), followed by
// 2^k contiguous b-line slots.
//
// Contract:
//
//	With the scratch block pre-loaded across all slots (the SELECT half's
//	job), the content of slot v — v the selector value — ends in slot 0.
//
// Algorithm Outline: driven top-down by successive selector lines. Stage t
// exchanges slot s with slot s+stride for every s < stride, stride =
// 2^(k-1-t), controlled on selector line t. Each stage halves the region a
// candidate slot can live in, from 2^k slots down to one. Slot exchanges
// are ControlledSwap instances, so the whole network keeps logarithmic
// depth per stage despite the shared selector line.
func SwapNetwork(k, b int) *circuit.Circuit {
	slots := 1 << uint(k)
	c := circuit.New(k + b*slots)
	slotLines := func(s int) []int {
		lines := make([]int, b)
		for j := 0; j < b; j++ {
			lines[j] = k + s*b + j
		}

		return lines
	}

	cs := ControlledSwap(b)
	for t := 0; t < k; t++ {
		stride := 1 << uint(k-1-t)
		for s := 0; s < stride; s++ {
			lines := make([]int, 0, 2*b+1)
			lines = append(lines, t)
			lines = append(lines, slotLines(s)...)
			lines = append(lines, slotLines(s+stride)...)
			embed(c, cs, lines)
		}
	}

	return c
}

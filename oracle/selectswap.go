package oracle

import "github.com/katalvlaran/qprep/circuit"

// SelectSwap — the ancilla-for-gate-count tradeoff data oracle.
//
// Local layout for n ≥ 2: lines 0..n-1 address (line 0 most significant),
// lines n..n+b·2^k-1 the widened output block (slot 0, the first b lines,
// carries the result; the remaining slots are swap scratch), last line the
// borrowed flag. For n == 1 the construction delegates to Select — a single
// row has no suffix to select over — and the layout is Select's n+b+1.
//
// Contract: externally identical to Select(n, b, table) on the first b
// output lines, with all other scratch restored to 0 by the inverse.
//
// Algorithm Outline:
//  1. Split the address into a high (n-k)-line prefix and low k-line
//     suffix, 1 ≤ k ≤ n-1.
//  2. SELECT over the prefix alone, loading a widened b·2^k-bit alphabet:
//     for each prefix value, the b-bit entries of its 2^k suffix rows
//     concatenated, row j's bits at offset b·j. One decode now loads every
//     suffix row at once.
//  3. SwapNetwork driven by the suffix routes the one real row into slot 0.
//
// SELECT's cost scales with the decoded address bits (n-k), the network's
// with the scratch width (b·2^k): k tunes the classic gate-count versus
// ancilla-space tradeoff.
func SelectSwap(n, b int, table Table, k int) *circuit.Circuit {
	if n == 1 {
		return Select(n, b, table)
	}

	prefix := n - k
	slots := 1 << uint(k)
	wide := make(Table, 1<<uint(prefix))
	for p := range wide {
		var entry []int
		for j := 0; j < slots; j++ {
			for _, pos := range table[p*slots+j] {
				entry = append(entry, j*b+pos)
			}
		}
		wide[p] = entry
	}

	c := circuit.New(n + b*slots + 1)
	flag := n + b*slots

	lines := make([]int, 0, prefix+b*slots+1)
	for i := 0; i < prefix; i++ {
		lines = append(lines, i)
	}
	for j := 0; j < b*slots; j++ {
		lines = append(lines, n+j)
	}
	lines = append(lines, flag)
	embed(c, Select(prefix, b*slots, wide), lines)

	lines = lines[:0]
	for t := 0; t < k; t++ {
		lines = append(lines, prefix+t)
	}
	for j := 0; j < b*slots; j++ {
		lines = append(lines, n+j)
	}
	embed(c, SwapNetwork(k, b), lines)

	return c
}

package oracle

import "github.com/katalvlaran/qprep/circuit"

// Table is a classical lookup table: Table[x] lists the output bit positions
// the oracle flips for address x, each in [0, b). Position 0 is the most
// significant bit of the loaded word. A nil or empty entry is a no-op
// address.
//
// Invariants (caller-guaranteed): len(Table) == 2^n and every listed
// position is < b.
type Table [][]int

// embed composes sub onto dst under lines. Callers construct line lists that
// satisfy the bijection contract by construction, so a failure here is a
// synthesis bug, not a runtime condition.
func embed(dst, sub *circuit.Circuit, lines []int) {
	if err := dst.Compose(sub, lines); err != nil {
		panic(err)
	}
}

// Package oracle synthesizes the data-loading building blocks of the state
// preparation compiler: logarithmic-depth fanout, controlled register
// exchange over borrowed dirty scratch, and the SELECT / SELECT-SWAP data
// oracles (QROMs).
//
// 🚀 What is a data oracle?
//
//	A reversible circuit that, addressed by n lines, XORs a classical lookup
//	table's entry onto a block of output lines:
//
//	  |x⟩|y⟩ → |x⟩|y ⊕ f(x)⟩
//
//	Two constructions with opposite cost profiles are provided:
//	  • Select      — direct address decoding; gate count linear in the
//	    number of nonempty table entries, b output lines, no extra scratch.
//	  • SelectSwap  — carves k address bits off into a swap network over
//	    b·2^k scratch lines, shrinking the decoded alphabet at the price of
//	    ancilla space. k is the tuning knob of the tradeoff.
//
// ✨ Key features:
//   - Fanout(n): broadcast one control line onto n lines in O(log n) depth
//     and exactly 2n-1 gates, correct for arbitrary (dirty) output values.
//   - ControlledSwap(n): exchange two n-line blocks under one control in
//     O(log n) depth with no extra ancilla, borrowing half of the first
//     block's own lines as dirty scratch.
//   - Every synthesizer is a pure function of its parameters and returns a
//     standalone circuit over a documented local line layout, ready for
//     circuit.Compose embedding and circuit.Inverse uncomputation.
//
// Preconditions such as n ≥ 1, b ≥ 1, table length 2^n and entry positions
// < b are the caller's responsibility and are not validated.
//
// ⚙️ Usage:
//
//	table := oracle.Table{{0, 2}, nil, {1}, {0, 1}}
//	sel := oracle.Select(2, 3, table) // lines: 0..1 addr, 2..4 out, 5 flag
//	top := circuit.New(10)
//	_ = top.Compose(sel, []int{4, 5, 0, 1, 2, 9})
//	_ = top.Compose(sel.Inverse(), []int{4, 5, 0, 1, 2, 9}) // uncompute
//
// See prep for the drivers that orchestrate these oracles level by level.
package oracle

package oracle

import "github.com/katalvlaran/qprep/circuit"

// Select — the direct address-decoding data oracle.
//
// Local layout: lines 0..n-1 address (line 0 most significant), lines
// n..n+b-1 output, line n+b the borrowed flag.
//
// Contract:
//
//	|x⟩|0^b⟩|0⟩ → |x⟩|f(x)⟩|0⟩ where f(x) has 1-bits exactly at table[x].
//	The flag enters 0 and exits 0 around every address block.
//
// Algorithm Outline, per address x with a nonempty entry (empty entries are
// skipped entirely):
//  1. Flip the address lines whose bit of x is 0, so "all lines 1" tests x.
//  2. n-input AND of the address onto the flag (a single wide controlled
//     flip; see circuit.OpCX for its externally-provided-primitive status).
//  3. Fanout from the flag onto exactly the output lines in table[x].
//  4. Undo the AND (flag back to 0) and undo the address flips.
//
// Gate count is O(n + |table[x]|) per nonempty entry. The circuit is
// self-inverse in action (it XORs f(x) either way), but callers uncompute
// via an explicit Inverse() rather than relying on that; see the package
// tests for the verification.
func Select(n, b int, table Table) *circuit.Circuit {
	c := circuit.New(n + b + 1)
	flag := n + b
	addr := make([]int, n)
	for i := range addr {
		addr[i] = i
	}

	for x, entry := range table {
		if len(entry) == 0 {
			continue
		}

		addrFlips := func() {
			for i := 0; i < n; i++ {
				if x>>uint(n-1-i)&1 == 0 {
					c.X(i)
				}
			}
		}

		addrFlips()
		c.CX(flag, addr...)
		targets := make([]int, 0, len(entry)+1)
		targets = append(targets, flag)
		for _, pos := range entry {
			targets = append(targets, n+pos)
		}
		embed(c, Fanout(len(entry)), targets)
		c.CX(flag, addr...)
		addrFlips()
	}

	return c
}

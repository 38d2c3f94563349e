// Package prep compiles a normalized complex amplitude vector into a
// reversible circuit that prepares it as a quantum state, to an accuracy
// set by the angle precision parameter b.
//
// 🚀 What is state preparation?
//
//	Given ψ ∈ ℂ^(2^n) with ‖ψ‖ = 1, build a circuit C over n state lines
//	(plus working scratch) with
//
//	  C |0…0⟩ ≈ Σ_x ψ_x |x⟩ ⊗ |0…0⟩
//
//	The compiler walks the binary tree of prefix probabilities: at level m
//	the first m lines already hold the marginal distribution over m-bit
//	prefixes, and a multiplexed Y-rotation conditioned on those lines splits
//	each prefix into its two children. Rotation angles are digitized to b
//	bits, loaded by a data oracle from package oracle, consumed by a phase
//	gradient gadget, and uncomputed. A terminal pass imprints the amplitude
//	arguments the same way.
//
// ✨ Key features:
//   - PrepareViaSelect: minimal width, n+b+1 lines total.
//   - PrepareViaSelectSwap: trades b·(2^⌈m/2⌉-1) extra scratch lines for
//     an asymptotically smaller gate count at each level.
//   - Both drivers emit identical states for the same ψ and b; the output
//     differs only in circuit shape and width.
//   - Layout reports where the state, output, scratch and flag lines sit in
//     the physical circuit, so callers can project out the prepared block.
//   - Angle digitization error vanishes as 2^-b: pick b to taste.
//
// ⚙️ Usage:
//
//	psi := []complex128{0.6, 0.8i}
//	c, lay, err := prep.PrepareViaSelect(1, psi, 8)
//	if err != nil { ... }
//	st := sim.Run(c)
//	vec, _ := st.Vector(lay.State) // ≈ psi
//
// Complexity: PrepareViaSelect emits O(2^n · b) gates over n+b+1 lines;
// PrepareViaSelectSwap emits O(2^(n/2) · b) gates per level over up to
// n + b·2^⌈n/2⌉ + 1 lines.
package prep

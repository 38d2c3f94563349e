// Package sim executes finished circuits and reports final amplitudes: the
// external collaborator of the compiler, consumed by the test suite.
//
// 🚀 What is sim?
//
//	A sparse statevector executor. The state is a map from basis
//	configurations (one uint64 key per configuration, line 0 in the most
//	significant used bit) to complex amplitudes. Four of the five primitive
//	kinds permute or phase basis configurations and touch each amplitude
//	once; only OpRY branches, and spent branches are pruned, so memory
//	tracks the true support of the state instead of 2^width.
//
// ✨ Key features:
//   - Run / RunBasis: execute from the all-zero or an arbitrary basis
//     configuration (the latter is how oracle contracts are tested address
//     by address).
//   - State.Vector: project the final state onto the first n lines,
//     verifying every remaining line is restored to zero — the
//     borrow/uncompute invariant as a single call.
//
// Precondition: circuit width ≤ 64 (keys are uint64).
//
// ⚙️ Usage:
//
//	st := sim.Run(c)
//	vec, err := st.Vector(n) // 2^n amplitudes of the state lines
//
// Complexity: O(ops · support) time, O(support) memory.
package sim

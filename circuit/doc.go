// Package circuit defines the intermediate representation for reversible
// circuits: an ordered sequence of primitive operations over integer-indexed
// binary lines, with composition under an explicit line remapping and
// reversal-with-inversion.
//
// 🚀 What is the circuit IR?
//
//	A Circuit is an append-only ordered op sequence over lines 0..Width()-1.
//	The op alphabet is closed and small:
//	  • OpX     — bit flip on one line
//	  • OpCX    — bit flip controlled on k ≥ 1 lines (target is last)
//	  • OpCSwap — exchange of two lines under one control
//	  • OpPhase — diagonal phase diag(1, e^{iθ}) on one line
//	  • OpRY    — single-line Y rotation by θ
//
// ✨ Key features:
//   - Compose embeds a sub-circuit under an explicit line list: local line i
//     of the sub-circuit maps to lines[i] of the receiver. The list must be a
//     bijection onto its image (checked; see errors.go).
//   - Inverse returns the reversed sequence with each op inverted. Every
//     primitive is self-inverse or carries a negated parameter, so inversion
//     is a pure structural transform.
//   - Depth/Len/Count expose layered depth and gate accounting so asymptotic
//     claims about synthesized circuits are testable.
//
// Relative op order is semantic: operations do not generally commute and are
// never reordered by this package.
//
// ⚙️ Usage:
//
//	c := circuit.New(3)
//	c.X(0)
//	c.CX(2, 0, 1) // flip line 2 iff lines 0 and 1 are both 1
//	inv := c.Inverse()
//
// Complexity: all transforms are linear in the number of ops.
package circuit

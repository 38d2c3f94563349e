// Package qprep compiles a classical description of a normalized complex
// vector into an explicit reversible circuit that prepares it as amplitudes
// over 2^n basis configurations, using low-depth data-oracle constructions.
//
// 🚀 What is qprep?
//
//	A deterministic, pure-Go compiler from (target vector, precision) to an
//	ordered gate sequence, built around:
//		• Circuit IR: append, compose-with-line-list, reverse-with-inversion
//		• Fanout: O(log n)-depth broadcast of one line onto n lines
//		• Controlled exchange: register swap via borrowed dirty scratch
//		• SELECT: direct address-decoding data oracle (QROM)
//		• SELECT-SWAP: the ancilla-for-gate-count tradeoff oracle
//		• Two state-preparation drivers with strict borrow/uncompute discipline
//
// ✨ Why choose qprep?
//
//   - Fully deterministic – synthesis is a pure function of its inputs
//   - Verified invariants – depth, gate counts and scratch restoration are
//     tested facts, not comments
//   - Pure Go – no cgo, no hidden deps
//   - Small closed IR – five primitive kinds, four line roles, no dispatch
//
// Under the hood, everything is organized under four subpackages:
//
//	circuit/ — primitive ops, composition under explicit remapping, inversion
//	oracle/  — Fanout, ControlledSwap, Select, SwapNetwork, SelectSwap
//	prep/    — probabilities, angle digitization, phase gadget, both drivers
//	sim/     — sparse statevector executor (consumed by the test suite)
//
// Quick sketch of the driver's per-level loop:
//
//	preprocess → oracle (SELECT or SELECT-SWAP) → multiplexed rotation
//	           → oracle inverse (uncompute) → next line
//
// Dive into DESIGN.md for the construction notes and the per-package docs
// for contracts, complexity and edge cases.
//
//	go get github.com/katalvlaran/qprep
package qprep

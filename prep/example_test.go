package prep_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qprep/prep"
)

// ExamplePrepareViaSelect compiles the single-qubit state (|0⟩ + i|1⟩)/√2.
// With one qubit no oracle is needed: the compiler emits one rotation and
// four direct phase gates.
func ExamplePrepareViaSelect() {
	psi := []complex128{complex(1/math.Sqrt2, 0), complex(0, 1/math.Sqrt2)}

	c, lay, err := prep.PrepareViaSelect(1, psi, 5)
	if err != nil {
		fmt.Println("prepare:", err)
		return
	}

	fmt.Println("gates:", c.Len())
	fmt.Println("lines:", lay.Width())
	fmt.Println("flag:", lay.Flag())
	// Output:
	// gates: 5
	// lines: 7
	// flag: 6
}

// ExampleLayout_Physical resolves region-relative lines of a SELECT-SWAP
// layout to physical indices.
func ExampleLayout_Physical() {
	lay := prep.Layout{State: 3, Output: 4, Scratch: 4}

	fmt.Println(lay.Physical(prep.Line{Block: prep.BlockState, Index: 2}))
	fmt.Println(lay.Physical(prep.Line{Block: prep.BlockOutput, Index: 0}))
	fmt.Println(lay.Physical(prep.Line{Block: prep.BlockScratch, Index: 3}))
	fmt.Println(lay.Physical(prep.Line{Block: prep.BlockFlag}))
	// Output:
	// 2
	// 3
	// 10
	// 11
}

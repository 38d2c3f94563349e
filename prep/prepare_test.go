package prep_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qprep/circuit"
	"github.com/katalvlaran/qprep/prep"
	"github.com/katalvlaran/qprep/sim"
)

// prepared executes a compiled circuit from |0…0⟩ and projects out the state
// block, failing the test if any scratch line carries residual amplitude.
func prepared(t *testing.T, c *circuit.Circuit, lay prep.Layout) []complex128 {
	t.Helper()
	st := sim.Run(c)
	vec, err := st.Vector(lay.State)
	require.NoError(t, err, "scratch must return to zero")

	return vec
}

func l2Distance(a, b []complex128) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += real(d)*real(d) + imag(d)*imag(d)
	}

	return math.Sqrt(sum)
}

func TestPrepareViaSelect_ConvergesWithPrecision(t *testing.T) {
	const n = 3
	psi := rampState(n)

	cCoarse, lay, err := prep.PrepareViaSelect(n, psi, 5)
	require.NoError(t, err)
	assert.Equal(t, n+5+1, lay.Width())
	errCoarse := l2Distance(prepared(t, cCoarse, lay), psi)
	assert.Less(t, errCoarse, 0.3, "5-bit angles land in the right basin")

	cFine, lay, err := prep.PrepareViaSelect(n, psi, 15)
	require.NoError(t, err)
	errFine := l2Distance(prepared(t, cFine, lay), psi)
	assert.Less(t, errFine, 5e-3, "15-bit angles are near exact")
	assert.Less(t, errFine, errCoarse, "more angle bits, less error")
}

func TestPrepare_VariantsAgree(t *testing.T) {
	const n, b = 3, 5
	psi := rampState(n)

	cSel, laySel, err := prep.PrepareViaSelect(n, psi, b)
	require.NoError(t, err)
	cSwap, laySwap, err := prep.PrepareViaSelectSwap(n, psi, b)
	require.NoError(t, err)

	assert.Greater(t, laySwap.Scratch, 0)
	assert.Equal(t, 0, laySel.Scratch)

	vSel := prepared(t, cSel, laySel)
	vSwap := prepared(t, cSwap, laySwap)
	assert.Less(t, l2Distance(vSel, vSwap), 1e-9,
		"both oracles load identical digitized angles")
}

func TestPrepare_ZeroAmplitudeBranches(t *testing.T) {
	psi := []complex128{0, 0, 0, 0, 1, 1i, -1, 2}
	var norm float64
	for _, a := range psi {
		norm += real(a)*real(a) + imag(a)*imag(a)
	}
	for x := range psi {
		psi[x] /= complex(math.Sqrt(norm), 0)
	}

	cSel, lay, err := prep.PrepareViaSelect(3, psi, 12)
	require.NoError(t, err)
	assert.Less(t, l2Distance(prepared(t, cSel, lay), psi), 0.01)

	cSwap, lay, err := prep.PrepareViaSelectSwap(3, psi, 12)
	require.NoError(t, err)
	assert.Less(t, l2Distance(prepared(t, cSwap, lay), psi), 0.01)
}

func TestPrepare_SingleQubit(t *testing.T) {
	psi := []complex128{complex(1/math.Sqrt2, 0), complex(0, 1/math.Sqrt2)}

	c, lay, err := prep.PrepareViaSelect(1, psi, 5)
	require.NoError(t, err)

	// One rotation plus direct argument imprinting, no oracle machinery.
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, 1, c.Count(circuit.OpRY))
	assert.Equal(t, 0, c.Count(circuit.OpCX))
	assert.Equal(t, 0, c.Count(circuit.OpCSwap))
	assert.Equal(t, 1+5+1, lay.Width())

	vec := prepared(t, c, lay)
	for x := range psi {
		assert.InDelta(t, real(psi[x]), real(vec[x]), 1e-12, "re x=%d", x)
		assert.InDelta(t, imag(psi[x]), imag(vec[x]), 1e-12, "im x=%d", x)
	}
}

func TestPrepare_SingleQubitSwapVariantCollapses(t *testing.T) {
	psi := []complex128{complex(0.6, 0), complex(0, 0.8)}

	c, lay, err := prep.PrepareViaSelectSwap(1, psi, 6)
	require.NoError(t, err)
	assert.Equal(t, 0, lay.Scratch, "a single row leaves nothing to select over")
	assert.Equal(t, 1+6+1, c.Width())
}

func TestPrepare_TwoQubitExact(t *testing.T) {
	psi := []complex128{0.5, -0.5i, 0.5i, -0.5}

	for name, drv := range map[string]func(int, []complex128, int) (*circuit.Circuit, prep.Layout, error){
		"select":     prep.PrepareViaSelect,
		"selectswap": prep.PrepareViaSelectSwap,
	} {
		c, lay, err := drv(2, psi, 14)
		require.NoError(t, err, name)
		assert.Less(t, l2Distance(prepared(t, c, lay), psi), 1e-3, name)
	}
}

func TestPrepare_Validation(t *testing.T) {
	psi := []complex128{1, 0}

	_, _, err := prep.PrepareViaSelect(0, psi, 5)
	require.ErrorIs(t, err, prep.ErrQubits)

	_, _, err = prep.PrepareViaSelect(2, psi, 5)
	require.ErrorIs(t, err, prep.ErrDimension)

	_, _, err = prep.PrepareViaSelectSwap(1, psi, 0)
	require.ErrorIs(t, err, prep.ErrPrecision)
}

func TestLayout_Physical(t *testing.T) {
	lay := prep.Layout{State: 3, Output: 4, Scratch: 2}

	assert.Equal(t, 10, lay.Width())
	assert.Equal(t, 9, lay.Flag())
	assert.Equal(t, 1, lay.Physical(prep.Line{Block: prep.BlockState, Index: 1}))
	assert.Equal(t, 3, lay.Physical(prep.Line{Block: prep.BlockOutput, Index: 0}))
	assert.Equal(t, 8, lay.Physical(prep.Line{Block: prep.BlockScratch, Index: 1}))
	assert.Equal(t, 9, lay.Physical(prep.Line{Block: prep.BlockFlag}))
}

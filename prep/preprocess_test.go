package prep_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/qprep/prep"
)

// rampState builds a deterministic normalized 2^n vector with nontrivial
// magnitudes and arguments at every index.
func rampState(n int) []complex128 {
	psi := make([]complex128, 1<<uint(n))
	var norm float64
	for x := range psi {
		fx := float64(x)
		psi[x] = complex(math.Cos(1.3*fx+0.4), math.Sin(0.7*fx-1.1)) * complex(1+0.25*fx, 0)
		norm += real(psi[x])*real(psi[x]) + imag(psi[x])*imag(psi[x])
	}
	norm = math.Sqrt(norm)
	for x := range psi {
		psi[x] /= complex(norm, 0)
	}

	return psi
}

func TestProbabilities_Marginals(t *testing.T) {
	const n = 3
	psi := rampState(n)

	for m := 1; m <= n; m++ {
		p := prep.Probabilities(psi, n, m)
		require.Len(t, p, 1<<uint(m), "m=%d", m)
		for w, v := range p {
			assert.GreaterOrEqual(t, v, 0.0, "m=%d w=%d", m, w)
		}
		assert.InDelta(t, 1, floats.Sum(p), 1e-12, "normalized input, m=%d", m)
	}

	// At full depth the marginal is |psi|^2 itself.
	p := prep.Probabilities(psi, n, n)
	for x, a := range psi {
		assert.InDelta(t, real(a)*real(a)+imag(a)*imag(a), p[x], 1e-12, "x=%d", x)
	}
}

func TestProbabilities_ParentIsChildSum(t *testing.T) {
	const n = 4
	psi := rampState(n)

	for m := 1; m < n; m++ {
		parent := prep.Probabilities(psi, n, m)
		child := prep.Probabilities(psi, n, m+1)
		for w := range parent {
			assert.InDelta(t, parent[w], child[2*w]+child[2*w+1], 1e-12, "m=%d w=%d", m, w)
		}
	}
}

func TestAngleBits_RoundTrip(t *testing.T) {
	angles := []float64{0, 0.1, 1.5, math.Pi, -3.0, -0.001, 2*math.Pi - 1e-9}

	for _, b := range []int{5, 15} {
		step := 2 * math.Pi / float64(uint64(1)<<uint(b))
		for _, theta := range angles {
			pos := prep.AngleBits(theta, b)
			var x uint64
			for _, p := range pos {
				require.Less(t, p, b)
				x |= 1 << uint(b-1-p)
			}
			shifted := theta
			if shifted < 0 {
				shifted += 2 * math.Pi
			}
			assert.InDelta(t, shifted, float64(x)*step, step+1e-12, "theta=%v b=%d", theta, b)
		}
	}
}

func TestAngleBits_FullCircleWraps(t *testing.T) {
	assert.Empty(t, prep.AngleBits(0, 8))
	// cmplx.Phase of a positive real is exactly zero.
	assert.Empty(t, prep.AngleBits(cmplx.Phase(3+0i), 8))
}

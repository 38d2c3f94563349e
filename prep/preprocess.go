package prep

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Probabilities returns the marginal distribution of the m most significant
// address bits of |ψ|²: entry w sums the squared magnitudes of the 2^(n-m)
// amplitudes whose index starts with the m-bit prefix w.
//
// m == n yields |ψ_x|² itself; m == 1 the split realized by the very first
// rotation. The result sums to 1 whenever ψ is normalized.
func Probabilities(psi []complex128, n, m int) []float64 {
	sq := make([]float64, len(psi))
	for i, a := range psi {
		sq[i] = real(a)*real(a) + imag(a)*imag(a)
	}

	block := 1 << uint(n-m)
	p := make([]float64, 1<<uint(m))
	for w := range p {
		p[w] = floats.Sum(sq[w*block : (w+1)*block])
	}

	return p
}

// AngleBits digitizes an angle to b bits: theta (shifted into [0, 2π) first)
// is quantized to x = ⌊theta/2π · 2^b⌋ and returned as the positions of the
// set bits of x, position 0 the most significant. The quantization error is
// below 2π/2^b.
func AngleBits(theta float64, b int) []int {
	if theta < 0 {
		theta += 2 * math.Pi
	}
	x := uint64(math.Floor(theta/(2*math.Pi)*float64(uint64(1)<<uint(b)))) % (1 << uint(b))

	var pos []int
	for i := 0; i < b; i++ {
		if x>>uint(b-1-i)&1 == 1 {
			pos = append(pos, i)
		}
	}

	return pos
}

package sim

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qprep/circuit"
)

// ErrDirtyLines indicates a Vector projection over a state that still holds
// non-negligible amplitude on lines outside the projected block.
var ErrDirtyLines = errors.New("sim: amplitude on lines outside the projected block")

const (
	// pruneEps drops numerically dead branches after a rotation merge.
	pruneEps = 1e-14
	// dirtyEps is the residual tolerated on unprojected lines by Vector.
	dirtyEps = 1e-9
)

// State is a sparse statevector over the lines of one circuit. Keys index
// basis configurations with line 0 in the most significant used bit.
type State struct {
	width int
	amps  map[uint64]complex128
}

// Run executes c from the all-zero configuration.
func Run(c *circuit.Circuit) *State {
	return RunBasis(c, 0)
}

// RunBasis executes c from the given basis configuration.
func RunBasis(c *circuit.Circuit, basis uint64) *State {
	s := &State{width: c.Width(), amps: map[uint64]complex128{basis: 1}}
	for _, op := range c.Ops() {
		s.apply(op)
	}

	return s
}

// Width returns the number of lines of the executed circuit.
func (s *State) Width() int { return s.width }

// Amplitude returns the amplitude of one basis configuration.
func (s *State) Amplitude(basis uint64) complex128 { return s.amps[basis] }

// Support returns the number of basis configurations carrying amplitude.
func (s *State) Support() int { return len(s.amps) }

// Each calls f for every basis configuration carrying amplitude, in
// unspecified order.
func (s *State) Each(f func(basis uint64, amp complex128)) {
	for key, v := range s.amps {
		f(key, v)
	}
}

// Vector projects the state onto the first n lines, returning its 2^n
// amplitudes. Every line outside the block must have been restored to zero;
// amplitude above dirtyEps on any other configuration yields ErrDirtyLines.
func (s *State) Vector(n int) ([]complex128, error) {
	shift := uint(s.width - n)
	low := uint64(1)<<shift - 1
	out := make([]complex128, uint64(1)<<uint(n))
	for key, v := range s.amps {
		if key&low != 0 {
			if cmplx.Abs(v) > dirtyEps {
				return nil, ErrDirtyLines
			}

			continue
		}
		out[key>>shift] = v
	}

	return out, nil
}

func (s *State) mask(line int) uint64 {
	return 1 << uint(s.width-1-line)
}

func (s *State) apply(op circuit.Op) {
	switch op.Kind {
	case circuit.OpX:
		m := s.mask(op.Lines[0])
		next := make(map[uint64]complex128, len(s.amps))
		for key, v := range s.amps {
			next[key^m] = v
		}
		s.amps = next

	case circuit.OpCX:
		t := s.mask(op.Lines[len(op.Lines)-1])
		var ctrl uint64
		for _, ln := range op.Lines[:len(op.Lines)-1] {
			ctrl |= s.mask(ln)
		}
		next := make(map[uint64]complex128, len(s.amps))
		for key, v := range s.amps {
			if key&ctrl == ctrl {
				key ^= t
			}
			next[key] = v
		}
		s.amps = next

	case circuit.OpCSwap:
		cm := s.mask(op.Lines[0])
		am := s.mask(op.Lines[1])
		bm := s.mask(op.Lines[2])
		next := make(map[uint64]complex128, len(s.amps))
		for key, v := range s.amps {
			if key&cm != 0 && (key&am == 0) != (key&bm == 0) {
				key ^= am | bm
			}
			next[key] = v
		}
		s.amps = next

	case circuit.OpPhase:
		m := s.mask(op.Lines[0])
		ph := cmplx.Rect(1, op.Theta)
		for key, v := range s.amps {
			if key&m != 0 {
				s.amps[key] = v * ph
			}
		}

	case circuit.OpRY:
		m := s.mask(op.Lines[0])
		cos := complex(math.Cos(op.Theta/2), 0)
		sin := complex(math.Sin(op.Theta/2), 0)
		next := make(map[uint64]complex128, 2*len(s.amps))
		for key, v := range s.amps {
			if key&m == 0 {
				next[key] += cos * v
				next[key^m] += sin * v
			} else {
				next[key^m] -= sin * v
				next[key] += cos * v
			}
		}
		for key, v := range next {
			if cmplx.Abs(v) < pruneEps {
				delete(next, key)
			}
		}
		s.amps = next
	}
}

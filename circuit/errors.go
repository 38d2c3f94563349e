package circuit

import "errors"

var (
	// ErrLineCount indicates a Compose line list whose length differs from
	// the sub-circuit's width.
	ErrLineCount = errors.New("circuit: line list length must equal sub-circuit width")
	// ErrLineRange indicates a Compose line list entry outside the receiver.
	ErrLineRange = errors.New("circuit: line index out of range")
	// ErrLineDuplicate indicates a Compose line list that is not injective.
	ErrLineDuplicate = errors.New("circuit: line list must map distinct locals to distinct lines")
	// ErrSubWidth indicates an Append of a sub-circuit wider than the receiver.
	ErrSubWidth = errors.New("circuit: sub-circuit wider than receiver")
)

package prep

// Block names one of the four contiguous line regions of a prepared
// circuit's physical layout.
type Block uint8

const (
	// BlockState — the n lines that hold the prepared state, line 0 the most
	// significant address bit.
	BlockState Block = iota
	// BlockOutput — the b lines the data oracles load digitized angles onto.
	BlockOutput
	// BlockScratch — the swap-network working lines of the SELECT-SWAP
	// variant; empty under SELECT.
	BlockScratch
	// BlockFlag — the single shared oracle flag line, always last.
	BlockFlag
)

// Line addresses one line by region and offset inside it.
type Line struct {
	Block Block
	Index int
}

// Layout records how many lines each region occupies. Regions are laid out
// in declaration order: state, output, scratch, flag.
type Layout struct {
	State   int
	Output  int
	Scratch int
}

// Width returns the total physical line count, flag included.
func (l Layout) Width() int { return l.State + l.Output + l.Scratch + 1 }

// Flag returns the physical index of the flag line.
func (l Layout) Flag() int { return l.Width() - 1 }

// Physical resolves a region-relative line to its physical index. The index
// is not range-checked against the region size.
func (l Layout) Physical(ln Line) int {
	switch ln.Block {
	case BlockState:
		return ln.Index
	case BlockOutput:
		return l.State + ln.Index
	case BlockScratch:
		return l.State + l.Output + ln.Index
	default:
		return l.Flag()
	}
}

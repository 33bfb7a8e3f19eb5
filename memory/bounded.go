package memory

// Bounded returns a Memory of exactly len(initial) cells, holding the given
// words.
//
// • Load performance: fast
//
// • ForEach performance: fast
//
// • Address range: 0 .. len(initial)-1
//
// Any access outside that range fails with an *AddressError wrapping
// ErrIndexOutOfRange. This matches the fixed-array machines of the earlier
// puzzles, which never address memory past their own image.
//
func Bounded(initial ...int64) Memory {
	cells := make([]int64, len(initial))
	copy(cells, initial)
	return &mBounded{Cells: cells}
}

type mBounded struct {
	Cells []int64
}

var _ Memory = (*mBounded)(nil)

func (m *mBounded) Load(addr uint64) (int64, error) {
	if addr >= uint64(len(m.Cells)) {
		return 0, &AddressError{Err: ErrIndexOutOfRange, Addr: addr}
	}
	return m.Cells[addr], nil
}

func (m *mBounded) Store(addr uint64, v int64) error {
	if addr >= uint64(len(m.Cells)) {
		return &AddressError{Err: ErrIndexOutOfRange, Addr: addr}
	}
	m.Cells[addr] = v
	return nil
}

func (m *mBounded) Len() uint64 {
	return uint64(len(m.Cells))
}

func (m *mBounded) ForEach(f func(addr uint64, v int64)) {
	for i, v := range m.Cells {
		f(uint64(i), v)
	}
}

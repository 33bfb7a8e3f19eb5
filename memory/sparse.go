package memory

import (
	"sort"
)

// Sparse returns a Memory with the given words at addresses 0 .. n-1.
//
// • Load performance: fast
//
// • ForEach performance: moderate
//
// • Address range: unbounded
//
// This is the right choice for any program that uses the relative base or
// otherwise writes past the end of its own image.
//
func Sparse(initial ...int64) Memory {
	m := &mSparse{Cells: make(map[uint64]int64, len(initial))}
	for i, v := range initial {
		m.Cells[uint64(i)] = v
	}
	m.N = uint64(len(initial))
	return m
}

type mSparse struct {
	Cells map[uint64]int64
	N     uint64
}

var _ Memory = (*mSparse)(nil)

func (m *mSparse) Load(addr uint64) (int64, error) {
	return m.Cells[addr], nil
}

func (m *mSparse) Store(addr uint64, v int64) error {
	m.Cells[addr] = v
	if addr >= m.N {
		m.N = addr + 1
	}
	return nil
}

func (m *mSparse) Len() uint64 {
	return m.N
}

func (m *mSparse) ForEach(f func(addr uint64, v int64)) {
	sorted := make([]uint64, 0, len(m.Cells))
	for addr := range m.Cells {
		sorted = append(sorted, addr)
	}
	sort.Sort(addrSlice(sorted))
	for _, addr := range sorted {
		f(addr, m.Cells[addr])
	}
}

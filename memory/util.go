package memory

import (
	"bytes"
	"fmt"
	"sort"
)

type addrSlice []uint64

var _ sort.Interface = (addrSlice)(nil)

func (x addrSlice) Len() int           { return len(x) }
func (x addrSlice) Less(i, j int) bool { return x[i] < x[j] }
func (x addrSlice) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }

// Snapshot returns the words at addresses 0 .. n-1, reading unset cells as
// zero. If a cell cannot be read, Snapshot returns the words before it.
func Snapshot(m Memory, n uint64) []int64 {
	out := make([]int64, 0, n)
	for addr := uint64(0); addr < n; addr++ {
		v, err := m.Load(addr)
		if err != nil {
			break
		}
		out = append(out, v)
	}
	return out
}

// Dump renders every cell of m from address 0 through m.Len()-1, eight words
// per row. Each row starts with the hexadecimal address of its first word.
// Rows in which no cell holds a value are elided with a single "*" line.
func Dump(m Memory) string {
	const perRow = 8

	var rows addrSlice
	m.ForEach(func(addr uint64, _ int64) {
		row := addr / perRow
		if len(rows) == 0 || rows[len(rows)-1] != row {
			rows = append(rows, row)
		}
	})

	var buf bytes.Buffer
	n := m.Len()
	next := uint64(0)
	for _, row := range rows {
		if row != next {
			buf.WriteString("*\n")
		}
		fmt.Fprintf(&buf, "%05x", row*perRow)
		for addr := row * perRow; addr < (row+1)*perRow && addr < n; addr++ {
			v, _ := m.Load(addr)
			fmt.Fprintf(&buf, " %d", v)
		}
		buf.WriteByte('\n')
		next = row + 1
	}
	if next*perRow < n {
		buf.WriteString("*\n")
	}
	fmt.Fprintf(&buf, "%05x\n", n)
	return buf.String()
}

package memory

import (
	"errors"
	"regexp"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var reNL = regexp.MustCompile(`(?m)^`)

func diff(l, r string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(l, r, false)
	pretty := dmp.DiffPrettyText(diffs)
	return reNL.ReplaceAllLiteralString(pretty, "\t")
}

func TestSparse_LoadUnset(t *testing.T) {
	m := Sparse()
	v, err := m.Load(10)
	if err != nil {
		t.Fatalf("%s: error: %v", t.Name(), err)
	}
	if v != 0 {
		t.Errorf("%s: expected 0, got %d", t.Name(), v)
	}
	if m.Len() != 0 {
		t.Errorf("%s: load must not allocate, Len() = %d", t.Name(), m.Len())
	}
}

func TestSparse_StoreAnywhere(t *testing.T) {
	type testrow struct {
		Addr  uint64
		Value int64
	}

	data := []testrow{
		testrow{10, 100},
		testrow{0, -1},
		testrow{1 << 40, 1125899906842624},
		testrow{10, 200},
	}

	m := Sparse(1, 2, 3)
	for i, row := range data {
		if err := m.Store(row.Addr, row.Value); err != nil {
			t.Errorf("%s/%03d: error: %v", t.Name(), i, err)
			continue
		}
		v, err := m.Load(row.Addr)
		if err != nil {
			t.Errorf("%s/%03d: error: %v", t.Name(), i, err)
			continue
		}
		if v != row.Value {
			t.Errorf("%s/%03d: expected %d, got %d", t.Name(), i, row.Value, v)
		}
	}

	if expected := uint64(1<<40) + 1; m.Len() != expected {
		t.Errorf("%s: expected Len() %d, got %d", t.Name(), expected, m.Len())
	}
	if v, _ := m.Load(1); v != 2 {
		t.Errorf("%s: initial word lost: got %d", t.Name(), v)
	}
}

func TestSparse_ForEach(t *testing.T) {
	m := Sparse(7, 8)
	_ = m.Store(100, 3)
	_ = m.Store(50, 2)

	var addrs []uint64
	var values []int64
	m.ForEach(func(addr uint64, v int64) {
		addrs = append(addrs, addr)
		values = append(values, v)
	})

	expectedAddrs := []uint64{0, 1, 50, 100}
	expectedValues := []int64{7, 8, 2, 3}
	if len(addrs) != len(expectedAddrs) {
		t.Fatalf("%s: expected %v, got %v", t.Name(), expectedAddrs, addrs)
	}
	for i := range addrs {
		if addrs[i] != expectedAddrs[i] || values[i] != expectedValues[i] {
			t.Errorf("%s/%03d: expected %d=%d, got %d=%d", t.Name(), i, expectedAddrs[i], expectedValues[i], addrs[i], values[i])
		}
	}
}

func TestBounded_OutOfRange(t *testing.T) {
	m := Bounded(1, 2, 3)

	if v, err := m.Load(2); err != nil || v != 3 {
		t.Errorf("%s: Load(2) = %d, %v", t.Name(), v, err)
	}

	_, err := m.Load(3)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("%s: Load(3): expected ErrIndexOutOfRange, got %v", t.Name(), err)
	}

	err = m.Store(7, 1)
	var ae *AddressError
	if !errors.As(err, &ae) {
		t.Fatalf("%s: Store(7): expected *AddressError, got %v", t.Name(), err)
	}
	if ae.Addr != 7 {
		t.Errorf("%s: expected Addr 7, got %d", t.Name(), ae.Addr)
	}
	if m.Len() != 3 {
		t.Errorf("%s: expected Len() 3, got %d", t.Name(), m.Len())
	}
}

func TestBounded_CopiesInitial(t *testing.T) {
	initial := []int64{1, 2, 3}
	m := Bounded(initial...)
	_ = m.Store(0, 99)
	if initial[0] != 1 {
		t.Errorf("%s: caller's slice was modified", t.Name())
	}
}

func TestSnapshot(t *testing.T) {
	type testrow struct {
		Memory   Memory
		N        uint64
		Expected []int64
	}

	data := []testrow{
		testrow{Sparse(1, 2, 3), 5, []int64{1, 2, 3, 0, 0}},
		testrow{Sparse(1, 2, 3), 2, []int64{1, 2}},
		testrow{Bounded(1, 2, 3), 5, []int64{1, 2, 3}},
		testrow{Bounded(), 1, []int64{}},
	}

	for i, row := range data {
		actual := Snapshot(row.Memory, row.N)
		if len(actual) != len(row.Expected) {
			t.Errorf("%s/%03d: expected %v, got %v", t.Name(), i, row.Expected, actual)
			continue
		}
		for j := range actual {
			if actual[j] != row.Expected[j] {
				t.Errorf("%s/%03d: expected %v, got %v", t.Name(), i, row.Expected, actual)
				break
			}
		}
	}
}

func TestDump(t *testing.T) {
	sparse := Sparse(1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50)
	_ = sparse.Store(40, -7)

	far := Sparse(5)
	_ = far.Store(1<<40, 1)

	type testrow struct {
		Memory   Memory
		Expected string
	}

	data := []testrow{
		testrow{
			Memory: sparse,
			Expected: `
			00000 1 9 10 3 2 3 11 0
			00008 99 30 40 50 0 0 0 0
			*
			00028 -7
			00029
			`,
		},
		testrow{
			Memory: Bounded(104, 1125899906842624, 99),
			Expected: `
			00000 104 1125899906842624 99
			00003
			`,
		},
		testrow{
			Memory: far,
			Expected: `
			00000 5 0 0 0 0 0 0 0
			*
			10000000000 1
			10000000001
			`,
		},
		testrow{
			Memory: Sparse(),
			Expected: `
			00000
			`,
		},
	}

	for i, row := range data {
		actual := Dump(row.Memory)
		expected := dedent.Dedent(row.Expected)[1:]
		if actual != expected {
			t.Errorf("%s/%03d: wrong output:\n%s", t.Name(), i, diff(expected, actual))
		}
	}
}

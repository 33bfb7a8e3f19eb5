package intcodevm

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
)

type byCode []OpMeta

var _ sort.Interface = (byCode)(nil)

func (x byCode) Len() int           { return len(x) }
func (x byCode) Less(i, j int) bool { return x[i].Code < x[j].Code }
func (x byCode) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }

// assert panics if cond is false.
func assert(cond bool, format string, args ...interface{}) {
	if !cond {
		var buf bytes.Buffer
		buf.WriteString("assertion failed: ")
		fmt.Fprintf(&buf, format, args...)
		panic(errors.New(buf.String()))
	}
}

// toAddr converts a signed word to an address, rejecting negative values.
func toAddr(v int64) (uint64, bool) {
	if v < 0 {
		return 0, false
	}
	return uint64(v), true
}

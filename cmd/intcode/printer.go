package main

import (
	"bufio"
	"io"
	"strconv"

	"github.com/chronos-tachyon/go-intcode/memory"
)

type printer struct {
	w     *bufio.Writer
	ascii bool
	err   error
	// midLine is true iff the last thing written was a character that did
	// not end a line.
	midLine bool
}

func newPrinter(w io.Writer, ascii bool) *printer {
	return &printer{w: bufio.NewWriter(w), ascii: ascii}
}

func (p *printer) print(values ...int64) {
	for _, v := range values {
		if p.err != nil {
			return
		}
		if p.ascii && v >= 0 && v < 0x80 {
			p.err = p.w.WriteByte(byte(v))
			p.midLine = (v != '\n')
			continue
		}
		p.endLine()
		if p.err != nil {
			return
		}
		if _, p.err = p.w.WriteString(strconv.FormatInt(v, 10)); p.err != nil {
			return
		}
		p.err = p.w.WriteByte('\n')
	}
}

// dump writes a listing of m, starting on a fresh line.
func (p *printer) dump(m memory.Memory) {
	p.endLine()
	if p.err != nil {
		return
	}
	_, p.err = p.w.WriteString(memory.Dump(m))
}

func (p *printer) endLine() {
	if !p.midLine || p.err != nil {
		return
	}
	p.err = p.w.WriteByte('\n')
	p.midLine = false
}

func (p *printer) flush() error {
	if p.err != nil {
		return p.err
	}
	return p.w.Flush()
}

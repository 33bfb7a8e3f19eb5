// Package program reads and writes Intcode programs in their textual form:
// comma-separated decimal words, e.g. "1,9,10,3,2,3,11,0,99,30,40,50".
package program

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var ErrEmptyProgram = errors.New("empty program")

// SyntaxError reports a word that is not a valid decimal integer.
type SyntaxError struct {
	// Index is the 0-based position of the word in the program.
	Index int
	Text  string
	Err   error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("github.com/chronos-tachyon/go-intcode/program: word %d: %q: %v", e.Index, e.Text, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Parse reads a whole program from r. Whitespace around words is ignored, as
// is a single trailing comma.
func Parse(r io.Reader) ([]int64, error) {
	br := bufio.NewReader(r)
	var words []int64
	var index int
	for {
		text, err := br.ReadString(',')
		if err != nil && err != io.EOF {
			return nil, err
		}
		atEOF := (err == io.EOF)
		text = strings.TrimSuffix(text, ",")
		text = strings.TrimSpace(text)
		if text == "" {
			if atEOF {
				break
			}
			return nil, &SyntaxError{Index: index, Text: text, Err: strconv.ErrSyntax}
		}
		v, perr := strconv.ParseInt(text, 10, 64)
		if perr != nil {
			return nil, &SyntaxError{Index: index, Text: text, Err: unwrapNumError(perr)}
		}
		words = append(words, v)
		index++
		if atEOF {
			break
		}
	}
	if len(words) == 0 {
		return nil, ErrEmptyProgram
	}
	return words, nil
}

// ParseString is Parse for an in-memory string.
func ParseString(s string) ([]int64, error) {
	return Parse(strings.NewReader(s))
}

// ReadFile reads the program stored in the named file.
func ReadFile(path string) ([]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Format writes words to w in textual form, followed by a newline.
func Format(w io.Writer, words []int64) error {
	bw := bufio.NewWriter(w)
	for i, v := range words {
		if i > 0 {
			bw.WriteByte(',')
		}
		bw.WriteString(strconv.FormatInt(v, 10))
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

func unwrapNumError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}

package interpreter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// IO is the external collaborator serving get and put: one integer per
// call, no buffering or formatting contract beyond that.
type IO interface {
	// Get requests one integer for the named variable.
	Get(name string) (int64, error)
	// Put sends one evaluated integer to the output sink.
	Put(value int64) error
}

// StdIO implements the interactive format: a "Value for x? " prompt on
// get, and "> 42" lines on put.
type StdIO struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdIO wraps the given streams; nil selects os.Stdin / os.Stdout.
func NewStdIO(in io.Reader, out io.Writer) *StdIO {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &StdIO{in: bufio.NewReader(in), out: out}
}

func (s *StdIO) Get(name string) (int64, error) {
	fmt.Fprintf(s.out, "Value for %s? ", name)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("reading value for %s: %w", name, err)
	}
	value, perr := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if perr != nil {
		return 0, fmt.Errorf("expected an integer value for %s", name)
	}
	return value, nil
}

func (s *StdIO) Put(value int64) error {
	_, err := fmt.Fprintf(s.out, "> %d\n", value)
	return err
}

// QueueIO feeds get from a fixed queue and records every put value.
// Harnesses and tests use it in place of the interactive streams.
type QueueIO struct {
	Inputs  []int64
	Outputs []int64
	next    int
}

func (q *QueueIO) Get(name string) (int64, error) {
	if q.next >= len(q.Inputs) {
		return 0, fmt.Errorf("input exhausted: no value for %s", name)
	}
	v := q.Inputs[q.next]
	q.next++
	return v, nil
}

func (q *QueueIO) Put(value int64) error {
	q.Outputs = append(q.Outputs, value)
	return nil
}

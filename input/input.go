// Package input reads newline-delimited decimal numbers, one value
// per line, the way every subcommand consumes stdin.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ParseError reports an input line that is not a valid 64-bit float.
// The first bad line aborts the batch; there is no skip-and-continue.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: cannot parse %q as a number: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ForEach streams values from r into fn in input order. The first
// parse failure or fn error stops the scan and is returned.
func ForEach(r io.Reader, fn func(float64) error) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return &ParseError{Line: line, Text: text, Err: err}
		}
		if err := fn(value); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// ReadAll slurps every value from r into memory, for callers that
// need more than one pass.
func ReadAll(r io.Reader) ([]float64, error) {
	values := make([]float64, 0)
	err := ForEach(r, func(value float64) error {
		values = append(values, value)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

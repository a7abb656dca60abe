// Package jsonl reads collisions from newline-delimited JSON.
//
// Each non-blank line is one collision:
//
//	{"id": 1, "posZ": -5.0, "tracks": [{"pt": 0.5, "eta": 0.1}]}
package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/trackhist/pkg/domain"
)

// maxLineSize bounds a single event record.
const maxLineSize = 16 * 1024 * 1024

// Source implements ports.EventSource over an io.Reader.
type Source struct {
	scanner *bufio.Scanner
	closer  io.Closer
	line    int
}

// NewSource reads collisions from r. If r is an io.Closer, Close closes it.
func NewSource(r io.Reader) *Source {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)

	s := &Source{scanner: sc}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// Open opens a file, or stdin when path is "-".
func Open(path string) (*Source, error) {
	if path == "-" {
		return NewSource(io.NopCloser(os.Stdin)), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open events: %w", err)
	}
	return NewSource(f), nil
}

// Next decodes the next non-blank line. It returns io.EOF at the end of input.
func (s *Source) Next(ctx context.Context) (domain.Collision, error) {
	for {
		if err := ctx.Err(); err != nil {
			return domain.Collision{}, err
		}
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return domain.Collision{}, fmt.Errorf("read events at line %d: %w", s.line+1, err)
			}
			return domain.Collision{}, io.EOF
		}
		s.line++

		text := strings.TrimSpace(s.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		var ev domain.Collision
		if err := json.Unmarshal([]byte(text), &ev); err != nil {
			return domain.Collision{}, fmt.Errorf("decode event at line %d: %w", s.line, err)
		}
		return ev, nil
	}
}

// Close releases the underlying reader.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

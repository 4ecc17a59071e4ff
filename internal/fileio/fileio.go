// Package fileio reads and writes line-oriented text files.
//
// Reading splits on '\n' and keeps each newline with its line; writing
// concatenates the lines verbatim, so well-formed input round-trips
// byte for byte.
package fileio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dshills/lined/internal/engine/lines"
)

// Read splits r into lines. Empty input yields no lines.
func Read(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var out []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			out = append(out, line)
		}
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}

// ReadFile reads the file at path into lines.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return out, nil
}

// Write writes every line of s to w and returns the byte count.
func Write(w io.Writer, s *lines.Store) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for i := range s.Len() {
		m, err := bw.WriteString(s.At(i))
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// WriteFile creates or truncates path and writes s to it.
func WriteFile(path string, s *lines.Store) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	n, err := Write(f, s)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("writing %s: %w", path, err)
	}
	return n, nil
}

// Exists reports whether path names an existing file.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

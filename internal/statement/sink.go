package statement

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileSink writes converted lines to a newly created file.
type FileSink struct {
	path string
	f    *os.File
	w    *bufio.Writer
}

// CreateSink creates path for writing. It never overwrites an existing file.
func CreateSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil, &OutputExistsError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}
	return &FileSink{path: path, f: f, w: bufio.NewWriter(f)}, nil
}

// WriteLine appends line as is.
func (s *FileSink) WriteLine(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// Close flushes buffered lines and closes the file. If either step fails
// the file is removed, as with Abort.
func (s *FileSink) Close() error {
	if err := s.w.Flush(); err != nil {
		_ = s.Abort()
		return fmt.Errorf("flushing %s: %w", s.path, err)
	}
	if err := s.f.Close(); err != nil {
		_ = os.Remove(s.path)
		return fmt.Errorf("closing %s: %w", s.path, err)
	}
	return nil
}

// Abort closes and removes the file, leaving no partial output behind.
func (s *FileSink) Abort() error {
	_ = s.f.Close()
	if err := os.Remove(s.path); err != nil {
		return fmt.Errorf("removing partial output %s: %w", s.path, err)
	}
	return nil
}

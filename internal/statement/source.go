package statement

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineSize bounds a single statement line.
const maxLineSize = 1 << 20

// LookupEncoding returns the decoder for an export charset name.
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	case "latin1", "latin-1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "utf-16", "utf16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
}

// FileSource reads a statement export one line at a time.
type FileSource struct {
	f    *os.File
	sc   *bufio.Scanner
	line int
}

// OpenSource opens path and decodes it with enc.
func OpenSource(path string, enc encoding.Encoding) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	sc := bufio.NewScanner(transform.NewReader(f, enc.NewDecoder()))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &FileSource{f: f, sc: sc}, nil
}

// ReadLine returns the next line without its line ending, or io.EOF.
func (s *FileSource) ReadLine() (string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", fmt.Errorf("reading line %d: %w", s.line+1, err)
		}
		return "", io.EOF
	}
	s.line++
	return s.sc.Text(), nil
}

// Close releases the input file.
func (s *FileSource) Close() error {
	return s.f.Close()
}

package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
)

// ParseTargetSize parses a data volume such as "100GB", "512 MB" or "1.5TB"
// into bytes. A bare number is read as gigabytes. Units are decimal
// (1GB = 1e9 bytes).
func ParseTargetSize(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("config: empty target size")
	}
	if unicode.IsDigit(rune(s[len(s)-1])) {
		s += "GB"
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("config: invalid target size %q: %w", s, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("config: target size %q is zero", s)
	}
	return n, nil
}

// RowsForSize estimates the row count that fills bytes.
func RowsForSize(bytes uint64) int64 {
	return int64(bytes / BytesPerRowEstimate)
}

// ResolveTargetRows returns the effective row target: an explicit row count, else
// the row estimate for TargetSize.
func (g Generator) ResolveTargetRows() (int64, error) {
	if g.TargetRows > 0 {
		return g.TargetRows, nil
	}
	size := g.TargetSize
	if size == "" {
		size = DefaultTargetSize
	}
	b, err := ParseTargetSize(size)
	if err != nil {
		return 0, err
	}
	return RowsForSize(b), nil
}

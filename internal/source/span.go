// Package source identifies byte ranges within named source files.
package source

import "fmt"

// Span identifies a contiguous byte range inside a single file.
//
// Line and column are never stored here; a diagnostic renderer derives
// them on demand by re-reading the file and counting newlines up to Pos.
type Span struct {
	File   string
	Pos    uint32
	Length uint32
}

// End returns the exclusive byte offset one past the span.
func (s Span) End() uint32 {
	return s.Pos + s.Length
}

// Empty reports whether the span covers zero bytes (only valid for the
// synthetic EOF sentinel).
func (s Span) Empty() bool {
	return s.Length == 0
}

// Cover returns the smallest span that contains both s and other.
// If the spans belong to different files, s is returned unchanged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	start := s.Pos
	if other.Pos < start {
		start = other.Pos
	}
	end := s.End()
	if other.End() > end {
		end = other.End()
	}
	return Span{File: s.File, Pos: start, Length: end - start}
}

func (s Span) String() string {
	return fmt.Sprintf("%s:%d+%d", s.File, s.Pos, s.Length)
}

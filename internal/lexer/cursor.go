package lexer

import (
	"fmt"

	"fortio.org/safecast"
)

// cursor is a byte-stream reader with one byte of pushback, the minimum
// the lexer needs to disambiguate compound operators and look past the
// current character without committing to it (§9, Single-byte pushback).
type cursor struct {
	data []byte
	off  int
}

// newCursor rejects input too large for a uint32 span (§3.1): Pos and
// Length are uint32, so a file past 4GiB could never be addressed by
// any token it produced.
func newCursor(data []byte) cursor {
	if _, err := safecast.Conv[uint32](len(data)); err != nil {
		panic(fmt.Errorf("source file too large to lex: %w", err))
	}
	return cursor{data: data}
}

// eof reports whether the cursor has consumed every byte.
func (c *cursor) eof() bool {
	return c.off >= len(c.data)
}

// peek returns the next unconsumed byte without advancing, or 0 at EOF.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.data[c.off]
}

// peekAt returns the byte n positions ahead of the cursor, or 0 past EOF.
func (c *cursor) peekAt(n int) byte {
	if c.off+n >= len(c.data) {
		return 0
	}
	return c.data[c.off+n]
}

// bump consumes and returns the next byte, or 0 at EOF.
func (c *cursor) bump() byte {
	if c.eof() {
		return 0
	}
	b := c.data[c.off]
	c.off++
	return b
}


package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/SparkyPotato/Wave/internal/diag"
	"github.com/SparkyPotato/Wave/internal/source"
	"github.com/SparkyPotato/Wave/internal/token"
)

// scanString consumes a `"..."` literal in two passes. The first pass
// collects raw bytes up to an unescaped closing quote, treating `\"` as
// a literal quote; a raw newline aborts the literal as an error. The
// second pass interprets the canonical escapes \a \n \t \\ in the raw
// buffer, reporting any other `\x` sequence and dropping it (§4.2).
func (lx *Lexer) scanString() {
	start := lx.currentSpan()
	lx.getChar() // opening '"'

	var raw []byte
	for {
		if lx.lookAhead('\n') {
			lx.report(diag.SevError, lx.currentSpan(), "string not terminated")
			lx.discard()
			return
		}
		if lx.cur.eof() {
			lx.report(diag.SevError, start, "string not terminated")
			lx.discard()
			return
		}
		if lx.lookAhead('"') {
			break
		}

		c := lx.getChar()
		slash := c == '\\'
		quote := lx.lookAhead('"')

		if quote && slash {
			raw = append(raw, '"')
			continue
		}
		raw = append(raw, c)
		if quote {
			break
		}
	}

	value := lx.unescape(raw, start)
	lx.pushToken(token.String, token.StringOf(value))
}

// unescape interprets \a \n \t \\ in raw and reports any other escape
// sequence as an error, dropping it from the decoded value. The span of
// a bad escape is approximated from the token's start plus its index in
// the post-quote-collapse buffer, matching the original implementation.
func (lx *Lexer) unescape(raw []byte, tokenStart source.Span) string {
	value := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			value = append(value, raw[i])
			continue
		}
		switch raw[i+1] {
		case 'a':
			value = append(value, '\a')
		case 'n':
			value = append(value, '\n')
		case 't':
			value = append(value, '\t')
		case '\\':
			value = append(value, '\\')
		default:
			off, err := safecast.Conv[uint32](i)
			if err != nil {
				panic(fmt.Errorf("escape offset overflow: %w", err))
			}
			sp := source.Span{File: tokenStart.File, Pos: tokenStart.Pos + off + 1, Length: 2}
			lx.report(diag.SevError, sp, fmt.Sprintf("unrecognized escape sequence '\\%c'", raw[i+1]))
		}
		i++
	}
	return string(value)
}

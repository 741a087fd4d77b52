package lexer

import (
	"strconv"

	"github.com/SparkyPotato/Wave/internal/diag"
	"github.com/SparkyPotato/Wave/internal/token"
)

// scanNumber consumes a run of digits, optionally followed by a '.' and
// at least one more digit. No exponent, no alternate bases, no leading
// sign — sign is handled as a unary operator by the parser (§4.2).
func (lx *Lexer) scanNumber() {
	start := lx.currentSpan()
	literal := []byte{lx.getChar()}

	for isDigit(lx.peek()) {
		literal = append(literal, lx.getChar())
	}

	isReal := false
	if lx.peek() == '.' && isDigit(lx.peekAt(1)) {
		isReal = true
		literal = append(literal, lx.getChar()) // '.'
		for isDigit(lx.peek()) {
			literal = append(literal, lx.getChar())
		}
	}

	if isReal {
		f, err := strconv.ParseFloat(string(literal), 64)
		if err != nil {
			lx.report(diag.SevError, start, "malformed real literal")
			lx.discard()
			return
		}
		lx.pushToken(token.Real, token.RealOf(f))
		return
	}

	i, err := strconv.ParseInt(string(literal), 10, 64)
	if err != nil {
		lx.report(diag.SevError, start, "malformed integer literal")
		lx.discard()
		return
	}
	lx.pushToken(token.Integer, token.IntOf(i))
}

package lexer

import "github.com/SparkyPotato/Wave/internal/token"

// scanIdentOrKeyword consumes [A-Za-z_][A-Za-z0-9_]* and disambiguates
// reserved words from plain identifiers via the keyword table (§4.2).
func (lx *Lexer) scanIdentOrKeyword() {
	literal := []byte{lx.getChar()}
	for isIdentCont(lx.peek()) {
		literal = append(literal, lx.getChar())
	}

	text := string(literal)
	if kind, ok := token.LookupKeyword(text); ok {
		lx.pushToken(kind, token.Value{})
		return
	}
	lx.pushToken(token.Ident, token.StringOf(text))
}

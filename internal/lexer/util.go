package lexer

import (
	"fmt"

	"github.com/SparkyPotato/Wave/internal/diag"
	"github.com/SparkyPotato/Wave/internal/source"
)

// reportUnexpected records the "unknown character" diagnostic for an
// unrecognized byte (§4.2, Unknown character).
func (lx *Lexer) reportUnexpected(sp source.Span, c byte) {
	lx.report(diag.SevError, sp, fmt.Sprintf("Unexpected character '%c'", c))
}

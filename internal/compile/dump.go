package compile

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/SparkyPotato/Wave/internal/token"
)

var (
	dumpKindColor    = color.New(color.FgCyan)
	dumpLiteralColor = color.New(color.FgYellow)
	dumpSpanColor    = color.New(color.FgHiBlack)

	// dumpMu keeps concurrent Files() dumps from interleaving mid-token
	// on a shared writer such as os.Stdout.
	dumpMu sync.Mutex
)

// DumpTokens writes a human-readable token dump to w, one line per
// token: its index, kind, literal payload (if any), and span. This is
// the "human-readable token dump" debug_output emits after lexing
// (§6) — line/column resolution belongs to the diagnostic renderer,
// out of scope here, so spans print as raw byte ranges.
func DumpTokens(w io.Writer, tokens []token.Token) {
	dumpMu.Lock()
	defer dumpMu.Unlock()
	for i, tok := range tokens {
		fmt.Fprintf(w, "%4d  %s", i, dumpKindColor.Sprint(tok.Kind.String()))
		if tok.Value.Kind != token.NoValue {
			fmt.Fprintf(w, " %s", dumpLiteralColor.Sprint(tok.Value.String()))
		}
		fmt.Fprintf(w, "  %s\n", dumpSpanColor.Sprint(tok.Span.String()))
	}
}

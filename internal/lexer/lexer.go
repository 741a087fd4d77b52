// Package lexer turns a byte stream into a flat token sequence plus a
// list of lexical diagnostics (§4.2).
package lexer

import (
	"github.com/SparkyPotato/Wave/internal/diag"
	"github.com/SparkyPotato/Wave/internal/source"
	"github.com/SparkyPotato/Wave/internal/token"
)

// marker tracks the span of the token currently being assembled. pos is
// the byte offset of its first character; length grows by one for every
// byte GetChar consumes and resets to zero once a token is emitted.
type marker struct {
	pos    uint32
	length uint32
}

func (m marker) span(file string) source.Span {
	return source.Span{File: file, Pos: m.pos, Length: m.length}
}

// Lexer is a single-file, single-pass, stateful tokenizer. It owns its
// byte cursor for the duration of Lex and never blocks or suspends (§5).
type Lexer struct {
	file     string
	cur      cursor
	marker   marker
	reporter diag.Reporter
	tokens   []token.Token
}

// New creates a Lexer over content, attributing every span to file.
func New(file string, content []byte, reporter diag.Reporter) *Lexer {
	return &Lexer{
		file:     file,
		cur:      newCursor(content),
		reporter: reporter,
	}
}

// Lex consumes the entire stream and returns its tokens, always ending
// in exactly one Null sentinel (§3.4, invariant 1).
func (lx *Lexer) Lex() []token.Token {
	for !lx.cur.eof() {
		lx.lexOne()
	}
	lx.pushToken(token.Null, token.Value{})
	return lx.tokens
}

// lexOne consumes whitespace and comments silently, then dispatches to
// the scanner for exactly one token (or none, for skipped trivia).
func (lx *Lexer) lexOne() {
	c := lx.peek()

	switch {
	case c == ' ' || c == '\t' || c == '\r' || c == '\n':
		lx.getChar()
		lx.discard()
	case c == '/' && lx.peekAt(1) == '/':
		lx.skipLineComment()
	case c == '/' && lx.peekAt(1) == '*':
		lx.skipBlockComment()
	case isDigit(c):
		lx.scanNumber()
	case c == '"':
		lx.scanString()
	case isIdentStart(c):
		lx.scanIdentOrKeyword()
	default:
		lx.scanOperatorOrPunct()
	}
}

// getChar reads one byte and grows the current marker (§4.2, span
// discipline). Together with lookAhead, it is the lexer's only means
// of consuming input.
func (lx *Lexer) getChar() byte {
	b := lx.cur.bump()
	lx.marker.length++
	return b
}

// lookAhead consumes the next byte if it equals c, growing the marker;
// otherwise it rewinds and leaves the marker untouched.
func (lx *Lexer) lookAhead(c byte) bool {
	if lx.cur.peek() == c {
		lx.cur.bump()
		lx.marker.length++
		return true
	}
	return false
}

// peek and peekAt inspect upcoming bytes without consuming them or
// touching the marker.
func (lx *Lexer) peek() byte        { return lx.cur.peek() }
func (lx *Lexer) peekAt(n int) byte { return lx.cur.peekAt(n) }

// currentSpan returns the span of the marker as it stands right now,
// without resetting it.
func (lx *Lexer) currentSpan() source.Span {
	return lx.marker.span(lx.file)
}

// pushToken emits a token covering the current marker, then rolls the
// marker forward past it.
func (lx *Lexer) pushToken(kind token.Kind, value token.Value) {
	sp := lx.currentSpan()
	lx.tokens = append(lx.tokens, token.Token{Kind: kind, Value: value, Span: sp})
	lx.marker.pos += lx.marker.length
	lx.marker.length = 0
}

// discard rolls the marker forward without emitting a token, used for
// whitespace and comments.
func (lx *Lexer) discard() {
	lx.marker.pos += lx.marker.length
	lx.marker.length = 0
}

func (lx *Lexer) report(sev diag.Severity, sp source.Span, msg string) {
	if lx.reporter != nil {
		lx.reporter.Report(diag.New(sev, sp, msg))
	}
}

func (lx *Lexer) skipLineComment() {
	for !lx.cur.eof() && lx.peek() != '\n' {
		lx.getChar()
	}
	lx.discard()
}

func (lx *Lexer) skipBlockComment() {
	start := lx.currentSpan()
	lx.getChar() // '/'
	lx.getChar() // '*'
	for {
		if lx.cur.eof() {
			lx.report(diag.SevError, start, "multiline comment did not end")
			lx.discard()
			return
		}
		star := lx.getChar() == '*'
		slash := lx.lookAhead('/')
		if star && slash {
			lx.discard()
			return
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// Package parser builds a Module AST from a Lexer's token stream via
// recursive descent with precedence climbing for expressions (§4).
package parser

import (
	"github.com/SparkyPotato/Wave/internal/ast"
	"github.com/SparkyPotato/Wave/internal/diag"
	"github.com/SparkyPotato/Wave/internal/source"
	"github.com/SparkyPotato/Wave/internal/token"
)

// Options tunes a Parser's behaviour: where diagnostics go and how
// many errors to record. Once MaxErrors errors have been recorded,
// later diagnostics are dropped; parsing itself continues.
type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// enough reports whether the error budget (if any) has been spent.
func (o *Options) enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser holds a monotonically advancing cursor into an immutable
// token vector (§5). It never retains ownership beyond its own call.
type Parser struct {
	tokens []token.Token
	tok    int
	opts   Options
}

// New creates a Parser over tokens, which must be non-empty and end
// in a Null sentinel (the Lexer's invariant).
func New(tokens []token.Token, opts Options) *Parser {
	return &Parser{tokens: tokens, opts: opts}
}

// parseFault is the non-local abort signalled by Ensure and other
// primitives on a mismatch. It unwinds to the nearest site that calls
// synchronize and recovers it — the short-range analogue of the
// source's integer-exception unwind (§9).
type parseFault struct{}

// Parse runs the module-level grammar and returns the resulting AST
// (nil if the file was empty or the module header failed to parse).
// Diagnostics go to the Reporter in Options.
func (p *Parser) Parse() *ast.Module {
	if len(p.tokens) == 1 {
		p.report(diag.SevError, p.peek().Span, "file is empty")
		return nil
	}

	var mod *ast.Module
	p.guarded(func() {
		mod = p.parseModule()
	})
	return mod
}

// guarded runs fn, recovering a parseFault raised anywhere beneath it
// so a single top-level failure doesn't crash the whole parse.
func (p *Parser) guarded(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseFault); !ok {
				panic(r)
			}
		}
	}()
	fn()
}

// peek returns the token under the cursor without advancing.
func (p *Parser) peek() token.Token {
	return p.tokens[p.tok]
}

// previous returns the token immediately before the cursor.
func (p *Parser) previous() token.Token {
	return p.tokens[p.tok-1]
}

// isGood reports whether the cursor sits strictly before the terminal
// Null sentinel.
func (p *Parser) isGood() bool {
	return p.tok < len(p.tokens)-1
}

// advance returns the current token, then moves the cursor forward by
// one — unless that would step past Null, which stays put.
func (p *Parser) advance() token.Token {
	t := p.peek()
	if p.isGood() {
		p.tok++
	}
	return t
}

// at reports whether the current token has kind k, without consuming.
func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

// peekAt returns the kind of the token n positions past the cursor,
// clamped to the terminal Null once the vector is exhausted.
func (p *Parser) peekAt(n int) token.Kind {
	i := p.tok + n
	if i >= len(p.tokens) {
		i = len(p.tokens) - 1
	}
	return p.tokens[i].Kind
}

// check advances and returns true if the current token has kind k and
// the cursor is still good; otherwise it leaves the cursor untouched.
func (p *Parser) check(k token.Kind) bool {
	if p.isGood() && p.at(k) {
		p.advance()
		return true
	}
	return false
}

// ensure advances unconditionally; if the consumed token's kind
// differs from k (or the cursor was already exhausted), it records an
// Error at that token's span and raises a parse fault. The advance
// happens regardless, so synchronization always makes progress.
func (p *Parser) ensure(k token.Kind, msg string) token.Token {
	ok := p.isGood() && p.at(k)
	t := p.advance()
	if !ok {
		p.report(diag.SevError, t.Span, msg)
		panic(parseFault{})
	}
	return t
}

// fault records an Error at the current token and raises a parse
// fault without consuming anything — used where Ensure's "advance
// regardless" behaviour isn't appropriate.
func (p *Parser) fault(msg string) {
	p.report(diag.SevError, p.peek().Span, msg)
	panic(parseFault{})
}

func (p *Parser) report(sev diag.Severity, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	if p.opts.enough() {
		return
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	p.opts.Reporter.Report(diag.New(sev, sp, msg))
}

func (p *Parser) note(primary source.Span, msg string) {
	// attached as a standalone Note diagnostic, not joined to the
	// preceding Error.
	if p.opts.Reporter == nil {
		return
	}
	p.opts.Reporter.Report(diag.New(diag.SevNote, primary, msg))
}

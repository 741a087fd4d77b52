// Package compile is the minimal driver-facing layer that confines one
// Lexer and one Parser to one file and hands back the Module, the
// token stream, and every diagnostic recorded for it (§6). It is not
// the command-line driver — argument parsing and source discovery stay
// external — but it is the seam the driver calls through, and the
// place multi-file parallelism is allowed to live (§5).
package compile

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/SparkyPotato/Wave/internal/ast"
	"github.com/SparkyPotato/Wave/internal/diag"
	"github.com/SparkyPotato/Wave/internal/lexer"
	"github.com/SparkyPotato/Wave/internal/parser"
	"github.com/SparkyPotato/Wave/internal/token"
)

// Options is the compile context the driver hands to each file (§6,
// "Consumed from the driver"). MaxErrors bounds the parser's error
// budget; zero means unlimited.
type Options struct {
	DebugOutput bool
	MaxErrors   uint
}

// Input is one source file awaiting lexing and parsing.
type Input struct {
	Path    string
	Content []byte
}

// Result is everything produced for one file: its tokens (for the
// debug dump and other tooling), its Module (nil if the file was empty
// or the top-level parse aborted), and every diagnostic the lexer and
// parser recorded, lexer first, in emission order (§5, Ordering).
type Result struct {
	Path        string
	Tokens      []token.Token
	Module      *ast.Module
	Diagnostics []diag.Diagnostic
}

// HasErrors reports whether any diagnostic at or above SevError was
// recorded. The driver consults this before invoking downstream passes
// (§7, "After any error, downstream passes must not be invoked").
func (r Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity >= diag.SevError {
			return true
		}
	}
	return false
}

// File lexes and parses a single input. It owns the Lexer and Parser
// for the duration of the call and never retains either past return
// (§5, resource policy).
func File(opts Options, in Input) Result {
	bag := diag.NewBag(16)
	reporter := diag.BagReporter{Bag: bag}

	lx := lexer.New(in.Path, in.Content, reporter)
	tokens := lx.Lex()

	if opts.DebugOutput {
		DumpTokens(os.Stdout, tokens)
	}

	ps := parser.New(tokens, parser.Options{MaxErrors: opts.MaxErrors, Reporter: reporter})
	mod := ps.Parse()

	return Result{Path: in.Path, Tokens: tokens, Module: mod, Diagnostics: bag.Items()}
}

// Files lexes and parses every input concurrently, one goroutine per
// file, and returns results in the same order as inputs. Each
// (Lexer, Parser) pair still lives on exactly one goroutine for the
// duration of one file, matching the single-file confinement §5
// requires; only the driver-level fan-out is parallel.
func Files(ctx context.Context, opts Options, inputs []Input) ([]Result, error) {
	results := make([]Result, len(inputs))
	g, _ := errgroup.WithContext(ctx)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			results[i] = File(opts, in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

package token

import (
	"testing"

	"github.com/SparkyPotato/Wave/internal/source"
)

func TestTokenTextLiteral(t *testing.T) {
	tok := Token{Kind: Ident, Value: StringOf("foo"), Span: source.Span{}}
	if got := tok.Text(); got != "foo" {
		t.Fatalf("Text() = %q, want %q", got, "foo")
	}
}

func TestTokenTextKeyword(t *testing.T) {
	tok := Token{Kind: If, Span: source.Span{}}
	if got := tok.Text(); got != "if" {
		t.Fatalf("Text() = %q, want %q", got, "if")
	}
}

func TestTokenTextPunctuation(t *testing.T) {
	tok := Token{Kind: Plus}
	if got := tok.Text(); got != "+" {
		t.Fatalf("Text() = %q, want %q", got, "+")
	}
}

func TestTokenIsKeyword(t *testing.T) {
	if !(Token{Kind: Class}).IsKeyword() {
		t.Fatalf("Class should be a keyword")
	}
	if (Token{Kind: Ident}).IsKeyword() {
		t.Fatalf("Ident should not be a keyword")
	}
	if (Token{Kind: Plus}).IsKeyword() {
		t.Fatalf("Plus should not be a keyword")
	}
}

func TestKindIsLiteral(t *testing.T) {
	for _, k := range []Kind{Ident, String, Integer, Real, True, False} {
		if !k.IsLiteral() {
			t.Errorf("%v.IsLiteral() = false, want true", k)
		}
	}
	for _, k := range []Kind{Plus, LParen, Class, Null} {
		if k.IsLiteral() {
			t.Errorf("%v.IsLiteral() = true, want false", k)
		}
	}
}

func TestKindStringUnknown(t *testing.T) {
	if got := Kind(255).String(); got != "<unknown>" {
		t.Fatalf("Kind(255).String() = %q, want <unknown>", got)
	}
}

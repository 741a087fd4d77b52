package lexer

import "github.com/SparkyPotato/Wave/internal/token"

// scanOperatorOrPunct handles every delimiter and every single/compound
// operator. '-', '+', '*', '/', '%', '=', '!', '>', '<' each take one
// step of lookahead against '=' (§4.2). '/' additionally disambiguates
// comments before reaching here (handled by the caller).
func (lx *Lexer) scanOperatorOrPunct() {
	c := lx.getChar()

	switch c {
	case '(':
		lx.pushToken(token.LParen, token.Value{})
	case ')':
		lx.pushToken(token.RParen, token.Value{})
	case '{':
		lx.pushToken(token.LBrace, token.Value{})
	case '}':
		lx.pushToken(token.RBrace, token.Value{})
	case '[':
		lx.pushToken(token.LBracket, token.Value{})
	case ']':
		lx.pushToken(token.RBracket, token.Value{})
	case ',':
		lx.pushToken(token.Comma, token.Value{})
	case '.':
		lx.pushToken(token.Period, token.Value{})
	case ':':
		lx.pushToken(token.Colon, token.Value{})
	case ';':
		lx.pushToken(token.Semicolon, token.Value{})
	case '-':
		lx.pushToken(pick(lx.lookAhead('='), token.MinusEq, token.Minus), token.Value{})
	case '+':
		lx.pushToken(pick(lx.lookAhead('='), token.PlusEq, token.Plus), token.Value{})
	case '*':
		lx.pushToken(pick(lx.lookAhead('='), token.StarEq, token.Star), token.Value{})
	case '/':
		lx.pushToken(pick(lx.lookAhead('='), token.SlashEq, token.Slash), token.Value{})
	case '%':
		lx.pushToken(pick(lx.lookAhead('='), token.PercentEq, token.Percent), token.Value{})
	case '=':
		lx.pushToken(pick(lx.lookAhead('='), token.EqEq, token.Eq), token.Value{})
	case '!':
		lx.pushToken(pick(lx.lookAhead('='), token.NotEq, token.Not), token.Value{})
	case '>':
		lx.pushToken(pick(lx.lookAhead('='), token.GreaterEq, token.Greater), token.Value{})
	case '<':
		lx.pushToken(pick(lx.lookAhead('='), token.LessEq, token.Less), token.Value{})
	default:
		sp := lx.currentSpan()
		lx.reportUnexpected(sp, c)
		lx.discard()
	}
}

func pick(cond bool, ifTrue, ifFalse token.Kind) token.Kind {
	if cond {
		return ifTrue
	}
	return ifFalse
}

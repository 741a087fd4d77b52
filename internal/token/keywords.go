package token

// keywords maps every reserved word to its Kind. Identifiers may not
// collide with this set (§6, Reserved words).
var keywords = map[string]Kind{
	"and":       And,
	"or":        Or,
	"if":        If,
	"else":      Else,
	"true":      True,
	"false":     False,
	"for":       For,
	"in":        In,
	"while":     While,
	"break":     Break,
	"continue":  Continue,
	"try":       Try,
	"catch":     Catch,
	"throw":     Throw,
	"enum":      Enum,
	"tuple":     Tuple,
	"class":     Class,
	"construct": Construct,
	"abstract":  Abstract,
	"static":    Static,
	"copy":      Copy,
	"const":     Const,
	"public":    Public,
	"private":   Private,
	"protected": Protected,
	"self":      Self,
	"super":     Super,
	"func":      Func,
	"return":    Return,
	"var":       Var,
	"type":      Type,
	"typeof":    TypeOf,
	"int":       IntT,
	"real":      RealT,
	"char":      CharT,
	"bool":      BoolT,
	"module":    Module,
	"import":    Import,
	"extern":    Extern,
	"as":        As,
	"export":    Export,
}

// LookupKeyword reports the Kind for a reserved word, case-sensitively.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

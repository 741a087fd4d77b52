package ast

import "github.com/SparkyPotato/Wave/internal/token"

// ModuleImport is a native import: `import pkg.name [as alias];`.
// Alias defaults to the full imported name when omitted.
type ModuleImport struct {
	Imported Identifier
	As       Identifier
}

// CImport is a foreign import: `import extern "path";`.
type CImport struct {
	Path token.Token
}

// GlobalDefinition wraps a top-level Definition with its export bit.
type GlobalDefinition struct {
	Exported bool
	Def      Definition
}

// Module is the AST root for one source file: its declared name,
// imports, and top-level definitions. A Module exclusively owns every
// node reachable from it (§3.3, §3.4).
type Module struct {
	Def         Identifier
	Imports     []ModuleImport
	CImports    []CImport
	Definitions []GlobalDefinition
	FilePath    string
}

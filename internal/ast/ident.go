// Package ast defines the tree-shaped, uniquely-owned node family that
// the parser builds: a Module rooted tree of Definition, ClassFunc,
// Statement, Expression, and Type variants (§3.3). There is no shared
// ownership and no arena — each node holds its children directly.
package ast

import (
	"github.com/SparkyPotato/Wave/internal/source"
	"github.com/SparkyPotato/Wave/internal/token"
)

// Identifier is a dotted path of one or more identifier tokens, e.g.
// `foo.bar.baz`.
type Identifier struct {
	Path []token.Token
}

// Name renders the dotted path with '.' separators.
func (id Identifier) Name() string {
	s := ""
	for i, t := range id.Path {
		if i > 0 {
			s += "."
		}
		s += t.Text()
	}
	return s
}

// Span covers the whole dotted path, first token to last.
func (id Identifier) Span() source.Span {
	first := id.Path[0].Span
	last := id.Path[len(id.Path)-1].Span
	return first.Cover(last)
}

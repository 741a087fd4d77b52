package diag

import "github.com/SparkyPotato/Wave/internal/source"

// Note is a secondary annotation attached to a Diagnostic, such as a
// suggestion for how to fix the offending construct.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single human-readable record pointing at a source span.
type Diagnostic struct {
	Severity Severity
	Primary  source.Span
	Message  string
	Notes    []Note
}

// New builds a Diagnostic with no notes attached.
func New(sev Severity, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Primary: primary, Message: msg}
}

// WithNote returns d with an additional note appended.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

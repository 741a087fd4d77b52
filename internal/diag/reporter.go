package diag

import "github.com/SparkyPotato/Wave/internal/source"

// Reporter is the minimal contract lexer and parser phases use to emit
// diagnostics without depending on how they are ultimately collected.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter adapts a *Bag to the Reporter interface.
type BagReporter struct {
	Bag *Bag
}

// Report appends d to the underlying bag.
func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// ReportError is a shorthand for emitting an error-severity diagnostic.
func ReportError(r Reporter, primary source.Span, msg string) Diagnostic {
	d := New(SevError, primary, msg)
	if r != nil {
		r.Report(d)
	}
	return d
}

// ReportNote is a shorthand for emitting a note-severity diagnostic.
func ReportNote(r Reporter, primary source.Span, msg string) Diagnostic {
	d := New(SevNote, primary, msg)
	if r != nil {
		r.Report(d)
	}
	return d
}

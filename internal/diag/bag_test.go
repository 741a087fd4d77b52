package diag

import (
	"testing"

	"github.com/SparkyPotato/Wave/internal/source"
)

func TestBagOrderAndLen(t *testing.T) {
	b := NewBag(0)
	sp := source.Span{File: "a.wv", Pos: 0, Length: 1}
	b.Add(New(SevError, sp, "first"))
	b.Add(New(SevWarning, sp, "second"))

	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	items := b.Items()
	if items[0].Message != "first" || items[1].Message != "second" {
		t.Fatalf("Items() out of emission order: %+v", items)
	}
}

func TestBagHasErrorsAndWarnings(t *testing.T) {
	sp := source.Span{File: "a.wv", Pos: 0, Length: 1}

	warnOnly := NewBag(0)
	warnOnly.Add(New(SevWarning, sp, "w"))
	if warnOnly.HasErrors() {
		t.Fatalf("warning-only bag reported HasErrors")
	}
	if !warnOnly.HasWarnings() {
		t.Fatalf("warning-only bag should report HasWarnings")
	}

	withError := NewBag(0)
	withError.Add(New(SevError, sp, "e"))
	if !withError.HasErrors() {
		t.Fatalf("error bag should report HasErrors")
	}
	if !withError.HasWarnings() {
		t.Fatalf("HasWarnings should be true once severity >= SevWarning (SevError included)")
	}
}

func TestBagMerge(t *testing.T) {
	sp := source.Span{File: "a.wv", Pos: 0, Length: 1}
	a := NewBag(0)
	a.Add(New(SevError, sp, "a1"))
	b := NewBag(0)
	b.Add(New(SevNote, sp, "b1"))

	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("Len() after merge = %d, want 2", a.Len())
	}
	if a.Items()[1].Message != "b1" {
		t.Fatalf("Merge did not preserve relative order")
	}

	// Merge of a nil bag is a no-op, not a panic.
	a.Merge(nil)
	if a.Len() != 2 {
		t.Fatalf("Merge(nil) changed Len() to %d", a.Len())
	}
}

func TestDiagnosticWithNote(t *testing.T) {
	sp := source.Span{File: "a.wv", Pos: 0, Length: 1}
	d := New(SevError, sp, "bad thing")
	d = d.WithNote(sp, "consider this")

	if len(d.Notes) != 1 || d.Notes[0].Msg != "consider this" {
		t.Fatalf("WithNote did not attach note: %+v", d.Notes)
	}
}

func TestBagReporter(t *testing.T) {
	bag := NewBag(0)
	r := BagReporter{Bag: bag}
	sp := source.Span{File: "a.wv", Pos: 0, Length: 1}

	ReportError(r, sp, "oops")
	ReportNote(r, sp, "a note")

	if bag.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", bag.Len())
	}
	if bag.Items()[0].Severity != SevError {
		t.Fatalf("first diagnostic severity = %v, want SevError", bag.Items()[0].Severity)
	}
	if bag.Items()[1].Severity != SevNote {
		t.Fatalf("second diagnostic severity = %v, want SevNote", bag.Items()[1].Severity)
	}
}

func TestBagReporterNilBag(t *testing.T) {
	r := BagReporter{}
	// Must not panic when the underlying bag is nil.
	r.Report(New(SevError, source.Span{}, "discarded"))
}

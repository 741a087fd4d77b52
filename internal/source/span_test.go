package source

import "testing"

func TestSpanEnd(t *testing.T) {
	sp := Span{File: "a.wv", Pos: 10, Length: 5}
	if got := sp.End(); got != 15 {
		t.Fatalf("End() = %d, want 15", got)
	}
}

func TestSpanEmpty(t *testing.T) {
	if !(Span{File: "a.wv", Pos: 0, Length: 0}).Empty() {
		t.Fatalf("zero-length span should be Empty")
	}
	if (Span{File: "a.wv", Pos: 0, Length: 1}).Empty() {
		t.Fatalf("length-1 span should not be Empty")
	}
}

func TestSpanCoverSameFile(t *testing.T) {
	a := Span{File: "a.wv", Pos: 4, Length: 2}  // [4,6)
	b := Span{File: "a.wv", Pos: 10, Length: 3} // [10,13)

	got := a.Cover(b)
	want := Span{File: "a.wv", Pos: 4, Length: 9} // [4,13)
	if got != want {
		t.Fatalf("Cover() = %+v, want %+v", got, want)
	}

	// Cover is symmetric regardless of argument order.
	got2 := b.Cover(a)
	if got2 != want {
		t.Fatalf("b.Cover(a) = %+v, want %+v", got2, want)
	}
}

func TestSpanCoverOverlapping(t *testing.T) {
	a := Span{File: "a.wv", Pos: 0, Length: 10} // [0,10)
	b := Span{File: "a.wv", Pos: 5, Length: 10} // [5,15)
	want := Span{File: "a.wv", Pos: 0, Length: 15}
	if got := a.Cover(b); got != want {
		t.Fatalf("Cover() = %+v, want %+v", got, want)
	}
}

func TestSpanCoverDifferentFiles(t *testing.T) {
	a := Span{File: "a.wv", Pos: 0, Length: 5}
	b := Span{File: "b.wv", Pos: 0, Length: 5}
	if got := a.Cover(b); got != a {
		t.Fatalf("Cover() across files = %+v, want unchanged %+v", got, a)
	}
}

func TestSpanString(t *testing.T) {
	sp := Span{File: "a.wv", Pos: 3, Length: 4}
	if got, want := sp.String(), "a.wv:3+4"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

package charta

import (
	"testing"
)

func TestSpan(t *testing.T) {
	s := Span{3, 7}
	if s.From() != 3 || s.To() != 7 {
		t.Errorf("span bounds are (%d…%d)", s.From(), s.To())
	}
	if s.Len() != 4 {
		t.Errorf("span length is %d, expected 4", s.Len())
	}
	if s.IsNull() {
		t.Error("non-empty span reported as null")
	}
	if !(Span{}).IsNull() {
		t.Error("zero span should be null")
	}
	if s.String() != "(3…7)" {
		t.Errorf("span prints as %s", s)
	}
}

func TestSpanExtend(t *testing.T) {
	s := Span{2, 4}
	e := s.Extend(Span{3, 9})
	if e != (Span{2, 9}) {
		t.Errorf("extended span is %s, expected (2…9)", e)
	}
	e = s.Extend(Span{0, 3})
	if e != (Span{0, 4}) {
		t.Errorf("extended span is %s, expected (0…4)", e)
	}
	if s != (Span{2, 4}) {
		t.Error("Extend must not modify the receiver")
	}
}

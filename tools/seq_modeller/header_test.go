package seq_modeller

import (
	"strings"
	"testing"
)

func TestSequenceIDAndHeader(t *testing.T) {
	id := SequenceID("chr", 3, 4)
	if id != "chr0003" {
		t.Fatalf("SequenceID = %q, want chr0003", id)
	}
	if h := Header(id, strings.Repeat("A", 120)); h != ">chr0003 [length=120]" {
		t.Fatalf("Header = %q", h)
	}
	if id := SequenceID("x", 12345, 2); id != "x12345" {
		t.Errorf("padding must not truncate, got %q", id)
	}
	if id := SequenceID("x", 7, 0); id != "x7" {
		t.Errorf("zero padding, got %q", id)
	}
}

func TestWrap(t *testing.T) {
	cases := []struct {
		seq   string
		width int
		want  string
	}{
		{"ACGTACGTAC", 4, "ACGT\nACGT\nAC"},
		{"ACGTACGT", 4, "ACGT\nACGT"},
		{"ACGTACGTAC", 0, "ACGTACGTAC"},
		{"ACG", 70, "ACG"},
		{"", 4, ""},
	}
	for _, c := range cases {
		if got := Wrap(c.seq, c.width); got != c.want {
			t.Errorf("Wrap(%q, %d) = %q, want %q", c.seq, c.width, got, c.want)
		}
	}
}

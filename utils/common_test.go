package common

import (
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type record struct{ id, seq string }

func collect(t *testing.T, data []byte) []record {
	t.Helper()
	var out []record
	err := StreamFasta(bytes.NewReader(data), func(id, seq string) error {
		out = append(out, record{id, seq})
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return out
}

const sample = ">x0001 [length=10]\nACGT\nACGT\nAC\n>x0002 [length=0]\n\n>x0003 [length=3]\nTTT\n"

func TestStreamFastaJoinsWrappedLines(t *testing.T) {
	got := collect(t, []byte(sample))
	want := []record{
		{"x0001 [length=10]", "ACGTACGTAC"},
		{"x0002 [length=0]", ""},
		{"x0003 [length=3]", "TTT"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestStreamFastaGzip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	gz.Write([]byte(sample))
	gz.Close()

	if got := collect(t, buf.Bytes()); len(got) != 3 || got[0].seq != "ACGTACGTAC" {
		t.Fatalf("unexpected gzip records: %+v", got)
	}
}

func TestStreamFastaHandlerError(t *testing.T) {
	stop := errors.New("stop")
	err := StreamFasta(strings.NewReader(sample), func(id, seq string) error { return stop })
	if !errors.Is(err, stop) {
		t.Fatalf("expected handler error to propagate, got %v", err)
	}
}

func TestStreamFastaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fasta")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	n := 0
	if err := StreamFastaFile(path, func(string, string) error { n++; return nil }); err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("got %d records, want 3", n)
	}
}

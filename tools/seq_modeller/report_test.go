package seq_modeller

import (
	"strings"
	"testing"
)

func TestProportionsUniform(t *testing.T) {
	seq := strings.Repeat("ACGT", 25)
	r := BuildReport("u", []string{seq}, nil)
	for _, sym := range []byte("ATCG") {
		if p := r.Proportion(sym); p != 0.25 {
			t.Errorf("proportion of %c = %v, want 0.25", sym, p)
		}
	}
	if r.SequenceCount != 1 || r.AveLen != 100 || r.SdLen != 0 {
		t.Errorf("unexpected summary: %+v", r)
	}
}

func TestLengthStatistics(t *testing.T) {
	var seqs []string
	for _, n := range []int{2, 4, 4, 4, 5, 5, 7, 9} {
		seqs = append(seqs, strings.Repeat("A", n))
	}
	r := BuildReport("s", seqs, nil)
	if r.AveLen != 5 {
		t.Errorf("mean = %v, want 5", r.AveLen)
	}
	if got := formatNum(r.SdLen); got != "2.14" {
		t.Errorf("sample stdev = %v (%s), want 2.14", r.SdLen, got)
	}
	if empty := BuildReport("e", nil, nil); empty.AveLen != 0 || empty.SdLen != 0 || empty.Proportions != nil {
		t.Errorf("empty batch report: %+v", empty)
	}
}

func TestUsageCollapsesIdenticalText(t *testing.T) {
	used := Pool{
		{Text: "CAGCAG", Kind: KindRepeat},
		{Text: "ACGT", Kind: KindInsert, GapCount: 1, MutationCount: 2},
		{Text: "CAG", Kind: KindRepeat},
		{Text: "ACGT", Kind: KindInsert, GapCount: 3, MutationCount: 0},
		{Text: "CAGCAG", Kind: KindRepeat},
	}
	r := BuildReport("u", []string{"A"}, used)
	if len(r.Repeats) != 2 || r.Repeats[0] != (Usage{Text: "CAGCAG", Count: 2}) || r.Repeats[1].Text != "CAG" {
		t.Fatalf("repeats = %+v", r.Repeats)
	}
	if len(r.Inserts) != 1 || r.Inserts[0] != (Usage{Text: "ACGT", Count: 2, Gaps: 3, Mutations: 0}) {
		t.Fatalf("inserts = %+v", r.Inserts)
	}
}

func TestRender(t *testing.T) {
	rr := RunReport{
		Seed: 7,
		Batches: []BatchReport{{
			BaseID:        "x",
			SequenceCount: 2,
			Proportions:   []SymbolShare{{'A', 0.5}, {'C', 0.25}, {'G', 0.2}, {'N', 0.05}},
			Inserts:       []Usage{{Text: "AC", Count: 2, Gaps: 1}},
			Repeats:       []Usage{{Text: "CAGCAG", Count: 1}},
			AveLen:        5,
			SdLen:         1.41421,
		}},
	}
	want := strings.Join([]string{
		"SEED",
		"\t7",
		"BATCH",
		"\tn\tid\tA\tT\tC\tG\tN\tave_len\tsd_len",
		"\t2\tx\t0.5\t0\t0.25\t0.2\t0.05\t5\t1.41",
		"INSERTS",
		"\tn\tlen\tmut\tgaps\tsequence",
		"\t2\t2\t0\t1\tAC",
		"REPEATS",
		"\tn\tlen\tsequence",
		"\t1\t6\tCAGCAG",
	}, "\n") + "\n"
	if got := rr.Render(); got != want {
		t.Fatalf("Render mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

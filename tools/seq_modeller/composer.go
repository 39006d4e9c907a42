package seq_modeller

import "strings"

type InsertionKind int

const (
	KindRepeat InsertionKind = iota
	KindInsert
)

// Insertion is one pooled fragment waiting to be spliced into a base
// sequence. Gap and mutation counts are zero for repeats.
type Insertion struct {
	Text          string
	Kind          InsertionKind
	GapCount      int
	MutationCount int
}

// Pool is a batch's repeat+insert pool. Compose takes ownership of it.
type Pool []Insertion

// NewPool orders repeats before inserts, each in generation order.
func NewPool(repeats []string, inserts []InsertInstance) Pool {
	pool := make(Pool, 0, len(repeats)+len(inserts))
	for _, r := range repeats {
		pool = append(pool, Insertion{Text: r, Kind: KindRepeat})
	}
	for _, ins := range inserts {
		pool = append(pool, Insertion{
			Text:          ins.Sequence,
			Kind:          KindInsert,
			GapCount:      ins.GapCount,
			MutationCount: ins.MutationCount,
		})
	}
	return pool
}

// Compose splices the pool into the base sequences. Each base takes a
// uniform number of pooled items sampled without replacement; the last base
// takes whatever is left, so with at least one base every item is used
// exactly once. With no bases the pool is dropped.
func Compose(bases []string, pool Pool, s *Stream) []string {
	remaining := make(Pool, len(pool))
	copy(remaining, pool)

	out := make([]string, len(bases))
	for i, base := range bases {
		var picked []int
		switch {
		case len(remaining) == 0:
		case i == len(bases)-1:
			picked = s.Sample(len(remaining), len(remaining))
		default:
			k := s.IntRange(0, len(remaining))
			picked = s.Sample(len(remaining), k)
		}

		chosen := make([]string, len(picked))
		for j, p := range picked {
			chosen[j] = remaining[p].Text
		}
		out[i] = splice(base, chosen, s)
		remaining = without(remaining, picked)
	}
	return out
}

// splice inserts each item at a uniform index of the growing target, in
// order. An empty target becomes the plain concatenation.
func splice(target string, items []string, s *Stream) string {
	if target == "" {
		return strings.Join(items, "")
	}
	cur := []byte(target)
	for _, item := range items {
		at := s.IntN(len(cur))
		grown := make([]byte, 0, len(cur)+len(item))
		grown = append(grown, cur[:at]...)
		grown = append(grown, item...)
		grown = append(grown, cur[at:]...)
		cur = grown
	}
	return string(cur)
}

func without(pool Pool, picked []int) Pool {
	if len(picked) == 0 {
		return pool
	}
	drop := make(map[int]bool, len(picked))
	for _, p := range picked {
		drop[p] = true
	}
	kept := make(Pool, 0, len(pool)-len(picked))
	for i, item := range pool {
		if !drop[i] {
			kept = append(kept, item)
		}
	}
	return kept
}

package seq_modeller

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// InsertInstance is one split, gap-filled and mutated copy of an insert
// fragment.
type InsertInstance struct {
	Sequence      string
	Segments      []string // pre-gap pieces, concatenating to the source fragment
	GapCount      int
	MutationCount int
}

// GenerateInserts produces `total` instances of every insert of the batch,
// in configuration order.
func GenerateInserts(batch *BatchSpec, table *symbolTable, s *Stream) ([]InsertInstance, error) {
	var pool []InsertInstance
	for i, ins := range batch.Inserts {
		for n := 0; n < ins.Total; n++ {
			inst, err := generateInsert(ins, table, s)
			if err != nil {
				if de, ok := err.(*DomainError); ok {
					de.BaseID = batch.BaseID
					de.Detail = fmt.Sprintf("inserts[%d]: %s", i, de.Detail)
				}
				return nil, err
			}
			pool = append(pool, inst)
		}
	}
	return pool, nil
}

func generateInsert(ins InsertSpec, table *symbolTable, s *Stream) (InsertInstance, error) {
	// Rejected before any draw is made for this instance.
	if ins.MutationRate >= 1 {
		return InsertInstance{}, &DomainError{
			Kind:   ErrInvalidMutationRate,
			Detail: fmt.Sprintf("mutation_rate is %g", ins.MutationRate),
		}
	}

	segments, err := splitFragment(ins.Sequence, ins.MinSplit, ins.MaxSplit, s)
	if err != nil {
		return InsertInstance{}, err
	}
	gaps := len(segments) - 1

	lengths := make([]int, gaps)
	for i := range lengths {
		lengths[i] = gapLength(ins.AveGap, ins.SdGap, s)
	}
	fills := make([]string, gaps)
	for i, n := range lengths {
		fills[i] = table.fill(n)
	}

	var sb strings.Builder
	for i, seg := range segments {
		sb.WriteString(seg)
		if i < gaps {
			sb.WriteString(fills[i])
		}
	}

	mutated, count := mutate(sb.String(), ins.MutationRate, table, s)
	return InsertInstance{
		Sequence:      mutated,
		Segments:      segments,
		GapCount:      gaps,
		MutationCount: count,
	}, nil
}

// splitFragment cuts seq at a uniform number of distinct interior positions
// drawn from [1, len(seq)-2].
func splitFragment(seq string, minSplit, maxSplit int, s *Stream) ([]string, error) {
	n := s.IntRange(minSplit, maxSplit)
	available := len(seq) - 2
	if available < 0 {
		available = 0
	}
	if n > available {
		return nil, &DomainError{
			Kind:   ErrUnsatisfiableSplit,
			Detail: fmt.Sprintf("%d splits requested, %q has %d cut points", n, seq, available),
		}
	}

	cuts := s.Sample(available, n)
	for i := range cuts {
		cuts[i]++
	}
	slices.Sort(cuts)

	segments := make([]string, 0, n+1)
	prev := 0
	for _, c := range cuts {
		segments = append(segments, seq[prev:c])
		prev = c
	}
	return append(segments, seq[prev:]), nil
}

// gapLength rounds a normal draw up. Negative draws are clamped to zero.
func gapLength(ave, sd float64, s *Stream) int {
	n := int(math.Ceil(s.Normal(ave, sd)))
	if n < 0 {
		return 0
	}
	return n
}

// mutate redraws each position from the composition table with probability
// rate. A redraw may land on the original symbol and still counts.
func mutate(seq string, rate float64, table *symbolTable, s *Stream) (string, int) {
	if rate == 0 {
		return seq, 0
	}
	out := []byte(seq)
	count := 0
	for i := range out {
		if s.Float64() < rate {
			out[i] = table.draw()
			count++
		}
	}
	return string(out), count
}

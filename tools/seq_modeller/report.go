package seq_modeller

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// reportSymbols always get a column, even when never observed.
var reportSymbols = []byte{'A', 'T', 'C', 'G'}

type SymbolShare struct {
	Symbol   byte
	Fraction float64 // rounded to two decimals
}

// Usage counts textually identical pool items as one entry. Gaps and
// Mutations come from the last generated item with that text.
type Usage struct {
	Text      string
	Count     int
	Gaps      int
	Mutations int
}

type BatchReport struct {
	BaseID        string
	SequenceCount int
	Proportions   []SymbolShare // sorted by symbol
	Inserts       []Usage       // first-appearance order
	Repeats       []Usage
	AveLen        float64
	SdLen         float64
}

// Proportion returns the observed fraction of sym, 0 when absent.
func (r *BatchReport) Proportion(sym byte) float64 {
	for _, p := range r.Proportions {
		if p.Symbol == sym {
			return p.Fraction
		}
	}
	return 0
}

type RunReport struct {
	Seed    int64
	Batches []BatchReport
}

// BuildReport summarizes a batch from its final sequences and the pool that
// was spliced into them.
func BuildReport(baseID string, sequences []string, used Pool) BatchReport {
	r := BatchReport{
		BaseID:        baseID,
		SequenceCount: len(sequences),
		Proportions:   proportions(sequences),
	}

	lengths := make([]float64, len(sequences))
	for i, s := range sequences {
		lengths[i] = float64(len(s))
	}
	if len(lengths) > 0 {
		r.AveLen = stat.Mean(lengths, nil)
	}
	if len(lengths) > 1 {
		r.SdLen = stat.StdDev(lengths, nil)
	}

	r.Inserts = tally(used, KindInsert)
	r.Repeats = tally(used, KindRepeat)
	return r
}

func proportions(sequences []string) []SymbolShare {
	var counts [256]int
	total := 0
	for _, s := range sequences {
		for i := 0; i < len(s); i++ {
			counts[s[i]]++
		}
		total += len(s)
	}
	if total == 0 {
		return nil
	}
	var out []SymbolShare
	for sym, n := range counts {
		if n == 0 {
			continue
		}
		out = append(out, SymbolShare{Symbol: byte(sym), Fraction: round2(float64(n) / float64(total))})
	}
	return out
}

func tally(pool Pool, kind InsertionKind) []Usage {
	var out []Usage
	index := make(map[string]int)
	for _, item := range pool {
		if item.Kind != kind {
			continue
		}
		i, ok := index[item.Text]
		if !ok {
			i = len(out)
			index[item.Text] = i
			out = append(out, Usage{Text: item.Text})
		}
		out[i].Count++
		out[i].Gaps = item.GapCount
		out[i].Mutations = item.MutationCount
	}
	return out
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func formatNum(x float64) string {
	return strconv.FormatFloat(round2(x), 'f', -1, 64)
}

// columns lists A, T, C, G and then any other observed symbol.
func (r *BatchReport) columns() []byte {
	cols := slices.Clone(reportSymbols)
	for _, p := range r.Proportions {
		if !slices.Contains(cols, p.Symbol) {
			cols = append(cols, p.Symbol)
		}
	}
	return cols
}

// Render produces the tab separated report, one line per entry.
func (rr *RunReport) Render() string {
	var sb strings.Builder
	line := func(indent bool, fields ...string) {
		if indent {
			sb.WriteByte('\t')
		}
		sb.WriteString(strings.Join(fields, "\t"))
		sb.WriteByte('\n')
	}

	line(false, "SEED")
	line(true, strconv.FormatInt(rr.Seed, 10))
	for i := range rr.Batches {
		b := &rr.Batches[i]
		cols := b.columns()

		line(false, "BATCH")
		head := []string{"n", "id"}
		row := []string{strconv.Itoa(b.SequenceCount), b.BaseID}
		for _, c := range cols {
			head = append(head, string(c))
			row = append(row, formatNum(b.Proportion(c)))
		}
		head = append(head, "ave_len", "sd_len")
		row = append(row, formatNum(b.AveLen), formatNum(b.SdLen))
		line(true, head...)
		line(true, row...)

		line(false, "INSERTS")
		line(true, "n", "len", "mut", "gaps", "sequence")
		for _, u := range b.Inserts {
			line(true, strconv.Itoa(u.Count), strconv.Itoa(len(u.Text)),
				strconv.Itoa(u.Mutations), strconv.Itoa(u.Gaps), u.Text)
		}

		line(false, "REPEATS")
		line(true, "n", "len", "sequence")
		for _, u := range b.Repeats {
			line(true, strconv.Itoa(u.Count), strconv.Itoa(len(u.Text)), u.Text)
		}
	}
	return sb.String()
}

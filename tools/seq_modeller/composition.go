package seq_modeller

import (
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// symbolTable draws symbols with probability proportional to the batch's
// composition weights.
type symbolTable struct {
	symbols []byte
	dist    distuv.Categorical
}

func newSymbolTable(c Composition, s *Stream) *symbolTable {
	symbols := make([]byte, len(c))
	for i, w := range c {
		symbols[i] = w.Symbol
	}
	return &symbolTable{
		symbols: symbols,
		dist:    distuv.NewCategorical(c.weights(), s.src),
	}
}

func (t *symbolTable) draw() byte {
	return t.symbols[int(t.dist.Rand())]
}

// fill returns n independent draws; n <= 0 yields an empty string.
func (t *symbolTable) fill(n int) string {
	if n <= 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(t.draw())
	}
	return sb.String()
}

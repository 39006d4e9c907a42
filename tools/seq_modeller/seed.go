package seq_modeller

import (
	"math/rand/v2"
	"strconv"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// streamSelector is the fixed PCG stream used for every run; only the seed
// varies between runs.
const streamSelector uint64 = 0x9e3779b97f4a7c15

// ResolveSeed picks the run seed: an explicit override wins, then the
// configured seed, then a freshly derived one.
func ResolveSeed(override *int64, cfg *Configuration) int64 {
	if override != nil {
		return *override
	}
	if cfg != nil && cfg.Seed != nil {
		return *cfg.Seed
	}
	return deriveSeed()
}

// deriveSeed shuffles the digits of the wall clock and adds an auxiliary
// draw, so two runs started in the same microsecond still differ.
func deriveSeed() int64 {
	digits := []byte(strconv.FormatInt(time.Now().UnixMicro(), 10))
	rand.Shuffle(len(digits), func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })
	n, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		n = time.Now().UnixNano()
	}
	return n + 50 + rand.Int64N(10_000_000-50)
}

// Stream is the single seeded random stream of a run. Every synthesizer and
// every gonum distribution reads from the same PCG source, so the order of
// calls fully determines the output.
type Stream struct {
	src rand.Source
	rnd *rand.Rand
}

func NewStream(seed int64) *Stream {
	src := rand.NewPCG(uint64(seed), streamSelector)
	return &Stream{src: src, rnd: rand.New(src)}
}

// Float64 returns a uniform draw in [0, 1).
func (s *Stream) Float64() float64 {
	return s.rnd.Float64()
}

// IntRange returns a uniform integer in [lo, hi], both inclusive.
func (s *Stream) IntRange(lo, hi int) int {
	return lo + s.rnd.IntN(hi-lo+1)
}

// IntN returns a uniform integer in [0, n).
func (s *Stream) IntN(n int) int {
	return s.rnd.IntN(n)
}

// Normal draws from N(mu, sigma).
func (s *Stream) Normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: s.src}.Rand()
}

// Sample picks k distinct indices out of [0, n) without replacement and
// returns them in selection order.
func (s *Stream) Sample(n, k int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + s.rnd.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

package seq_modeller

import "strings"

// GenerateRepeats runs one Bernoulli trial per planned sequence for every
// repeat of the batch. Each success yields the pattern repeated a uniform
// number of times within [pattern_min_reps, pattern_max_reps].
func GenerateRepeats(batch *BatchSpec, s *Stream) []string {
	var pool []string
	for _, rep := range batch.Repeats {
		for i := 0; i < batch.Generate; i++ {
			if s.Float64() >= rep.Likelihood {
				continue
			}
			n := s.IntRange(rep.PatternMinReps, rep.PatternMaxReps)
			pool = append(pool, strings.Repeat(rep.Pattern, n))
		}
	}
	return pool
}

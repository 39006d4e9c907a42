package seq_modeller

// GenerateNucleotides returns exactly `generate` raw sequences, each with a
// uniform length in [min_len, max_len].
func GenerateNucleotides(batch *BatchSpec, table *symbolTable, s *Stream) []string {
	seqs := make([]string, batch.Generate)
	for i := range seqs {
		seqs[i] = table.fill(s.IntRange(batch.MinLen, batch.MaxLen))
	}
	return seqs
}

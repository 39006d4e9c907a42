package seq_modeller

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"seq_modeller_go/logger"
)

// Generator runs one reproducible generation over a configuration.
type Generator struct {
	cfg    *Configuration
	seed   int64
	stream *Stream
}

// NewGenerator validates cfg and resolves the run seed. override, when not
// nil, takes precedence over the configured seed.
func NewGenerator(cfg *Configuration, override *int64) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := ResolveSeed(override, cfg)
	return &Generator{cfg: cfg, seed: seed, stream: NewStream(seed)}, nil
}

func (g *Generator) Seed() int64 { return g.seed }

// BatchResult holds the final sequences of one base_id in generation order.
type BatchResult struct {
	BaseID    string
	Sequences []string
}

type Result struct {
	Config  *Configuration
	Seed    int64
	Batches []BatchResult
	Report  RunReport
}

// Run generates every batch in configuration order. For each batch the
// stream is consumed by repeats, inserts, nucleotides and then the composer;
// changing that order changes every seeded output.
func (g *Generator) Run() (*Result, error) {
	res := &Result{
		Config: g.cfg,
		Seed:   g.seed,
		Report: RunReport{Seed: g.seed},
	}
	for i := range g.cfg.Batches {
		batch := &g.cfg.Batches[i]
		seqs, used, err := g.runBatch(batch)
		if err != nil {
			return nil, err
		}
		res.Batches = append(res.Batches, BatchResult{BaseID: batch.BaseID, Sequences: seqs})
		res.Report.Batches = append(res.Report.Batches, BuildReport(batch.BaseID, seqs, used))
	}
	return res, nil
}

func (g *Generator) runBatch(batch *BatchSpec) ([]string, Pool, error) {
	table := newSymbolTable(batch.Proportion, g.stream)

	repeats := GenerateRepeats(batch, g.stream)
	inserts, err := GenerateInserts(batch, table, g.stream)
	if err != nil {
		return nil, nil, err
	}
	bases := GenerateNucleotides(batch, table, g.stream)

	pool := NewPool(repeats, inserts)
	logger.Debug("Batch pool ready",
		zap.String("base_id", batch.BaseID),
		zap.Int("repeats", len(repeats)),
		zap.Int("inserts", len(inserts)),
		zap.Int("sequences", len(bases)))

	if len(bases) == 0 {
		if len(pool) > 0 {
			logger.Warn("Discarding pool of batch with generate=0",
				zap.String("base_id", batch.BaseID),
				zap.Int("pool_size", len(pool)))
		}
		return bases, pool, nil
	}
	return Compose(bases, pool, g.stream), pool, nil
}

// WriteFASTA writes one record per final sequence, batches in order.
func (r *Result) WriteFASTA(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, b := range r.Batches {
		for i, seq := range b.Sequences {
			id := SequenceID(b.BaseID, i+1, r.Config.IDPadding)
			if _, err := fmt.Fprintf(bw, "%s\n%s\n", Header(id, seq), Wrap(seq, r.Config.SeqWrap)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func (r *Result) FASTA() string {
	var sb strings.Builder
	_ = r.WriteFASTA(&sb)
	return sb.String()
}

func (r *Result) ReportText() string {
	return r.Report.Render()
}

func (r *Result) ConfigEcho() ([]byte, error) {
	return EchoConfig(r.Config, r.Seed)
}

// SequenceCount is the number of final sequences over all batches.
func (r *Result) SequenceCount() int {
	n := 0
	for _, b := range r.Batches {
		n += len(b.Sequences)
	}
	return n
}

package sanity_check

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"seq_modeller_go/config" // Version control file
	"seq_modeller_go/tools/seq_modeller"
	common "seq_modeller_go/utils"
)

// builtinConfig is small enough to run in milliseconds and still exercises
// repeats, split inserts, gaps and mutations.
const builtinConfig = `{
	"id_padding": 4,
	"seq_wrap": 70,
	"seed": 1637,
	"sequences": [
		{
			"base_id": "chr",
			"generate": 12,
			"min_len": 80,
			"max_len": 160,
			"repeats": [
				{"likelihood": 0.5, "pattern": "CAG", "pattern_min_reps": 2, "pattern_max_reps": 6}
			],
			"inserts": [
				{"total": 4, "min_split": 1, "max_split": 3, "ave_gap": 3, "sd_gap": 1,
				 "mutation_rate": 0.05, "sequence": "ATGGCCATTGTAATGGGCCGCTGAAAGGGTGCCCGATAG"}
			]
		},
		{
			"base_id": "plasmid",
			"generate": 3,
			"min_len": 40,
			"max_len": 40,
			"proportion": {"A": 0.1, "T": 0.1, "C": 0.4, "G": 0.4}
		}
	]
}`

var headerPattern = regexp.MustCompile(`^(\S+) \[length=(\d+)\]$`)

// Check generates the built-in configuration twice, re-reads the FASTA and
// verifies record count, header lengths and determinism.
func Check() error {
	cfg, err := seq_modeller.ParseConfig([]byte(builtinConfig))
	if err != nil {
		return err
	}
	first, err := generate(cfg)
	if err != nil {
		return err
	}
	second, err := generate(cfg)
	if err != nil {
		return err
	}
	if first.FASTA() != second.FASTA() || first.ReportText() != second.ReportText() {
		return fmt.Errorf("seeded runs differ")
	}

	want := 0
	for _, b := range cfg.Batches {
		want += b.Generate
	}
	n := 0
	err = common.StreamFasta(strings.NewReader(first.FASTA()), func(id, seq string) error {
		n++
		m := headerPattern.FindStringSubmatch(id)
		if m == nil {
			return fmt.Errorf("malformed header %q", id)
		}
		length, _ := strconv.Atoi(m[2])
		if length != len(seq) {
			return fmt.Errorf("%s: header says %d, sequence has %d", m[1], length, len(seq))
		}
		return nil
	})
	if err != nil {
		return err
	}
	if n != want {
		return fmt.Errorf("read %d records, expected %d", n, want)
	}
	return nil
}

func generate(cfg *seq_modeller.Configuration) (*seq_modeller.Result, error) {
	gen, err := seq_modeller.NewGenerator(cfg, nil)
	if err != nil {
		return nil, err
	}
	return gen.Run()
}

// Run performs a simple sanity check to ensure the seq modeller is
// running properly printing helpful message and version number.
func Run(args []string) {
	if err := Check(); err != nil {
		fmt.Fprintf(os.Stderr, "Sanity check failed (%s): %v\n", config.Main_version, err)
		os.Exit(1)
	}
	fmt.Printf("Successfully running Seq Modeller! (%s)\n", config.Main_version)
}

package seq_modeller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Weight is one entry of a composition table.
type Weight struct {
	Symbol   byte
	Fraction float64
}

// Composition keeps the symbols in document order; that order is the order
// of the categories in every weighted draw, so it is part of reproducibility.
type Composition []Weight

// DefaultComposition is the uniform A/T/C/G table used when a batch has no
// "proportion" entry.
func DefaultComposition() Composition {
	return Composition{{'A', 0.25}, {'T', 0.25}, {'C', 0.25}, {'G', 0.25}}
}

func (c Composition) weights() []float64 {
	w := make([]float64, len(c))
	for i, e := range c {
		w[i] = e.Fraction
	}
	return w
}

func (c Composition) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(e.Symbol))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Fraction)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *Composition) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected an object of symbol weights")
	}
	var out Composition
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)
		if len(key) != 1 {
			return fmt.Errorf("symbol %q must be a single character", key)
		}
		var f float64
		if err := dec.Decode(&f); err != nil {
			return fmt.Errorf("weight of %q: %w", key, err)
		}
		out = append(out, Weight{Symbol: key[0], Fraction: f})
	}
	*c = out
	return nil
}

type RepeatSpec struct {
	Likelihood     float64 `json:"likelihood"`
	Pattern        string  `json:"pattern"`
	PatternMaxReps int     `json:"pattern_max_reps"`
	PatternMinReps int     `json:"pattern_min_reps"`
}

type InsertSpec struct {
	Total        int     `json:"total"`
	MinSplit     int     `json:"min_split"`
	MaxSplit     int     `json:"max_split"`
	AveGap       float64 `json:"ave_gap"`
	SdGap        float64 `json:"sd_gap"`
	MutationRate float64 `json:"mutation_rate"`
	Sequence     string  `json:"sequence"`
}

// BatchSpec describes every sequence generated under one base_id.
type BatchSpec struct {
	BaseID     string       `json:"base_id"`
	Generate   int          `json:"generate"`
	MaxLen     int          `json:"max_len"`
	MinLen     int          `json:"min_len"`
	Proportion Composition  `json:"proportion"`
	Repeats    []RepeatSpec `json:"repeats"`
	Inserts    []InsertSpec `json:"inserts"`
}

// Configuration is the validated run configuration. It is not modified once
// a Generator has been built from it.
type Configuration struct {
	IDPadding int
	SeqWrap   int    // 0 disables wrapping
	Seed      *int64 // nil when unset
	Batches   []BatchSpec
}

// Batch returns the batch registered under baseID.
func (c *Configuration) Batch(baseID string) (*BatchSpec, bool) {
	for i := range c.Batches {
		if c.Batches[i].BaseID == baseID {
			return &c.Batches[i], true
		}
	}
	return nil, false
}

// Proportion returns the composition table of baseID.
func (c *Configuration) Proportion(baseID string) (Composition, bool) {
	b, ok := c.Batch(baseID)
	if !ok {
		return nil, false
	}
	return b.Proportion, true
}

// LoadConfig reads and parses a JSON configuration file.
func LoadConfig(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a JSON configuration document, fills per-batch
// defaults and validates the result.
func ParseConfig(data []byte) (*Configuration, error) {
	root, err := asObject(json.RawMessage(data), "config")
	if err != nil {
		return nil, err
	}

	cfg := &Configuration{}
	if cfg.IDPadding, err = root.intField("id_padding"); err != nil {
		return nil, err
	}
	if cfg.SeqWrap, err = root.wrapField("seq_wrap"); err != nil {
		return nil, err
	}
	if cfg.Seed, err = root.seedField("seed"); err != nil {
		return nil, err
	}

	entries, err := root.listField("sequences", true)
	if err != nil {
		return nil, err
	}
	for i, raw := range entries {
		b, err := parseBatch(raw, fmt.Sprintf("sequences[%d]", i))
		if err != nil {
			return nil, err
		}
		cfg.Batches = append(cfg.Batches, b)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseBatch(raw json.RawMessage, path string) (BatchSpec, error) {
	var b BatchSpec
	obj, err := asObject(raw, path)
	if err != nil {
		return b, err
	}
	if b.BaseID, err = obj.stringField("base_id"); err != nil {
		return b, err
	}
	if b.Generate, err = obj.intField("generate"); err != nil {
		return b, err
	}
	if b.MaxLen, err = obj.intField("max_len"); err != nil {
		return b, err
	}
	if b.MinLen, err = obj.intField("min_len"); err != nil {
		return b, err
	}

	b.Proportion = DefaultComposition()
	if v, ok := obj.present("proportion"); ok {
		var c Composition
		if err := json.Unmarshal(v, &c); err != nil {
			return b, configErr(path+".proportion", "%v", err)
		}
		b.Proportion = c
	}

	repeats, err := obj.listField("repeats", false)
	if err != nil {
		return b, err
	}
	for i, r := range repeats {
		rp := fmt.Sprintf("%s.repeats[%d]", path, i)
		o, err := asObject(r, rp)
		if err != nil {
			return b, err
		}
		var rep RepeatSpec
		if rep.Likelihood, err = o.floatField("likelihood"); err != nil {
			return b, err
		}
		if rep.Pattern, err = o.stringField("pattern"); err != nil {
			return b, err
		}
		if rep.PatternMaxReps, err = o.intField("pattern_max_reps"); err != nil {
			return b, err
		}
		if rep.PatternMinReps, err = o.intField("pattern_min_reps"); err != nil {
			return b, err
		}
		b.Repeats = append(b.Repeats, rep)
	}

	inserts, err := obj.listField("inserts", false)
	if err != nil {
		return b, err
	}
	for i, r := range inserts {
		ip := fmt.Sprintf("%s.inserts[%d]", path, i)
		o, err := asObject(r, ip)
		if err != nil {
			return b, err
		}
		var ins InsertSpec
		if ins.Total, err = o.intField("total"); err != nil {
			return b, err
		}
		if ins.MinSplit, err = o.intField("min_split"); err != nil {
			return b, err
		}
		if ins.MaxSplit, err = o.intField("max_split"); err != nil {
			return b, err
		}
		if ins.AveGap, err = o.floatField("ave_gap"); err != nil {
			return b, err
		}
		if ins.SdGap, err = o.floatField("sd_gap"); err != nil {
			return b, err
		}
		if ins.MutationRate, err = o.floatField("mutation_rate"); err != nil {
			return b, err
		}
		if ins.Sequence, err = o.stringField("sequence"); err != nil {
			return b, err
		}
		b.Inserts = append(b.Inserts, ins)
	}
	return b, nil
}

// Validate checks the ranges the synthesizers rely on. A mutation rate of 1
// or more is left to the insert synthesizer, which reports it as a
// DomainError.
func (c *Configuration) Validate() error {
	if c.IDPadding < 0 {
		return configErr("id_padding", "must not be negative, got %d", c.IDPadding)
	}
	if c.SeqWrap < 0 {
		return configErr("seq_wrap", "must not be negative, got %d", c.SeqWrap)
	}
	seen := make(map[string]bool, len(c.Batches))
	for i := range c.Batches {
		b := &c.Batches[i]
		path := fmt.Sprintf("sequences[%d]", i)
		if b.BaseID == "" {
			return configErr(path+".base_id", "must not be empty")
		}
		if seen[b.BaseID] {
			return configErr(path+".base_id", "duplicate base_id %q", b.BaseID)
		}
		seen[b.BaseID] = true
		if b.Generate < 0 {
			return configErr(path+".generate", "must not be negative, got %d", b.Generate)
		}
		if b.MinLen < 0 || b.MinLen > b.MaxLen {
			return configErr(path+".min_len", "need 0 <= min_len <= max_len, got %d..%d", b.MinLen, b.MaxLen)
		}
		if err := validateComposition(b.Proportion, path+".proportion"); err != nil {
			return err
		}
		for j, r := range b.Repeats {
			rp := fmt.Sprintf("%s.repeats[%d]", path, j)
			// 1 is accepted and makes every trial succeed.
			if r.Likelihood < 0 || r.Likelihood > 1 {
				return configErr(rp+".likelihood", "must be within [0, 1], got %g", r.Likelihood)
			}
			if r.Pattern == "" {
				return configErr(rp+".pattern", "must not be empty")
			}
			if r.PatternMinReps < 0 || r.PatternMinReps > r.PatternMaxReps {
				return configErr(rp+".pattern_min_reps", "need 0 <= min <= max, got %d..%d", r.PatternMinReps, r.PatternMaxReps)
			}
		}
		for j, ins := range b.Inserts {
			ip := fmt.Sprintf("%s.inserts[%d]", path, j)
			if ins.Total < 0 {
				return configErr(ip+".total", "must not be negative, got %d", ins.Total)
			}
			if ins.MinSplit < 0 || ins.MinSplit > ins.MaxSplit {
				return configErr(ip+".min_split", "need 0 <= min_split <= max_split, got %d..%d", ins.MinSplit, ins.MaxSplit)
			}
			if ins.SdGap < 0 {
				return configErr(ip+".sd_gap", "must not be negative, got %g", ins.SdGap)
			}
			if ins.MutationRate < 0 {
				return configErr(ip+".mutation_rate", "must not be negative, got %g", ins.MutationRate)
			}
			if ins.Sequence == "" {
				return configErr(ip+".sequence", "must not be empty")
			}
		}
	}
	return nil
}

func validateComposition(c Composition, path string) error {
	if len(c) == 0 {
		return configErr(path, "must list at least one symbol")
	}
	var sum float64
	seen := make(map[byte]bool, len(c))
	for _, w := range c {
		if seen[w.Symbol] {
			return configErr(path, "symbol %q listed twice", w.Symbol)
		}
		seen[w.Symbol] = true
		if w.Fraction < 0 {
			return configErr(path, "weight of %q is negative", w.Symbol)
		}
		sum += w.Fraction
	}
	if sum <= 0 {
		return configErr(path, "weights must have a positive sum")
	}
	return nil
}

// object is a decoded JSON object that remembers its path for error messages.
type object struct {
	path   string
	fields map[string]json.RawMessage
}

func asObject(raw json.RawMessage, path string) (object, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return object{}, configErr(path, "must be an object")
	}
	return object{path: path, fields: fields}, nil
}

func (o object) field(key string) string { return o.path + "." + key }

// present reports a key that exists and is not null.
func (o object) present(key string) (json.RawMessage, bool) {
	v, ok := o.fields[key]
	if !ok || string(bytes.TrimSpace(v)) == "null" {
		return nil, false
	}
	return v, true
}

func (o object) required(key string) (json.RawMessage, error) {
	v, ok := o.present(key)
	if !ok {
		return nil, configErr(o.field(key), "is required")
	}
	return v, nil
}

func (o object) intField(key string) (int, error) {
	v, err := o.required(key)
	if err != nil {
		return 0, err
	}
	var n int
	if err := json.Unmarshal(v, &n); err != nil {
		return 0, configErr(o.field(key), "must be an integer, got %s", v)
	}
	return n, nil
}

func (o object) floatField(key string) (float64, error) {
	v, err := o.required(key)
	if err != nil {
		return 0, err
	}
	var f float64
	if err := json.Unmarshal(v, &f); err != nil {
		return 0, configErr(o.field(key), "must be a number, got %s", v)
	}
	return f, nil
}

func (o object) stringField(key string) (string, error) {
	v, err := o.required(key)
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", configErr(o.field(key), "must be a string, got %s", v)
	}
	return s, nil
}

func (o object) listField(key string, required bool) ([]json.RawMessage, error) {
	v, ok := o.present(key)
	if !ok {
		if required {
			return nil, configErr(o.field(key), "is required")
		}
		return nil, nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(v, &list); err != nil {
		return nil, configErr(o.field(key), "must be a list")
	}
	return list, nil
}

// wrapField accepts a line width or false.
func (o object) wrapField(key string) (int, error) {
	v, err := o.required(key)
	if err != nil {
		return 0, err
	}
	if string(bytes.TrimSpace(v)) == "false" {
		return 0, nil
	}
	var n int
	if err := json.Unmarshal(v, &n); err != nil {
		return 0, configErr(o.field(key), "must be an integer or false, got %s", v)
	}
	return n, nil
}

// seedField accepts an integer, false, null or a missing key.
func (o object) seedField(key string) (*int64, error) {
	v, ok := o.present(key)
	if !ok || string(bytes.TrimSpace(v)) == "false" {
		return nil, nil
	}
	var n int64
	if err := json.Unmarshal(v, &n); err != nil {
		return nil, configErr(o.field(key), "must be an integer or false, got %s", v)
	}
	return &n, nil
}

// configDoc is the document layout used when echoing a configuration.
type configDoc struct {
	IDPadding int         `json:"id_padding"`
	SeqWrap   any         `json:"seq_wrap"`
	Seed      any         `json:"seed"`
	Sequences []BatchSpec `json:"sequences"`
}

// EchoConfig serializes cfg with its seed replaced by the resolved one, so
// feeding the echo back reproduces the run.
func EchoConfig(cfg *Configuration, seed int64) ([]byte, error) {
	doc := configDoc{
		IDPadding: cfg.IDPadding,
		SeqWrap:   cfg.SeqWrap,
		Seed:      seed,
		Sequences: make([]BatchSpec, len(cfg.Batches)),
	}
	if cfg.SeqWrap == 0 {
		doc.SeqWrap = false
	}
	for i, b := range cfg.Batches {
		if b.Repeats == nil {
			b.Repeats = []RepeatSpec{}
		}
		if b.Inserts == nil {
			b.Inserts = []InsertSpec{}
		}
		doc.Sequences[i] = b
	}
	return json.MarshalIndent(doc, "", "    ")
}

package config

import "testing"

func TestParseArgs(t *testing.T) {
	opts, err := ParseArgs([]string{"seed=42", "seq_wrap=", "id_padding=6"})
	if err != nil {
		t.Fatal(err)
	}
	if opts["seed"] != "42" || opts["id_padding"] != "6" {
		t.Fatalf("unexpected overrides: %v", opts)
	}
	if v, ok := opts["seq_wrap"]; !ok || v != "" {
		t.Fatalf("empty value should be kept, got %q (present=%v)", v, ok)
	}
}

func TestParseArgsRejectsBareWords(t *testing.T) {
	for _, args := range [][]string{{"seed"}, {"=5"}} {
		if _, err := ParseArgs(args); err == nil {
			t.Errorf("ParseArgs(%q): expected an error", args)
		}
	}
}

func TestParseArgsSplitsOnFirstEquals(t *testing.T) {
	opts, err := ParseArgs([]string{"label=a=b"})
	if err != nil {
		t.Fatal(err)
	}
	if opts["label"] != "a=b" {
		t.Fatalf("label = %q, want a=b", opts["label"])
	}
}

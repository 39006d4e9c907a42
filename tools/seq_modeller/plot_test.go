package seq_modeller

import (
	"bytes"
	"testing"
)

func TestLengthPlotSVG(t *testing.T) {
	svg, err := LengthPlotSVG(mustGenerate(t, richConfig, nil))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Fatalf("output is not SVG: %.80q", svg)
	}
	if _, err := LengthPlotSVG(&Result{}); err == nil {
		t.Fatal("expected an error without sequences")
	}
}

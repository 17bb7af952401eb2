package csv

import (
	"bytes"
	"testing"

	"github.com/nathanhack/secded/benchmarking"
	"github.com/nathanhack/secded/cmd/internal/tools"
)

func TestWrite(t *testing.T) {
	a := benchmarking.Stats{}
	a.Corrected.Update(1)
	b := benchmarking.Stats{}
	b.Corrected.Update(0)

	stats := []*tools.SimulationStats{
		{Stats: map[float64]benchmarking.Stats{2: b, 1: a}},
		{Stats: map[float64]benchmarking.Stats{1: a}},
	}

	buf := bytes.Buffer{}
	if err := Write(&buf, []string{"eight.json", "sixteen.json"}, stats, "corrected"); err != nil {
		t.Fatalf("expected no error found :%v", err)
	}

	expected := "Results File,1,2\neight,1,0\nsixteen,1,\n"
	if buf.String() != expected {
		t.Fatalf("expected %q but found %q", expected, buf.String())
	}
}

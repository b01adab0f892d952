package lsf

import (
	"math"
	"testing"

	"github.com/thesyncim/golpc/util"
)

func cloneTable(t [][]float64) [][]float64 {
	out := make([][]float64, len(t))
	for i, v := range t {
		out[i] = append([]float64(nil), v...)
	}
	return out
}

func TestStabilizeLeavesStableTableUntouched(t *testing.T) {
	table := [][]float64{
		{0.3, 0.6, 0.9, 1.2, 1.5, 1.8, 2.1, 2.4, 2.7, 3.0},
		{0.25, 0.5, 0.8, 1.1, 1.4, 1.7, 2.0, 2.3, 2.6, 2.9},
	}
	orig := cloneTable(table)
	if DefaultGuard().Stabilize(table) {
		t.Fatal("expected no change for a stable table")
	}
	for i := range table {
		for k := range table[i] {
			if table[i][k] != orig[i][k] {
				t.Errorf("table[%d][%d] = %v, want %v", i, k, table[i][k], orig[i][k])
			}
		}
	}
}

func TestStabilizeRepairs(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"close pair", []float64{0.3, 0.6, 0.61, 0.9}, []float64{0.3, 0.5805, 0.6295, 0.9}},
		{"inverted pair", []float64{0.3, 0.2, 0.9, 1.5}, []float64{0.1805, 0.3195, 0.9, 1.5}},
		{"below range", []float64{0.0, 0.02, 0.5, 1.0}, []float64{0.01, 0.059, 0.5, 1.0}},
		{"above range", []float64{2.0, 2.5, 3.12, 3.13}, []float64{2.0, 2.5, 3.1005, 3.14}},
		{"three coincident", []float64{1.0, 1.0, 1.0}, []float64{0.961, 1.0, 1.039}},
	}
	g := DefaultGuard()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table := [][]float64{append([]float64(nil), tc.in...)}
			if !g.Stabilize(table) {
				t.Fatal("expected change flag")
			}
			for k := range tc.want {
				if util.Abs(table[0][k]-tc.want[k]) > 1e-12 {
					t.Errorf("lsf[%d] = %v, want %v", k, table[0][k], tc.want[k])
				}
			}
			if n := g.Violations(table); n != 0 {
				t.Errorf("%d separation violations after repair", n)
			}
			if n := g.OutOfRange(table); n != 0 {
				t.Errorf("%d values out of range after repair", n)
			}
		})
	}
}

func TestStabilizeChangedFlagIsSticky(t *testing.T) {
	table := [][]float64{
		{0.3, 0.6, 0.61, 0.9},
		{0.3, 0.6, 0.9, 1.2},
	}
	if !DefaultGuard().Stabilize(table) {
		t.Fatal("repair in the first row must be reported")
	}
}

func TestStabilizeTwoPassLimit(t *testing.T) {
	// Six coincident values need more than two sweeps; with the default
	// budget the guard reports a change but leaves pairs too close.
	g := DefaultGuard()
	table := [][]float64{{1, 1, 1, 1, 1, 1}}
	if !g.Stabilize(table) {
		t.Fatal("expected change flag")
	}
	if n := g.Violations(table); n == 0 {
		t.Fatalf("expected residual violations with %d passes, table = %v", g.Passes, table[0])
	}
	for k := 1; k < len(table[0]); k++ {
		if table[0][k] < table[0][k-1] {
			t.Errorf("ordering lost at %d: %v", k, table[0])
		}
	}

	g.Passes = 6
	table = [][]float64{{1, 1, 1, 1, 1, 1}}
	g.Stabilize(table)
	if n := g.Violations(table); n != 0 {
		t.Fatalf("expected no violations with %d passes, got %d: %v", g.Passes, n, table[0])
	}
}

func TestStabilizeZeroPasses(t *testing.T) {
	g := DefaultGuard()
	g.Passes = 0
	table := [][]float64{{1, 1}}
	if g.Stabilize(table) {
		t.Fatal("zero passes must not change anything")
	}
	if table[0][0] != 1 || table[0][1] != 1 {
		t.Fatalf("table changed: %v", table[0])
	}
}

func TestStabilizeEmptyRows(t *testing.T) {
	table := [][]float64{{}, {math.Pi}}
	if !DefaultGuard().Stabilize(table) {
		t.Fatal("expected clamp of pi to be reported")
	}
	if table[1][0] != DefaultMax {
		t.Fatalf("table[1][0] = %v, want %v", table[1][0], DefaultMax)
	}
}

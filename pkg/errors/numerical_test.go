package errors

import (
	"math"
	"testing"
)

func TestCheckFinite(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		wantErr   bool
		wantIndex int
	}{
		{
			name:    "all finite",
			values:  []float64{0.0, -1.5, 3.2e10},
			wantErr: false,
		},
		{
			name:      "NaN in the middle",
			values:    []float64{1.0, math.NaN(), 2.0},
			wantErr:   true,
			wantIndex: 1,
		},
		{
			name:      "positive infinity",
			values:    []float64{math.Inf(1)},
			wantErr:   true,
			wantIndex: 0,
		},
		{
			name:      "negative infinity last",
			values:    []float64{0.0, 0.0, math.Inf(-1)},
			wantErr:   true,
			wantIndex: 2,
		},
		{
			name:    "empty slice",
			values:  nil,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckFinite("test", tt.values)

			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckFinite() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var numErr *NumericalInstabilityError
				if !As(err, &numErr) {
					t.Fatal("expected *NumericalInstabilityError")
				}
				if numErr.Index != tt.wantIndex {
					t.Errorf("Index = %d, want %d", numErr.Index, tt.wantIndex)
				}
			}
		})
	}
}

func TestClipValue(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min, max float64
		want     float64
	}{
		{"below range", -1.0, 0.0, 1.0, 0.0},
		{"above range", 2.0, 0.0, 1.0, 1.0},
		{"inside range", 0.5, 0.0, 1.0, 0.5},
		{"at lower bound", 0.0, 0.0, 1.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClipValue(tt.value, tt.min, tt.max); got != tt.want {
				t.Errorf("ClipValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLog1PExp(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		want      float64
		tolerance float64
	}{
		{"zero gives ln 2", 0.0, math.Ln2, 1e-15},
		{"small positive matches naive", 1.0, math.Log(1 + math.E), 1e-12},
		{"small negative matches naive", -2.0, math.Log(1 + math.Exp(-2)), 1e-12},
		{"large positive does not overflow", 1000.0, 1000.0, 1e-9},
		{"large negative underflows to zero", -1000.0, 0.0, 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Log1PExp(tt.x)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("Log1PExp(%v) = %v, want finite", tt.x, got)
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Log1PExp(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestSigmoid(t *testing.T) {
	tests := []struct {
		name      string
		z         float64
		want      float64
		tolerance float64
	}{
		{"zero is one half", 0.0, 0.5, 1e-15},
		{"large positive saturates to one", 1000.0, 1.0, 1e-12},
		{"large negative saturates to zero", -1000.0, 0.0, 1e-12},
		{"matches naive formula", 2.0, 1.0 / (1.0 + math.Exp(-2.0)), 1e-15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sigmoid(tt.z)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Sigmoid(%v) = %v, want %v", tt.z, got, tt.want)
			}
		})
	}

	// Complementarity: sigmoid(z) + sigmoid(-z) == 1.
	for _, z := range []float64{0.1, 1, 10, 100} {
		if got := Sigmoid(z) + Sigmoid(-z); math.Abs(got-1.0) > 1e-12 {
			t.Errorf("Sigmoid(%v) + Sigmoid(-%v) = %v, want 1", z, z, got)
		}
	}
}

func BenchmarkLog1PExp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Log1PExp(float64(i%200) - 100)
	}
}

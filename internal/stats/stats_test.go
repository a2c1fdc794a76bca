package stats

import (
	"testing"
	"time"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name       string
		original   int64
		compressed int64
		want       float64
	}{
		{"typical", 1000, 250, 75.0},
		{"no reduction", 1000, 1000, 0.0},
		{"half", 2048, 1024, 50.0},
		{"zero original", 0, 0, 0.0},
		{"zero original nonzero archive", 0, 22, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ratio(tt.original, tt.compressed); got != tt.want {
				t.Errorf("Ratio(%d, %d) = %v, want %v", tt.original, tt.compressed, got, tt.want)
			}
		})
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0 B"},
		{500, "500 B"},
		{1023, "1023 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{2048, "2.00 KB"},
		{1048576, "1.00 MB"},
		{5 * 1048576, "5.00 MB"},
		{1073741824, "1.00 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := HumanSize(tt.input); got != tt.want {
				t.Errorf("HumanSize(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompute(t *testing.T) {
	st := Compute("proj", 3, 1000, 250, 2*time.Second)

	if st.SourceName != "proj" {
		t.Errorf("SourceName = %q, want %q", st.SourceName, "proj")
	}
	if st.FileCount != 3 {
		t.Errorf("FileCount = %d, want 3", st.FileCount)
	}
	if st.OriginalBytes != 1000 || st.CompressedBytes != 250 {
		t.Errorf("sizes = (%d, %d), want (1000, 250)", st.OriginalBytes, st.CompressedBytes)
	}
	if st.RatioPercent != 75.0 {
		t.Errorf("RatioPercent = %v, want 75.0", st.RatioPercent)
	}
	if st.Elapsed != 2*time.Second {
		t.Errorf("Elapsed = %v, want 2s", st.Elapsed)
	}
}

package tableui

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeColumnWidths(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"already normalized", []float64{25, 25, 50}, []float64{25, 25, 50}},
		{"scales up", []float64{10, 10, 30}, []float64{20, 20, 60}},
		{"scales down", []float64{100, 100}, []float64{50, 50}},
		{"remainder to last", []float64{1, 1, 1}, []float64{33.33, 33.33, 33.34}},
		{"zero input distributes evenly", []float64{0, 0, 0, 0}, []float64{25, 25, 25, 25}},
		{"single column", []float64{42}, []float64{100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeColumnWidths(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("normalizeColumnWidths(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
			if sum := sumWidths(got); math.Abs(sum-100) > widthTolerance {
				t.Errorf("normalized widths sum to %v, want 100", sum)
			}
		})
	}
}

func TestNormalizeColumnWidthsIsStable(t *testing.T) {
	once := normalizeColumnWidths([]float64{33.333, 33.333, 33.333})
	twice := normalizeColumnWidths(once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second normalization changed the sequence (-once +twice):\n%s", diff)
	}
}

func TestParseColumnWidths(t *testing.T) {
	tests := []struct {
		in   string
		want []float64
	}{
		{"25%,25%,50%", []float64{25, 25, 50}},
		{" 20% , 30% ,50%", []float64{20, 30, 50}},
		{"33.33%,66.67%", []float64{33.33, 66.67}},
		{"", nil},
		{"garbage,50%", []float64{50}},
	}

	for _, tt := range tests {
		got := parseColumnWidths(tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("parseColumnWidths(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestFormatColumnWidths(t *testing.T) {
	got := formatColumnWidths([]float64{25, 33.333, 41.667})
	want := "25%,33.33%,41.67%"
	if got != want {
		t.Errorf("formatColumnWidths = %q, want %q", got, want)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	attr := formatColumnWidths([]float64{20.83, 20.83, 58.34})
	if again := formatColumnWidths(parseColumnWidths(attr)); again != attr {
		t.Errorf("round trip changed attribute: %q -> %q", attr, again)
	}
}

func TestSpliceWidths(t *testing.T) {
	tests := []struct {
		name  string
		in    []float64
		index int
		count int
		value float64
		want  []float64
	}{
		{"middle", []float64{25, 25, 50}, 1, 1, 5, []float64{25, 5, 25, 50}},
		{"start", []float64{25, 75}, 0, 2, 5, []float64{5, 5, 25, 75}},
		{"tail", []float64{25, 75}, 2, 1, 5, []float64{25, 75, 5}},
		{"zero count", []float64{25, 75}, 1, 0, 5, []float64{25, 75}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spliceWidths(tt.in, tt.index, tt.count, tt.value)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("spliceWidths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRemoveWidthsDonatingLeft(t *testing.T) {
	tests := []struct {
		name  string
		in    []float64
		index int
		count int
		want  []float64
	}{
		{"donates to left neighbor", []float64{25, 25, 50}, 1, 1, []float64{50, 50}},
		{"index zero donates right", []float64{25, 25, 50}, 0, 1, []float64{50, 50}},
		{"multiple removed", []float64{10, 20, 30, 40}, 1, 2, []float64{60, 40}},
		{"count clamped to tail", []float64{40, 60}, 1, 5, []float64{100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := removeWidthsDonatingLeft(tt.in, tt.index, tt.count)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("removeWidthsDonatingLeft mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPixelsToPercent(t *testing.T) {
	if got := pixelsToPercent(250, 1000); got != 25 {
		t.Errorf("pixelsToPercent(250, 1000) = %v, want 25", got)
	}
	if got := pixelsToPercent(100, 0); got != 0 {
		t.Errorf("pixelsToPercent with zero total = %v, want 0", got)
	}
}

package observability

import (
	"strings"
	"testing"
)

func TestSampler_ByRatio(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{0, "AlwaysOffSampler"},
		{-1, "AlwaysOffSampler"},
		{1, "AlwaysOnSampler"},
		{0.25, "TraceIDRatioBased{0.25}"},
	}

	for _, tt := range tests {
		if got := sampler(tt.ratio).Description(); !strings.Contains(got, tt.want) {
			t.Fatalf("sampler(%v) = %q, want it to contain %q", tt.ratio, got, tt.want)
		}
	}
}

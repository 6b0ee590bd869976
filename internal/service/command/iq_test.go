package command

import (
	"strings"
	"testing"
)

func TestDescribeIQ_BandBoundaries(t *testing.T) {
	tests := []struct {
		iq   int
		want string
	}{
		{1, "profound"},
		{24, "profound"},
		{25, "severe"},
		{39, "severe"},
		{40, "moderate"},
		{54, "moderate"},
		{55, "mild"},
		{69, "mild"},
		{70, "borderline"},
		{84, "borderline"},
		{85, "average intelligence"},
		{114, "average intelligence"},
		{115, "above average"},
		{129, "above average"},
		{130, "moderately gifted"},
		{144, "moderately gifted"},
		{145, "highly gifted"},
		{159, "highly gifted"},
		{160, "exceptionally gifted"},
		{179, "exceptionally gifted"},
		{180, "profoundly gifted"},
		{200, "profoundly gifted"},
	}

	for _, tt := range tests {
		got := DescribeIQ(tt.iq)
		if !strings.Contains(got, tt.want) {
			t.Errorf("DescribeIQ(%d) = %q, want it to contain %q", tt.iq, got, tt.want)
		}
	}
}

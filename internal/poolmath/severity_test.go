package poolmath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImpactSeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		impact string
		want   Severity
	}{
		{impact: "0", want: SeverityNone},
		{impact: "0.99", want: SeverityNone},
		{impact: "1", want: SeverityLow},
		{impact: "2.5", want: SeverityLow},
		{impact: "3", want: SeverityModerate},
		{impact: "5", want: SeverityHigh},
		{impact: "9.3389", want: SeverityHigh},
		{impact: "10", want: SeverityExtreme},
		{impact: "87", want: SeverityExtreme},
	}

	for _, tt := range tests {
		t.Run(tt.impact, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, ImpactSeverity(d(tt.impact)))
		})
	}
}

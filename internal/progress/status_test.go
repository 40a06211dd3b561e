package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForBoundaries(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{0, "analyzing"},
		{29, "analyzing"},
		{30, "searching"},
		{59, "searching"},
		{60, "scoring"},
		{89, "scoring"},
		{90, "finalizing"},
		{100, "finalizing"},
		{-10, "analyzing"},
		{150, "finalizing"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.value).String(), "StatusFor(%d)", tt.value)
	}
}

func TestStatusBandIsMonotonic(t *testing.T) {
	prev := StatusFor(0)
	for v := 1; v <= Max; v++ {
		cur := StatusFor(v)
		require.GreaterOrEqual(t, cur, prev, "band decreased at %d", v)
		prev = cur
	}
}

func TestStatusMessages(t *testing.T) {
	for s := StatusAnalyzing; s <= StatusFinalizing; s++ {
		assert.NotEmpty(t, s.Message(), "status %s", s)
	}
	assert.Equal(t, "unknown", Status(99).String())
}

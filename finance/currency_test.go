package finance

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToVND(t *testing.T) {
	assert.Equal(t, 2400000.0, ToVND(100, 24000))
	assert.Equal(t, 0.0, ToVND(0, 25000))
}

func TestRoundVNDIdempotent(t *testing.T) {
	// Export rounding must be stable under a write/parse round trip.
	values := []float64{12345678.4, 12345678.5, 0.49, 99.999}
	for _, v := range values {
		rounded := RoundVND(v)
		field := strconv.FormatFloat(rounded, 'f', 0, 64)
		parsed, err := strconv.ParseFloat(field, 64)
		require.NoError(t, err)
		assert.Equal(t, rounded, parsed)
		assert.Equal(t, rounded, RoundVND(parsed))
	}
}

func TestRoundVNDHalfUp(t *testing.T) {
	assert.Equal(t, 13.0, RoundVND(12.5))
	assert.Equal(t, 12.0, RoundVND(12.4))
}

func TestRound2And3(t *testing.T) {
	assert.Equal(t, 1.25, Round2(1.254))
	assert.Equal(t, 0.67, Round2(2.0/3.0))
	assert.Equal(t, 0.667, Round3(2.0/3.0))
}

func TestPercentLabel(t *testing.T) {
	assert.Equal(t, "60%", PercentLabel(60))
	assert.Equal(t, "57%", PercentLabel(57.4))
	assert.Equal(t, "58%", PercentLabel(57.5))
	assert.Equal(t, "0%", PercentLabel(0))
}

package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertedVND(t *testing.T) {
	// 10h at $50 with fx 24000 and full allocation
	got := ConvertedVND(10, 50, 24000, 100)
	assert.Equal(t, 12000000.0, got)

	// half allocation halves the bill
	assert.Equal(t, 6000000.0, ConvertedVND(10, 50, 24000, 50))

	// any zero factor zeroes the result rather than erroring
	assert.Equal(t, 0.0, ConvertedVND(0, 50, 24000, 100))
	assert.Equal(t, 0.0, ConvertedVND(10, 0, 24000, 100))
}

func TestTotalPayment(t *testing.T) {
	assert.Equal(t, 35000000.0, TotalPayment(30000000, 5000000))
	assert.Equal(t, 0.0, TotalPayment(0, 0))
}

func TestPercentageRatio(t *testing.T) {
	got := PercentageRatio(6000000, 10000000, 2000000)
	assert.InDelta(t, 50.0, got, 1e-9)
}

func TestPercentageRatioZeroDenominator(t *testing.T) {
	got := PercentageRatio(5000000, 0, 0)
	assert.Equal(t, 0.0, got)
	assert.False(t, math.IsNaN(got))
	assert.False(t, math.IsInf(got, 0))
}

func TestSalaryCoefficient(t *testing.T) {
	assert.Equal(t, 0.5, SalaryCoefficient(10000000, 20000000))

	// rounds to 3 decimals
	assert.Equal(t, 0.333, SalaryCoefficient(1, 3))
}

func TestSalaryCoefficientZeroBasicSalary(t *testing.T) {
	assert.Equal(t, 0.0, SalaryCoefficient(10000000, 0))
}

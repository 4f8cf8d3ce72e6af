package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyReturns_Basic(t *testing.T) {
	rets := DailyReturns([]float64{100, 101, 98, 98})
	require.Len(t, rets, 3)
	assert.InDelta(t, 0.01, rets[0], 1e-15)
	assert.InDelta(t, -0.0297029702970297, rets[1], 1e-15)
	assert.Equal(t, 0.0, rets[2])
}

func TestDailyReturns_SinglePrice(t *testing.T) {
	assert.Empty(t, DailyReturns([]float64{45000}))
}

func TestDailyReturns_Empty(t *testing.T) {
	assert.Empty(t, DailyReturns(nil))
}

func TestDailyReturns_ZeroPreviousPrice(t *testing.T) {
	rets := DailyReturns([]float64{0, 10, 20})
	require.Len(t, rets, 2)
	assert.Equal(t, 0.0, rets[0], "precio previo 0 no debe dividir")
	assert.InDelta(t, 1.0, rets[1], 1e-15)
}

func TestDailyReturns_DoesNotMutateInput(t *testing.T) {
	prices := []float64{1, 2, 3}
	DailyReturns(prices)
	assert.Equal(t, []float64{1, 2, 3}, prices)
}

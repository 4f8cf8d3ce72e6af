package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRegime_Buckets(t *testing.T) {
	assert.Equal(t, RegimeCalm, ClassifyRegime(0))
	assert.Equal(t, RegimeCalm, ClassifyRegime(0.0099))
	assert.Equal(t, RegimeNormal, ClassifyRegime(0.02))
	assert.Equal(t, RegimeStorm, ClassifyRegime(0.5))
}

func TestClassifyRegime_Boundaries(t *testing.T) {
	assert.Equal(t, RegimeNormal, ClassifyRegime(0.01))
	assert.Equal(t, RegimeNormal, ClassifyRegime(-0.01))
	assert.Equal(t, RegimeStorm, ClassifyRegime(0.03))
	assert.Equal(t, RegimeStorm, ClassifyRegime(-0.03))
}

func TestClassifyRegime_UsesMagnitude(t *testing.T) {
	assert.Equal(t, RegimeNormal, ClassifyRegime(-0.0297029702970297))
	assert.Equal(t, RegimeStorm, ClassifyRegime(-0.2))
}

func TestClassifyRegime_NonFinite(t *testing.T) {
	assert.Equal(t, RegimeStorm, ClassifyRegime(math.Inf(-1)))
	assert.Equal(t, RegimeStorm, ClassifyRegime(math.NaN()))
}

func TestClassifyRegime_ConstantGrowthIsCalm(t *testing.T) {
	prices := []float64{100}
	for i := 0; i < 30; i++ {
		prices = append(prices, prices[len(prices)-1]*1.005)
	}
	for _, r := range DailyReturns(prices) {
		assert.Equal(t, RegimeCalm, ClassifyRegime(r))
	}
}

func TestRegime_String(t *testing.T) {
	assert.Equal(t, "CALM", RegimeCalm.String())
	assert.Equal(t, "NORMAL", RegimeNormal.String())
	assert.Equal(t, "STORM", RegimeStorm.String())
	assert.Equal(t, "UNKNOWN", Regime(9).String())
}

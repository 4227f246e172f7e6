package binomial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestNewBinomialValidation(t *testing.T) {
	_, err := NewBinomial(-1, 0.5)
	assert.ErrorIs(t, err, ErrNegative)

	_, err = NewBinomial(5, -0.1)
	assert.ErrorIs(t, err, ErrProbRange)
	_, err = NewBinomial(5, 1.1)
	assert.ErrorIs(t, err, ErrProbRange)
	_, err = NewBinomial(5, math.NaN())
	assert.ErrorIs(t, err, ErrProbRange)
}

func TestProbabilityK(t *testing.T) {
	b, err := NewBinomial(7, 0.5)
	assert.NoError(t, err)

	p, err := b.ProbabilityK(2)
	assert.NoError(t, err)
	assert.InDelta(t, 0.1640625, p, 1e-12)

	_, err = b.ProbabilityK(8)
	assert.ErrorIs(t, err, ErrOutOfOrder)
	_, err = b.ProbabilityK(-1)
	assert.ErrorIs(t, err, ErrNegative)
}

func TestDistributionSumsToOne(t *testing.T) {
	cases := []struct {
		n int64
		p float64
	}{
		{0, 0.5},
		{1, 0},
		{5, 0.5},
		{10, 0.3},
		{25, 0.9},
	}
	for _, tc := range cases {
		b, err := NewBinomial(tc.n, tc.p)
		assert.NoError(t, err)
		var sum float64
		for _, p := range b.Distribution() {
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "n=%d p=%v", tc.n, tc.p)
	}
}

func TestDistributionRecomputed(t *testing.T) {
	b, _ := NewBinomial(6, 0.25)
	d1 := b.Distribution()
	d2 := b.Distribution()
	assert.Equal(t, d1, d2)

	// each call hands back a fresh slice
	d1[0] = -1
	assert.InDelta(t, d2[0], b.Distribution()[0], 0)
}

func TestCumulative(t *testing.T) {
	b, _ := NewBinomial(4, 0.5)

	var want float64
	for i := int64(0); i <= 2; i++ {
		p, err := b.ProbabilityK(i)
		assert.NoError(t, err)
		want += p
	}
	got, err := b.Cumulative(2)
	assert.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)

	full, err := b.Cumulative(4)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, full, 1e-12)

	_, err = b.Cumulative(5)
	assert.ErrorIs(t, err, ErrOutOfOrder)
	_, err = b.Cumulative(-1)
	assert.ErrorIs(t, err, ErrNegative)
}

func TestCumulativeRange(t *testing.T) {
	b, _ := NewBinomial(10, 0.3)

	var want float64
	for i := int64(3); i <= 7; i++ {
		p, err := b.ProbabilityK(i)
		assert.NoError(t, err)
		want += p
	}
	got, err := b.CumulativeRange(3, 7)
	assert.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)

	full, err := b.CumulativeRange(0, 10)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, full, 1e-12)

	_, err = b.CumulativeRange(4, 2)
	assert.ErrorIs(t, err, ErrOutOfOrder)
	_, err = b.CumulativeRange(0, 11)
	assert.ErrorIs(t, err, ErrOutOfOrder)
	_, err = b.CumulativeRange(-1, 2)
	assert.ErrorIs(t, err, ErrNegative)
}

func TestStatistics(t *testing.T) {
	b, _ := NewBinomial(10, 0.3)
	assert.InDelta(t, 3.0, b.ExpectedValue(), 1e-12)
	assert.InDelta(t, 2.1, b.Variance(), 1e-12)
	assert.InDelta(t, (0.7-0.3)/math.Sqrt(2.1), b.Skewness(), 1e-12)
}

func TestSkewnessDegenerate(t *testing.T) {
	// n*p*q == 0: the raw float division result propagates
	b, _ := NewBinomial(10, 0)
	assert.True(t, math.IsInf(b.Skewness(), 1))

	b, _ = NewBinomial(10, 1)
	assert.True(t, math.IsInf(b.Skewness(), -1))

	b, _ = NewBinomial(0, 0.5)
	assert.True(t, math.IsNaN(b.Skewness()))
}

func TestString(t *testing.T) {
	b, _ := NewBinomial(5, 0.5)
	assert.Equal(t, "Binomial experiment: n = 5, p = 0.50, q = 0.50", b.String())
}

func TestAgainstDistuv(t *testing.T) {
	b, _ := NewBinomial(30, 0.42)
	ref := distuv.Binomial{N: 30, P: 0.42}

	for k := int64(0); k <= 30; k++ {
		p, err := b.ProbabilityK(k)
		assert.NoError(t, err)
		assert.InDelta(t, ref.Prob(float64(k)), p, 1e-9, "k=%d", k)
	}

	c, err := b.Cumulative(13)
	assert.NoError(t, err)
	assert.InDelta(t, ref.CDF(13), c, 1e-9)
}

func BenchmarkCumulative(b *testing.B) {
	dist, _ := NewBinomial(200, 0.01)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dist.Cumulative(int64(i % 200))
	}
}

func BenchmarkCumulativeDistuv(b *testing.B) {
	ref := distuv.Binomial{
		N: 200,
		P: float64(1) / float64(100),
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ref.CDF(float64(i % 200))
	}
}

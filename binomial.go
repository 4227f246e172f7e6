// Package binomial computes exact properties of the binomial probability
// distribution: factorials, combination counts, per-outcome probabilities,
// cumulative probabilities, and summary statistics.
package binomial

import (
	"fmt"
	"math"
	"math/big"
)

// Binomial describes an experiment of n independent trials, each succeeding
// with probability p. Parameters are validated once in NewBinomial and are
// immutable afterwards, so a value is safe for concurrent reads.
type Binomial struct {
	n int64
	p float64
	q float64

	// full distribution, cached at construction
	pmf []float64
}

// NewBinomial constructs a distribution over numTrials trials with success
// probability probSuccess.
func NewBinomial(numTrials int64, probSuccess float64) (*Binomial, error) {
	if err := ValidateNonNegativeInteger(numTrials); err != nil {
		return nil, err
	}
	if err := validateProbability(probSuccess); err != nil {
		return nil, err
	}
	b := &Binomial{
		n: numTrials,
		p: probSuccess,
		q: 1 - probSuccess,
	}
	b.pmf = b.Distribution()
	return b, nil
}

// N returns the number of trials.
func (b *Binomial) N() int64 { return b.n }

// P returns the per-trial success probability.
func (b *Binomial) P() float64 { return b.p }

// Q returns the per-trial failure probability, 1 - p.
func (b *Binomial) Q() float64 { return b.q }

// ProbabilityK returns P(X = k) = C(n,k) * p^k * q^(n-k). The coefficient is
// computed exactly in big.Int and only enters floating point for the final
// multiplication.
func (b *Binomial) ProbabilityK(k int64) (float64, error) {
	if err := ValidateNonNegativeInteger(k); err != nil {
		return 0, err
	}
	if err := ValidateLessEqual(k, b.n); err != nil {
		return 0, err
	}
	c, err := Combinations(b.n, k)
	if err != nil {
		return 0, err
	}
	cf, _ := new(big.Float).SetInt(c).Float64()
	return cf * math.Pow(b.p, float64(k)) * math.Pow(b.q, float64(b.n-k)), nil
}

// Distribution returns P(X = k) for every k from 0 through n, indexed by k.
// The slice is rebuilt on each call; NewBinomial keeps its own copy for the
// summary output, so callers may mutate the result freely.
func (b *Binomial) Distribution() []float64 {
	dist := make([]float64, b.n+1)
	for k := int64(0); k <= b.n; k++ {
		// k is in range by construction, ProbabilityK cannot fail
		dist[k], _ = b.ProbabilityK(k)
	}
	return dist
}

// Cumulative returns P(X <= k), the sum of ProbabilityK(i) for i in [0, k].
func (b *Binomial) Cumulative(k int64) (float64, error) {
	if err := ValidateNonNegativeInteger(k); err != nil {
		return 0, err
	}
	if err := ValidateLessEqual(k, b.n); err != nil {
		return 0, err
	}
	var sum float64
	for i := int64(0); i <= k; i++ {
		p, err := b.ProbabilityK(i)
		if err != nil {
			return 0, err
		}
		sum += p
	}
	return sum, nil
}

// CumulativeRange returns P(k1 <= X <= k2), the sum of ProbabilityK(i) for i
// in [k1, k2].
func (b *Binomial) CumulativeRange(k1, k2 int64) (float64, error) {
	if err := ValidateNonNegativeInteger(k1); err != nil {
		return 0, err
	}
	if err := ValidateNonNegativeInteger(k2); err != nil {
		return 0, err
	}
	if err := ValidateLessEqual(k1, b.n); err != nil {
		return 0, err
	}
	if err := ValidateLessEqual(k2, b.n); err != nil {
		return 0, err
	}
	if err := ValidateLessEqual(k1, k2); err != nil {
		return 0, err
	}
	var sum float64
	for i := k1; i <= k2; i++ {
		p, err := b.ProbabilityK(i)
		if err != nil {
			return 0, err
		}
		sum += p
	}
	return sum, nil
}

// ExpectedValue returns the mean, n * p.
func (b *Binomial) ExpectedValue() float64 {
	return float64(b.n) * b.p
}

// Variance returns n * p * q.
func (b *Binomial) Variance() float64 {
	return float64(b.n) * b.p * b.q
}

// Skewness returns (q - p) / sqrt(n * p * q). When n*p*q == 0 the
// distribution is degenerate and the raw float division result, +/-Inf or
// NaN, is returned rather than an error.
func (b *Binomial) Skewness() float64 {
	return (b.q - b.p) / math.Sqrt(float64(b.n)*b.p*b.q)
}

func (b *Binomial) String() string {
	return fmt.Sprintf("Binomial experiment: n = %d, p = %.2f, q = %.2f", b.n, b.p, b.q)
}

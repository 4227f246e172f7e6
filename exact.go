package binomial

import (
	"fmt"
	"math/big"
)

var ratOne = big.NewRat(1, 1)

// Exact is a binomial distribution computed entirely in rational arithmetic.
// The success probability is the fraction pNum/pDen, so results carry no
// floating-point error at all.
type Exact struct {
	n *big.Int
	p *big.Rat
}

// NewExact constructs an exact distribution over n trials with success
// probability pNum/pDen.
func NewExact(n, pNum, pDen int64) (*Exact, error) {
	if err := ValidateNonNegativeInteger(n); err != nil {
		return nil, err
	}
	if pDen == 0 {
		return nil, fmt.Errorf("%d/%d: %w", pNum, pDen, ErrProbRange)
	}
	p := big.NewRat(pNum, pDen)
	if p.Sign() < 0 || p.Cmp(ratOne) > 0 {
		return nil, fmt.Errorf("%s: %w", p.RatString(), ErrProbRange)
	}
	return &Exact{
		n: big.NewInt(n),
		p: p,
	}, nil
}

// N returns the number of trials.
func (e *Exact) N() int64 { return e.n.Int64() }

// P returns the success probability.
func (e *Exact) P() *big.Rat { return new(big.Rat).Set(e.p) }

// PMF returns P(X = k) = C(n,k) * p^k * q^(n-k) as an exact rational.
func (e *Exact) PMF(k int64) (*big.Rat, error) {
	n := e.n.Int64()
	if err := ValidateNonNegativeInteger(k); err != nil {
		return nil, err
	}
	if err := ValidateLessEqual(k, n); err != nil {
		return nil, err
	}
	numer := e.p.Num()   // pn
	denom := e.p.Denom() // pd

	bk := big.NewInt(k)
	sbk := big.NewInt(n - k) // n-k

	// p^k * q^(n-k) with q = (pd-pn)/pd
	lnum := new(big.Int).Exp(numer, bk, nil)
	rnum := new(big.Int).Exp(new(big.Int).Sub(denom, numer), sbk, nil)
	probNum := new(big.Int).Mul(lnum, rnum)
	probDen := new(big.Int).Exp(denom, e.n, nil)
	prob := new(big.Rat).SetFrac(probNum, probDen)

	c, err := Combinations(n, k)
	if err != nil {
		return nil, err
	}
	return prob.Mul(prob, new(big.Rat).SetInt(c)), nil
}

// CDF returns P(X <= j). Arguments below 0 clamp to 0 and arguments above n
// clamp to 1.
func (e *Exact) CDF(j int64) *big.Rat {
	if j < 0 {
		return new(big.Rat)
	}
	if j > e.n.Int64() {
		return new(big.Rat).SetInt64(1)
	}
	res := new(big.Rat)
	for k := int64(0); k <= j; k++ {
		// k is in [0, n], PMF cannot fail
		p, _ := e.PMF(k)
		res.Add(res, p)
	}
	return res
}

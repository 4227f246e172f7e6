package binomial

import "math/big"

// Factorial returns n! as an exact integer. The product can exceed any fixed
// machine width, so the result lives in a big.Int.
func Factorial(n int64) (*big.Int, error) {
	if err := ValidateNonNegativeInteger(n); err != nil {
		return nil, err
	}
	f := big.NewInt(1)
	for i := int64(2); i <= n; i++ {
		f.Mul(f, big.NewInt(i))
	}
	return f, nil
}

// Combinations returns C(n, r) = n! / (r! * (n-r)!) as an exact integer.
// Intermediate factorials are huge; everything stays in big.Int and the
// division is exact, never floating point.
func Combinations(n, r int64) (*big.Int, error) {
	if err := ValidateNonNegativeInteger(n); err != nil {
		return nil, err
	}
	if err := ValidateNonNegativeInteger(r); err != nil {
		return nil, err
	}
	if err := ValidateLessEqual(r, n); err != nil {
		return nil, err
	}
	nf, err := Factorial(n)
	if err != nil {
		return nil, err
	}
	rf, err := Factorial(r)
	if err != nil {
		return nil, err
	}
	nrf, err := Factorial(n - r)
	if err != nil {
		return nil, err
	}
	return nf.Div(nf, new(big.Int).Mul(rf, nrf)), nil
}

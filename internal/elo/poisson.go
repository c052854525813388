package elo

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// PoissonQuantile returns the smallest k such that P(X <= k) >= p for
// X ~ Poisson(lambda), matching R's qpois. It is monotone in p, which makes
// scoreline sampling deterministic given the uniform draw.
func PoissonQuantile(p, lambda float64) int {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		// Callers draw from [0,1); clamp defensively so the search below
		// always terminates.
		p = math.Nextafter(1, 0)
	}

	dist := distuv.Poisson{Lambda: lambda}

	// Binary search over the CDF. The initial upper bound covers any
	// realistic p for football-sized lambdas; double it until it does.
	hi := int(lambda*3 + 20)
	for dist.CDF(float64(hi)) < p {
		hi *= 2
	}
	lo := 0
	for lo < hi {
		mid := (lo + hi) / 2
		if dist.CDF(float64(mid)) < p {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

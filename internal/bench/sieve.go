// Package bench implements the CPU workload behind /benchmark: a sieve of
// Eratosthenes over a fixed limit, timed, together with the process's
// current resident memory.
package bench

import "math"

// DefaultLimit is the exclusive upper bound used by /benchmark.
const DefaultLimit = 1_000_000

// CountPrimes returns the number of primes strictly below limit.
func CountPrimes(limit int) int {
	if limit < 3 {
		return 0
	}

	isPrime := make([]bool, limit)
	for i := 2; i < limit; i++ {
		isPrime[i] = true
	}

	root := int(math.Sqrt(float64(limit)))
	for i := 2; i <= root; i++ {
		if !isPrime[i] {
			continue
		}
		for j := i * i; j < limit; j += i {
			isPrime[j] = false
		}
	}

	count := 0
	for _, p := range isPrime {
		if p {
			count++
		}
	}
	return count
}

package testutil

// PrimesBelow100 lists the 25 primes below 100 in ascending order.
var PrimesBelow100 = []uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29,
	31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97,
}

// SampleConfigYAML is a complete .sieve/config.yaml with non-default values.
const SampleConfigYAML = `max: 500
grid:
  rows: 4
  cols: 8
log_level: info
`

// IsPrimeTrialDivision reports whether k is prime by trial division.
// It is slow and only meant as an independent oracle in tests.
func IsPrimeTrialDivision(k uint64) bool {
	if k < 2 {
		return false
	}
	if k%2 == 0 {
		return k == 2
	}
	for d := uint64(3); d*d <= k; d += 2 {
		if k%d == 0 {
			return false
		}
	}
	return true
}

// PrimesUpTo returns every prime in [0, n] using IsPrimeTrialDivision.
func PrimesUpTo(n uint64) []uint64 {
	var primes []uint64
	for k := uint64(0); k <= n; k++ {
		if IsPrimeTrialDivision(k) {
			primes = append(primes, k)
		}
	}
	return primes
}

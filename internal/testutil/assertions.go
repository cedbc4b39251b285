package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// PrimeQuerier is the read-only lookup every prime table provides.
type PrimeQuerier interface {
	IsPrime(k uint64) bool
}

// AssertMatchesOracle asserts that q agrees with trial division for every
// candidate in [0, n]. It stops at the first mismatch.
func AssertMatchesOracle(t *testing.T, q PrimeQuerier, n uint64) {
	t.Helper()

	for k := uint64(0); k <= n; k++ {
		require.Equal(t, IsPrimeTrialDivision(k), q.IsPrime(k),
			"primality mismatch at k=%d (n=%d)", k, n)
	}
}

// AssertPrimeSet asserts that the candidates q reports as prime in [0, n]
// are exactly want.
func AssertPrimeSet(t *testing.T, q PrimeQuerier, n uint64, want []uint64) {
	t.Helper()

	var got []uint64
	for k := uint64(0); k <= n; k++ {
		if q.IsPrime(k) {
			got = append(got, k)
		}
	}
	assert.Equal(t, want, got, "prime set mismatch for n=%d", n)
}

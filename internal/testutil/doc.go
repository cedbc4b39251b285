// Package testutil provides shared test utilities for sieve.
//
// # Fixtures
//
// The fixtures.go file provides reference data:
//
//   - PrimesBelow100 - the 25 primes below 100
//   - IsPrimeTrialDivision(k) - primality by trial division, used as an oracle
//   - PrimesUpTo(n) - the oracle's primes in [0, n]
//   - SampleConfigYAML - a complete .sieve/config.yaml
//
// # Environment Helpers
//
// The env.go file provides test environment setup:
//
//   - SetupTestDir(t) - creates a temp directory with a .sieve/config.yaml
//   - WriteTestFile(t, base, path, content) - writes a file in test dir
//
// # Assertions
//
// The assertions.go file provides custom test assertions:
//
//   - AssertMatchesOracle(t, q, n) - every k in [0, n] agrees with trial division
//   - AssertPrimeSet(t, q, n, want) - the set of primes reported in [0, n]
//
// # Timeouts
//
// The timeout.go file provides contexts bounded by the test deadline:
//
//   - ContextWithTestDeadline(t, fallback)
//   - ShortOperationContext(t)
//
// # Usage
//
//	func TestSomething(t *testing.T) {
//	    table := primetable.New(100)
//	    testutil.AssertMatchesOracle(t, table, 100)
//	}
package testutil

// Package primetable builds and queries a bit-packed sieve of Eratosthenes.
//
// A PrimeTable covers every candidate in the inclusive range [0, n]. Each
// candidate occupies one bit inside a slice of 32-bit words: word k>>5,
// bit k&31. The table is built once by New and is read-only afterwards, so
// a single table may be shared freely between readers.
//
// # Construction
//
// New allocates ceil((n+1)/32) words with every bit set, clears 0 and 1,
// then strikes out 2p, 3p, ... for every p up to floor(sqrt(n))+1 that is
// still marked prime. Padding bits above n in the last word are cleared so
// population counts only see real candidates.
//
// # Queries
//
//   - IsPrime(k) - O(1) lookup, caller guarantees k <= N()
//   - Contains(k) - whether k is inside the table's range
//   - Count() - number of primes in [0, n]
//   - Next(k) - smallest prime >= k
//   - Bitmap(lo, hi) - primes in [lo, hi] as a roaring bitmap
//
// # Usage
//
//	table := primetable.New(100)
//	if table.Contains(k) && table.IsPrime(k) {
//	    // ...
//	}
package primetable

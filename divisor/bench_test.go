package divisor_test

import (
	"testing"

	"github.com/katalvlaran/rechunk/divisor"
)

// BenchmarkDivisors_HighlyComposite runs on 720720 (240 divisors).
func BenchmarkDivisors_HighlyComposite(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := divisor.Divisors(720720); err != nil {
			b.Fatalf("Divisors failed: %v", err)
		}
	}
}

// BenchmarkDivisors_Prime runs on a large prime, the worst case for the √n walk.
func BenchmarkDivisors_Prime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := divisor.Divisors(1_000_003); err != nil {
			b.Fatalf("Divisors failed: %v", err)
		}
	}
}

// BenchmarkAtMost looks up every bound up to 720720 in its divisor list.
func BenchmarkAtMost(b *testing.B) {
	divs, err := divisor.Divisors(720720)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = divisor.AtMost(divs, i%720720)
	}
}

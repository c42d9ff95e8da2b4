package services

import (
	"regexp"
	"testing"
	"time"
)

func TestGenerateOrderNumberFormat(t *testing.T) {
	now := time.Date(2024, 3, 9, 12, 30, 0, 0, time.UTC)
	re := regexp.MustCompile(`^FSS20240309[A-Z0-9]{8}$`)

	n := GenerateOrderNumber(now)
	if !re.MatchString(n) {
		t.Fatalf("order number %q does not match %s", n, re)
	}
}

func TestGenerateOrderNumberUniqueness(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool, 10000)
	dupes := 0
	for i := 0; i < 10000; i++ {
		n := GenerateOrderNumber(now)
		if seen[n] {
			dupes++
		}
		seen[n] = true
	}
	// The unique index on orders.order_number is the hard guarantee; a single
	// random collision is tolerable, repeated ones mean the suffix degraded.
	if dupes > 1 {
		t.Fatalf("%d duplicate order numbers in 10000 samples", dupes)
	}
}

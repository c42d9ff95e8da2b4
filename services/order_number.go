package services

import (
	"time"

	"github.com/google/uuid"
)

// OrderNumberPrefix starts every externally visible order number.
const OrderNumberPrefix = "FSS"

const suffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderNumber builds a human-legible, globally unique order number:
// prefix, order date, then an 8-char uppercase alphanumeric suffix drawn from
// random UUID bytes. The unique index on orders.order_number is the
// authoritative guarantee; the generator only makes collisions negligible.
func GenerateOrderNumber(now time.Time) string {
	id := uuid.New()
	suffix := make([]byte, 8)
	for i := range suffix {
		// Two UUID bytes per character keep the modulo bias negligible.
		v := uint16(id[2*i])<<8 | uint16(id[2*i+1])
		suffix[i] = suffixAlphabet[v%uint16(len(suffixAlphabet))]
	}
	return OrderNumberPrefix + now.Format("20060102") + string(suffix)
}

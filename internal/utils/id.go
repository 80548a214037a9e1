package utils

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	fractionBits = 52
	fractionMask = 1<<fractionBits - 1
	// Digits kept from the random fraction; about as many as a float64 carries in base 36.
	randomDigits = 11
	base36Digits = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// IDGenerator builds opaque identifiers from a pseudo-random fraction and
// the current time, both base-36 encoded. Identifiers are not suitable for
// security-sensitive use.
type IDGenerator struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
	// Rand returns pseudo-random bits. Defaults to math/rand/v2.
	Rand func() uint64
}

var defaultIDGenerator = IDGenerator{}

// NewIDGenerator returns a generator using the system clock and math/rand/v2.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{Now: time.Now, Rand: rand.Uint64}
}

// Generate returns the random part followed by the time part.
func (g IDGenerator) Generate() string {
	now, rnd := g.Now, g.Rand
	if now == nil {
		now = time.Now
	}
	if rnd == nil {
		rnd = rand.Uint64
	}
	return base36Fraction(rnd()>>(64-fractionBits)) + strconv.FormatInt(now().UnixMilli(), 36)
}

// GenerateID returns a new identifier such as "k3j9x0q1ztlz5f6k1a".
func GenerateID() string {
	return defaultIDGenerator.Generate()
}

// base36Fraction writes the base-36 digits after the point of mantissa/2^52,
// dropping trailing zeros. A zero mantissa yields an empty string.
func base36Fraction(mantissa uint64) string {
	var sb strings.Builder
	x := mantissa & fractionMask
	for i := 0; i < randomDigits && x != 0; i++ {
		x *= 36
		sb.WriteByte(base36Digits[x>>fractionBits])
		x &= fractionMask
	}
	return strings.TrimRight(sb.String(), "0")
}

// =============================================================================
// XML Report Generator - Generation Rules
// =============================================================================
//
// This file defines the generation rule variants the field value catalog
// dispatches on, together with the randomness source they draw from. Every
// rule is a pure function of the source state: identical seed and call order
// produce identical output sequences, which is what makes seeded generation
// runs byte-reproducible.
//
// RULE VARIANTS:
//   - Literal       : fixed string
//   - ChoiceSet     : one value from a fixed list
//   - NumericRange  : integer in [Min, Max], base-10
//   - DigitString   : exactly N random digits
//   - Amount        : whole amount, 1..MaxDigits digits, nonzero leading digit
//   - DateToken     : formatted date up to MaxAgeDays in the past
//   - Blank         : always the empty string
//   - Email, Phone, Street : shaped random text for contact fields
//
// =============================================================================

package catalog

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// =============================================================================
// RANDOMNESS SOURCE
// =============================================================================

const (
	digits        = "0123456789"
	nonzeroDigits = "123456789"
	lowerLetters  = "abcdefghijklmnopqrstuvwxyz"
	alphanumerics = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Source is the stateful randomness source threaded through every rule.
// Each generation run owns its own Source; nothing here is process-wide, so
// concurrent runs with separate Sources never interfere.
type Source struct {
	rng *rand.Rand
	now func() time.Time
}

// NewSource creates a Source seeded with the given value.
//
// PARAMETERS:
//   - seed: Fixes every subsequent draw. Callers wanting non-reproducible
//     output pass something like time.Now().UnixNano().
//   - now:  Clock used by date rules. Pass nil for the real clock; tests
//     inject a fixed clock to make date tokens reproducible too.
func NewSource(seed int64, now func() time.Time) *Source {
	if now == nil {
		now = time.Now
	}
	return &Source{
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// Intn returns a draw in [0, n).
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

// pick returns one rune from the given alphabet.
func (s *Source) pick(alphabet string) byte {
	return alphabet[s.rng.Intn(len(alphabet))]
}

// runOf returns n random characters from the given alphabet.
func (s *Source) runOf(alphabet string, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = s.pick(alphabet)
	}
	return string(buf)
}

// Alphanumeric returns n random ASCII letters and digits. This is the
// fallback shape for field ids the catalog does not recognize.
func (s *Source) Alphanumeric(n int) string {
	return s.runOf(alphanumerics, n)
}

// =============================================================================
// RULE INTERFACE
// =============================================================================

// Rule produces one value per call from the given source. Implementations
// must be stateless; all state lives in the Source.
type Rule interface {
	// Generate resolves one value.
	Generate(src *Source) string

	// Describe returns a short human-readable description of the rule,
	// used by the field dictionary export.
	Describe() string
}

// =============================================================================
// RULE IMPLEMENTATIONS
// =============================================================================

// Literal always generates the same fixed value.
type Literal struct {
	Value string
}

func (r Literal) Generate(*Source) string { return r.Value }

func (r Literal) Describe() string { return fmt.Sprintf("literal %q", r.Value) }

// ChoiceSet generates one value from a fixed list.
type ChoiceSet struct {
	Values []string
}

func (r ChoiceSet) Generate(src *Source) string {
	return r.Values[src.Intn(len(r.Values))]
}

func (r ChoiceSet) Describe() string {
	return fmt.Sprintf("one of %d fixed values", len(r.Values))
}

// NumericRange generates an integer in [Min, Max] as a base-10 string.
type NumericRange struct {
	Min int64
	Max int64
}

func (r NumericRange) Generate(src *Source) string {
	n := r.Min + src.rng.Int63n(r.Max-r.Min+1)
	return strconv.FormatInt(n, 10)
}

func (r NumericRange) Describe() string {
	return fmt.Sprintf("integer %d..%d", r.Min, r.Max)
}

// DigitString generates exactly Length random digits, leading zeros allowed.
type DigitString struct {
	Length int
}

func (r DigitString) Generate(src *Source) string {
	return src.runOf(digits, r.Length)
}

func (r DigitString) Describe() string {
	return fmt.Sprintf("%d digits", r.Length)
}

// Amount generates a whole amount of 1..MaxDigits digits with a nonzero
// leading digit, so the value never carries a leading zero.
type Amount struct {
	MaxDigits int
}

func (r Amount) Generate(src *Source) string {
	length := 1 + src.Intn(r.MaxDigits)
	first := string(src.pick(nonzeroDigits))
	if length == 1 {
		return first
	}
	return first + src.runOf(digits, length-1)
}

func (r Amount) Describe() string {
	return fmt.Sprintf("whole amount, 1..%d digits", r.MaxDigits)
}

// DateToken generates a date up to MaxAgeDays in the past, formatted with a
// Go reference layout (e.g. "20060102" or "010206").
type DateToken struct {
	Layout     string
	MaxAgeDays int
}

func (r DateToken) Generate(src *Source) string {
	age := src.Intn(r.MaxAgeDays + 1)
	return src.now().UTC().AddDate(0, 0, -age).Format(r.Layout)
}

func (r DateToken) Describe() string {
	return fmt.Sprintf("date %s, up to %d days old", r.Layout, r.MaxAgeDays)
}

// Blank always generates the empty string. The consumer requires the element
// to be present but empty.
type Blank struct{}

func (Blank) Generate(*Source) string { return "" }

func (Blank) Describe() string { return "blank" }

// Email generates a plausible address: ten lowercase letters at one of the
// fixed domains, capped at 80 characters.
type Email struct{}

func (Email) Generate(src *Source) string {
	user := src.runOf(lowerLetters, 10)
	domain := emailDomains[src.Intn(len(emailDomains))]
	addr := user + "@" + domain
	if len(addr) > 80 {
		addr = addr[:80]
	}
	return addr
}

func (Email) Describe() string { return "email address, max 80 chars" }

// Phone generates a ten-digit phone number with a nonzero leading digit.
type Phone struct{}

func (Phone) Generate(src *Source) string {
	return string(src.pick(nonzeroDigits)) + src.runOf(digits, 9)
}

func (Phone) Describe() string { return "10-digit phone number" }

// Street generates a street address: a house number 1..99999 plus one of the
// fixed street names.
type Street struct{}

func (Street) Generate(src *Source) string {
	return fmt.Sprintf("%d %s", 1+src.Intn(99999), streets[src.Intn(len(streets))])
}

func (Street) Describe() string { return "street address" }

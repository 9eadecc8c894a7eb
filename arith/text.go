package arith

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"lukechampine.com/uint128"
)

var (
	// ErrFractionRange is returned when a parsed fraction is negative or exceeds one.
	ErrFractionRange = errors.New("fraction out of range [0, 1]")
	// ErrFractionPrecision is returned when a parsed fraction is not a whole number of parts.
	ErrFractionPrecision = errors.New("fraction not representable at accuracy")
	// ErrAmountRange is returned when a parsed amount is negative or wider than 128 bits.
	ErrAmountRange = errors.New("amount out of range")
)

// parseFraction accepts "p/q", a decimal "0.99995" or a percentage "70%" and
// returns the exact number of parts at acc.
func parseFraction(text string, acc uint64) (uint64, error) {
	s := strings.TrimSpace(text)
	scale := big.NewRat(1, 1)
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
		scale = big.NewRat(1, 100)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return 0, fmt.Errorf("invalid fraction %q", text)
	}
	r.Mul(r, scale)
	if r.Sign() < 0 || r.Cmp(big.NewRat(1, 1)) > 0 {
		return 0, fmt.Errorf("%w: %q", ErrFractionRange, text)
	}
	r.Mul(r, new(big.Rat).SetUint64(acc))
	if !r.IsInt() {
		return 0, fmt.Errorf("%w: %q at 1/%d", ErrFractionPrecision, text, acc)
	}
	return r.Num().Uint64(), nil
}

// formatFraction renders parts/acc as a trimmed decimal.
func formatFraction(parts, acc uint64) string {
	digits := len(strconv.FormatUint(acc, 10)) - 1
	whole, frac := parts/acc, parts%acc
	if frac == 0 {
		return strconv.FormatUint(whole, 10)
	}
	s := fmt.Sprintf("%d.%0*d", whole, digits, frac)
	return strings.TrimRight(s, "0")
}

// ParsePerbill parses a fraction at billionths accuracy.
func ParsePerbill(text string) (Perbill, error) {
	parts, err := parseFraction(text, perbillAccuracy)
	if err != nil {
		return 0, err
	}
	return Perbill(parts), nil
}

func (f Perbill) String() string { return formatFraction(f.Parts(), perbillAccuracy) }

// MarshalText implements encoding.TextMarshaler.
func (f Perbill) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Perbill) UnmarshalText(text []byte) error {
	v, err := ParsePerbill(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// ParsePercent parses a fraction at hundredths accuracy.
func ParsePercent(text string) (Percent, error) {
	parts, err := parseFraction(text, percentAccuracy)
	if err != nil {
		return 0, err
	}
	return Percent(parts), nil
}

func (f Percent) String() string { return strconv.FormatUint(f.Parts(), 10) + "%" }

// MarshalText implements encoding.TextMarshaler.
func (f Percent) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Percent) UnmarshalText(text []byte) error {
	v, err := ParsePercent(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// ParseUint128 parses a base 10 integer that fits the reference width.
// Underscores are accepted as digit separators.
func ParseUint128(text string) (uint128.Uint128, error) {
	s := strings.ReplaceAll(strings.TrimSpace(text), "_", "")
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return uint128.Zero, fmt.Errorf("invalid amount %q", text)
	}
	if b.Sign() < 0 || b.BitLen() > 128 {
		return uint128.Zero, fmt.Errorf("%w: %q", ErrAmountRange, text)
	}
	return uint128.FromBig(b), nil
}

// Parse parses a base 10 amount, saturating into T.
func Parse[T Amount[T]](text string) (T, error) {
	var zero T
	v, err := ParseUint128(text)
	if err != nil {
		return zero, err
	}
	return zero.FromRef(v), nil
}

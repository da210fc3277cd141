package types

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SatoshisPerCoin is the number of base units in one coin.
const SatoshisPerCoin = 100_000_000

// Amount is a coin value in satoshis. It decodes from either a JSON number
// or a decimal string, since the daemon uses both.
type Amount int64

// ParseAmount converts a decimal coin string such as "12.34500000" into
// satoshis without going through floating point. Exponent notation is
// accepted and rounded to the nearest satoshi.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
		}
		sat := math.Round(f * SatoshisPerCoin)
		// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
		if math.IsNaN(sat) || math.Abs(sat) >= math.MaxInt64 {
			return 0, fmt.Errorf("%w: %q overflows", ErrInvalidAmount, s)
		}
		return Amount(sat), nil
	}

	neg := strings.HasPrefix(s, "-")
	whole, frac, _ := strings.Cut(strings.TrimPrefix(s, "-"), ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("%w: %q has no digits", ErrInvalidAmount, s)
	}
	if len(frac) > 8 {
		return 0, fmt.Errorf("%w: %q has more than 8 decimal places", ErrInvalidAmount, s)
	}
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseUint(whole, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	var f uint64
	if frac != "" {
		if f, err = strconv.ParseUint(frac+strings.Repeat("0", 8-len(frac)), 10, 63); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
		}
	}
	if w > (math.MaxInt64-f)/SatoshisPerCoin {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidAmount, s)
	}
	sat := int64(w*SatoshisPerCoin + f)
	if neg {
		sat = -sat
	}
	return Amount(sat), nil
}

// Coins returns the amount as a floating-point coin value.
func (a Amount) Coins() float64 { return float64(a) / SatoshisPerCoin }

// String formats the amount with eight decimal places.
func (a Amount) String() string {
	sign := ""
	v := uint64(a)
	if a < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%08d", sign, v/SatoshisPerCoin, v%SatoshisPerCoin)
}

func (a Amount) MarshalJSON() ([]byte, error) { return []byte(a.String()), nil }

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	v, err := ParseAmount(string(data))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

package acoesbr

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Info is the raw metadata record returned by a provider for one ticker.
//
// Keys follow the provider's field names (e.g. "regularMarketPrice",
// "trailingPE"). Any field may be missing or nil.
type Info map[string]any

// Coalesce returns the value of the first key present in m with a non-nil
// value. ok is false when none of the keys qualifies.
func Coalesce[M ~map[K]V, K comparable, V any](m M, keys ...K) (v V, ok bool) {
	for _, k := range keys {
		if v, found := m[k]; found && any(v) != nil {
			return v, true
		}
	}
	return v, false
}

// Number returns the first non-nil value among keys as a decimal.
//
// The result is null (Valid is false) if no key is set or if the value is
// not a finite number.
func (i Info) Number(keys ...string) decimal.NullDecimal {
	v, ok := Coalesce(i, keys...)
	if !ok {
		return decimal.NullDecimal{}
	}
	return toDecimal(v)
}

// Text returns the first non-nil value among keys as a string, or "" if
// there is none or it is not a string.
func (i Info) Text(keys ...string) string {
	v, ok := Coalesce(i, keys...)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func toDecimal(v any) decimal.NullDecimal {
	switch x := v.(type) {
	case decimal.Decimal:
		return decimal.NewNullDecimal(x)
	case decimal.NullDecimal:
		return x
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		if err != nil {
			return decimal.NullDecimal{}
		}
		return decimal.NewNullDecimal(d)
	case float64:
		return fromFloat(x)
	case float32:
		return fromFloat(float64(x))
	case int:
		return decimal.NewNullDecimal(decimal.NewFromInt(int64(x)))
	case int32:
		return decimal.NewNullDecimal(decimal.NewFromInt32(x))
	case int64:
		return decimal.NewNullDecimal(decimal.NewFromInt(x))
	}
	return decimal.NullDecimal{}
}

// fromFloat rejects NaN and infinities, decimal.NewFromFloat panics on them.
func fromFloat(f float64) decimal.NullDecimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat(f))
}

package types

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

const DefaultSex = 0.5

// Sex accepts either a number or a category string on the wire.
type Sex struct {
	Value float64
	Valid bool
}

func (s *Sex) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch t := v.(type) {
	case nil:
		*s = Sex{}
	case float64:
		*s = Sex{Value: t, Valid: true}
	case string:
		*s = Sex{Value: NormalizeSex(t), Valid: true}
	default:
		return fmt.Errorf("sex: expected a number or a string, got %T", v)
	}
	return nil
}

func (s Sex) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}

func (s Sex) Float64() float64 {
	if !s.Valid {
		return DefaultSex
	}
	return s.Value
}

// NormalizeSex maps "male"/"m" to 1 and "female"/"f" to 0, ignoring case.
// Anything else maps to 0.5.
func NormalizeSex(s string) float64 {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return 1
	case "female", "f":
		return 0
	default:
		return DefaultSex
	}
}

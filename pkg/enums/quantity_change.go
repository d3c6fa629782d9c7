package enums

import "fmt"

// QuantityChange is the direction of a cart line quantity adjustment.
type QuantityChange string

const (
	QuantityIncrease QuantityChange = "increase"
	QuantityDecrease QuantityChange = "decrease"
)

var validQuantityChanges = []QuantityChange{
	QuantityIncrease,
	QuantityDecrease,
}

// String implements fmt.Stringer.
func (q QuantityChange) String() string {
	return string(q)
}

// IsValid reports whether the value is a known QuantityChange.
func (q QuantityChange) IsValid() bool {
	for _, candidate := range validQuantityChanges {
		if candidate == q {
			return true
		}
	}
	return false
}

// ParseQuantityChange converts raw input into a QuantityChange.
func ParseQuantityChange(value string) (QuantityChange, error) {
	for _, candidate := range validQuantityChanges {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid quantity change %q", value)
}

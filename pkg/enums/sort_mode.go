package enums

import "fmt"

// SortMode selects how a product listing is ordered by price.
type SortMode string

const (
	SortModeNone    SortMode = "none"
	SortModeLowHigh SortMode = "low_high"
	SortModeHighLow SortMode = "high_low"
)

var validSortModes = []SortMode{
	SortModeNone,
	SortModeLowHigh,
	SortModeHighLow,
}

// String implements fmt.Stringer.
func (s SortMode) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortMode.
func (s SortMode) IsValid() bool {
	for _, candidate := range validSortModes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortMode converts raw input into a SortMode.
func ParseSortMode(value string) (SortMode, error) {
	for _, candidate := range validSortModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort mode %q", value)
}

package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ContainsString checks if a slice of strings contains a specific string.
func ContainsString(slice []string, str string) bool {
	for _, item := range slice {
		if item == str {
			return true
		}
	}
	return false
}

func ToPointer[T any](value T) *T {
	return &value
}

func FormatPercentage(value float64) string {
	return fmt.Sprintf("%+.2f%%", value)
}

// FormatMoney renders a value with thousands separators and two decimals.
func FormatMoney(value float64) string {
	neg := value < 0
	if neg {
		value = -value
	}

	s := strconv.FormatFloat(value, 'f', 2, 64)
	parts := strings.SplitN(s, ".", 2)

	intPart := parts[0]
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String() + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

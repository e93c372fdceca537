package model

import (
	"math"
	"strings"
)

// MaxStars caps how many stars a rating draws. The numeric rating is always
// shown next to them, so larger values lose nothing.
const MaxStars = 10

// Stars renders a rating as full stars plus a half star when the fraction
// is at least one half. Negative and non-finite ratings render as nothing.
func Stars(rating float64) string {
	if math.IsNaN(rating) || math.IsInf(rating, 0) || rating <= 0 {
		return ""
	}
	if rating >= MaxStars {
		return strings.Repeat("★", MaxStars)
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("★", int(math.Floor(rating))))
	if math.Mod(rating, 1) >= 0.5 {
		b.WriteString("½")
	}
	return b.String()
}

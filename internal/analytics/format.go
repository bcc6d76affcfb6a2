package analytics

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Currency formats a value as whole dollars with thousands separators
func Currency(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "$" + humanize.Comma(int64(math.Round(v)))
}

// CompactCurrency formats large values with an SI suffix, e.g. $1.2M
func CompactCurrency(v float64) string {
	if math.Abs(v) < 1000 {
		return Currency(v)
	}
	value, prefix := humanize.ComputeSI(v)
	return "$" + humanize.FtoaWithDigits(value, 1) + siSuffix(prefix)
}

func siSuffix(prefix string) string {
	switch prefix {
	case "k":
		return "K"
	case "G":
		return "B"
	default:
		return prefix
	}
}

// Percent formats a 0..1 ratio as a whole percentage
func Percent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}

package currency

import (
	"fmt"
	"math"
	"strings"
)

// Round2 rounds to cents.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// FormatUSD renders an amount as "$1,234.56".
func FormatUSD(amount float64) string {
	rounded := Round2(amount)

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	s := fmt.Sprintf("%.2f", rounded)
	intPart, frac, _ := strings.Cut(s, ".")

	result := "$" + addThousandsSeparator(intPart, ",") + "." + frac
	if negative {
		result = "-" + result
	}

	return result
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}

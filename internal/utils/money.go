package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCurrency renders a USD amount as "$1,234.50".
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	cents := int64(amount*100 + 0.5)
	return fmt.Sprintf("%s$%s.%02d", sign, formatThousand(cents/100), cents%100)
}

// RoundMoney rounds to whole cents so float sums stay printable.
func RoundMoney(amount float64) float64 {
	if amount < 0 {
		return -RoundMoney(-amount)
	}
	return float64(int64(amount*100+0.5)) / 100
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}

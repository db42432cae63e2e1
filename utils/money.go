package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatAmount formats a monetary amount for printable documents, like
// "12 500,00 DHs". Uses a space as thousands separator and a comma decimal
// mark (French convention used on all documents).
func FormatAmount(amount float64, currency string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	neg := amount < 0
	if neg {
		amount = -amount
	}

	cents := int64(math.Round(amount * 100))
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3 + 8)
	if neg {
		b.WriteByte('-')
	}

	rem := len(digits) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(digits[:rem])
	for i := rem; i < len(digits); i += 3 {
		b.WriteByte(' ')
		b.WriteString(digits[i : i+3])
	}

	b.WriteString(fmt.Sprintf(",%02d", frac))
	if currency != "" {
		b.WriteByte(' ')
		b.WriteString(currency)
	}

	return b.String()
}

// FormatQuantity formats a computed quantity with its unit suffix, like
// "1.50M2". Display-only: the stored value stays a plain number plus a
// separate unit field.
func FormatQuantity(quantity float64, unit string) string {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		quantity = 0
	}
	return fmt.Sprintf("%.2f%s", quantity, unit)
}

package money

import (
	"github.com/shopspring/decimal"
)

// Places is the currency precision used for display.
const Places = 2

func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Round rounds half away from zero to currency precision. Only call it
// when rendering; engine arithmetic keeps full precision.
func Round(value decimal.Decimal) decimal.Decimal {
	return value.Round(Places)
}

// ClampQuantity applies a stepper delta without going below one.
func ClampQuantity(q, delta int) int {
	if next := q + delta; next > 1 {
		return next
	}
	return 1
}

// Format renders "$12.50", or "-$5.00" for negative amounts.
func Format(value decimal.Decimal) string {
	sign := ""
	if value.IsNegative() {
		sign = "-"
	}
	return sign + "$" + value.Abs().StringFixed(Places)
}

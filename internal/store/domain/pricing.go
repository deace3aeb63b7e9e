package domain

// CalcSalePrice computes the discounted price of a product.
//
// The rounding contract is half-up (half-away-from-zero for the
// non-negative inputs used here): CalcSalePrice(1000, 10) == 900,
// CalcSalePrice(999, 33) == 669, CalcSalePrice(3, 50) == 2.
// Every call site must charge exactly this amount.
func CalcSalePrice(originalPrice int64, discountRate int) int64 {
	return (originalPrice*int64(100-discountRate) + 50) / 100
}

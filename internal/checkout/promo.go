package checkout

import (
	"github.com/nikolayk812/foodorder-demo/internal/domain"
	"strings"
)

// PromoCodes is the allow-list of accepted codes. Matching is exact and
// case-sensitive after trimming surrounding whitespace.
type PromoCodes map[string]struct{}

func NewPromoCodes(codes ...string) PromoCodes {
	set := make(PromoCodes, len(codes))
	for _, code := range codes {
		if code = strings.TrimSpace(code); code != "" {
			set[code] = struct{}{}
		}
	}
	return set
}

func (p PromoCodes) Contains(code string) bool {
	_, ok := p[strings.TrimSpace(code)]
	return ok
}

func ValidatePromoCode(code string, known PromoCodes) bool {
	return known.Contains(code)
}

// DiscountFunc maps the subtotal of an order carrying a valid promo code to
// the discounted subtotal. Tax is computed on the result.
type DiscountFunc func(code string, subtotal domain.Money) domain.Money

// NoDiscount accepts codes without changing the price.
func NoDiscount(_ string, subtotal domain.Money) domain.Money {
	return subtotal
}

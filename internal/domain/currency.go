package domain

import "github.com/momozvault/go-backend/pkg/e"

// Currency is one of the two display currencies supported by the shop.
type Currency string

const (
	CurrencyUGX Currency = "UGX"
	CurrencyKES Currency = "KES"

	// DefaultCurrency is applied until a preference is stored.
	DefaultCurrency = CurrencyUGX
)

func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case CurrencyUGX, CurrencyKES:
		return Currency(s), nil
	default:
		return "", e.ErrInvalidCurrency
	}
}

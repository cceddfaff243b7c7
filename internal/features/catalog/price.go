package catalog

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/servererrors"
)

// Price is either a plain amount or a discounted pair of base and reduced
// amounts. The constructors are the only way to build one, so a discount with
// a missing or inflated reduced price is unrepresentable after construction;
// [servererrors.ErrInvalidPriceState] surfaces at the decode boundary (db
// scan, admin payload) and is never auto-corrected.
type Price struct {
	amount     float64
	reduced    float64
	discounted bool
}

func PlainPrice(amount float64) Price {
	return Price{amount: amount}
}

func NewDiscountedPrice(amount, reduced float64) (Price, error) {
	if reduced < 0 || reduced > amount {
		return Price{}, fmt.Errorf(
			"%w: reduced price %.2f against base price %.2f",
			servererrors.ErrInvalidPriceState,
			reduced,
			amount,
		)
	}

	return Price{
		amount:     amount,
		reduced:    reduced,
		discounted: true,
	}, nil
}

// PriceFromParts rebuilds a Price from the flag-and-field representation used
// by storage rows and admin payloads.
func PriceFromParts(amount float64, reduced *float64, discountApplied bool) (Price, error) {
	if !discountApplied {
		return PlainPrice(amount), nil
	}

	if reduced == nil {
		return Price{}, fmt.Errorf(
			"%w: discount applied but no discounted price present",
			servererrors.ErrInvalidPriceState,
		)
	}

	return NewDiscountedPrice(amount, *reduced)
}

// Amount is the base price. Price-bracket filtering always uses this value;
// discounts do not change which bracket a product belongs to.
func (p Price) Amount() float64 {
	return p.amount
}

func (p Price) Reduced() (float64, bool) {
	return p.reduced, p.discounted
}

// ResolvedPrice is what a listing displays: the effective price, plus the
// struck-through base price when a discount is active.
type ResolvedPrice struct {
	DisplayPrice       float64  `json:"displayPrice"`
	StrikethroughPrice *float64 `json:"strikethroughPrice,omitempty"`
}

func (p Price) Resolve() ResolvedPrice {
	if !p.discounted {
		return ResolvedPrice{
			DisplayPrice: roundToCents(p.amount),
		}
	}

	strikethrough := roundToCents(p.amount)

	return ResolvedPrice{
		DisplayPrice:       roundToCents(p.reduced),
		StrikethroughPrice: &strikethrough,
	}
}

// roundToCents keeps monetary values at two decimals so float arithmetic
// artifacts never reach a response.
func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}

type priceJSON struct {
	Amount          float64  `json:"amount"`
	DiscountedAmount *float64 `json:"discountedAmount,omitempty"`
}

func (p Price) MarshalJSON() ([]byte, error) {
	pj := priceJSON{Amount: p.amount}
	if p.discounted {
		reduced := p.reduced
		pj.DiscountedAmount = &reduced
	}

	return json.Marshal(pj)
}

func (p *Price) UnmarshalJSON(data []byte) error {
	var pj priceJSON
	if err := json.Unmarshal(data, &pj); err != nil {
		return err
	}

	price, err := PriceFromParts(pj.Amount, pj.DiscountedAmount, pj.DiscountedAmount != nil)
	if err != nil {
		return err
	}

	*p = price

	return nil
}

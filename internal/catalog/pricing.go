package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/models"
)

var oneHundred = decimal.NewFromInt(100)

// DisplayPriceCents resolves the price shown to buyers. An explicit sale price
// wins, then a percentage discount applied to the base price, then the base
// price itself.
func DisplayPriceCents(p *models.Product) int {
	if p == nil {
		return 0
	}
	if p.SalePriceCents != nil && *p.SalePriceCents > 0 {
		return *p.SalePriceCents
	}
	if p.DiscountPercent != nil && *p.DiscountPercent > 0 {
		base := decimal.NewFromInt(int64(p.BasePriceCents))
		pct := decimal.NewFromFloat(*p.DiscountPercent)
		factor := decimal.NewFromInt(1).Sub(pct.Div(oneHundred))
		return int(base.Mul(factor).Round(0).IntPart())
	}
	return p.BasePriceCents
}

// HasDiscount reports whether the product is discounted in any form: a
// positive percent discount, a sale price below the base price, or a list
// price above the display price. The discounted-only browse filter applies
// the same predicate in SQL.
func HasDiscount(p *models.Product) bool {
	if p == nil {
		return false
	}
	if p.DiscountPercent != nil && *p.DiscountPercent > 0 {
		return true
	}
	if p.SalePriceCents != nil && *p.SalePriceCents > 0 && *p.SalePriceCents < p.BasePriceCents {
		return true
	}
	return p.MRPCents != nil && *p.MRPCents > DisplayPriceCents(p)
}

// DiscountBadgePercent derives the "X% off" badge from the list price. The
// badge is never stored; it is round((mrp-price)/mrp*100) and nil when the
// product has no list price or the display price is not below it.
func DiscountBadgePercent(p *models.Product) *int {
	if p == nil || p.MRPCents == nil || *p.MRPCents <= 0 {
		return nil
	}
	price := DisplayPriceCents(p)
	if price >= *p.MRPCents {
		return nil
	}

	mrp := decimal.NewFromInt(int64(*p.MRPCents))
	diff := mrp.Sub(decimal.NewFromInt(int64(price)))
	pct := diff.Div(mrp).Mul(oneHundred).Round(0)
	value := int(pct.IntPart())
	if value <= 0 {
		return nil
	}
	return &value
}

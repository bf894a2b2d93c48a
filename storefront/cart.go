package storefront

import (
	"github.com/govalues/decimal"
)

// CartState is the B2B cart slice: order lines plus the purchase metadata a
// business checkout requires before submission.
type CartState struct {
	Items             []CartItem
	PONumber          string
	CostCenterID      string
	ShippingAddressID string
	Notes             string
}

// CartItem is one order line. Min/MaxQuantity carry the product's order
// constraints into the cart so quantity validity stays checkable offline;
// a zero MaxQuantity means unbounded.
type CartItem struct {
	SKU          string
	Name         string
	UnitPrice    decimal.Decimal
	Quantity     int
	MinQuantity  int
	MaxQuantity  int
	LeadTimeDays int
}

// LineTotal is quantity times unit price.
func (ci CartItem) LineTotal() decimal.Decimal {
	return mustMulInt(ci.UnitPrice, ci.Quantity)
}

// QuantityValid reports whether the line quantity respects the product's
// order constraints.
func (ci CartItem) QuantityValid() bool {
	if ci.Quantity < ci.MinQuantity {
		return false
	}
	if ci.MaxQuantity > 0 && ci.Quantity > ci.MaxQuantity {
		return false
	}
	return ci.Quantity > 0
}

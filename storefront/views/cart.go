package views

import (
	"github.com/govalues/decimal"

	"github.com/on-the-ground/select_ive_go/selectors"
	"github.com/on-the-ground/select_ive_go/storefront"
)

// Checkout pricing policy. Discount tiers apply to the undiscounted
// subtotal; shipping is waived above the free threshold.
var (
	volumeTier1Threshold = decimal.MustParse("1000.00")
	volumeTier1Rate      = decimal.MustParse("0.05")
	volumeTier2Threshold = decimal.MustParse("5000.00")
	volumeTier2Rate      = decimal.MustParse("0.10")
	freeShippingOver     = decimal.MustParse("500.00")
	flatShippingFee      = decimal.MustParse("49.00")
)

// CartItems returns the order lines of the cart.
func CartItems(s *storefront.State) []storefront.CartItem {
	return s.Cart.Items
}

// CartLineCount returns how many distinct lines the cart holds.
func CartLineCount(s *storefront.State) int {
	return len(s.Cart.Items)
}

// CartIsEmpty reports whether the cart holds no lines.
func CartIsEmpty(s *storefront.State) bool {
	return len(s.Cart.Items) == 0
}

// PONumber returns the purchase order number entered for checkout, or "".
func PONumber(s *storefront.State) string {
	return s.Cart.PONumber
}

// SelectedCostCenterID returns the cost center picked for the order, or "".
func SelectedCostCenterID(s *storefront.State) string {
	return s.Cart.CostCenterID
}

// SelectedShippingAddressID returns the delivery address picked for the
// order, or "".
func SelectedShippingAddressID(s *storefront.State) string {
	return s.Cart.ShippingAddressID
}

// CartNotes returns the free-text delivery notes, or "".
func CartNotes(s *storefront.State) string {
	return s.Cart.Notes
}

// CartItemBySKU returns the order line with the given SKU, or nil.
var CartItemBySKU = register(selectors.NewKeyed(
	func(s *storefront.State, sku string) *storefront.CartItem {
		for i := range s.Cart.Items {
			if s.Cart.Items[i].SKU == sku {
				ci := s.Cart.Items[i]
				return &ci
			}
		}
		return nil
	},
).WithName("cart.item_by_sku")).Eval

var cartUnitCount = register(selectors.Derive1(
	CartItems,
	func(items []storefront.CartItem) int {
		units := 0
		for _, ci := range items {
			units += ci.Quantity
		}
		return units
	},
).WithName("cart.unit_count"))

// CartUnitCount returns how many units the cart holds across all lines.
var CartUnitCount = cartUnitCount.Eval

var cartSubtotal = register(selectors.Derive1(
	CartItems,
	func(items []storefront.CartItem) decimal.Decimal {
		total := decimal.Decimal{}
		for _, ci := range items {
			total = addMoney(total, ci.LineTotal())
		}
		return total
	},
).WithName("cart.subtotal"))

// CartSubtotal returns the undiscounted sum of all line totals.
var CartSubtotal = cartSubtotal.Eval

var invalidQuantityItems = register(selectors.Derive1(
	CartItems,
	func(items []storefront.CartItem) []storefront.CartItem {
		out := make([]storefront.CartItem, 0, len(items))
		for _, ci := range items {
			if !ci.QuantityValid() {
				out = append(out, ci)
			}
		}
		return out
	},
).WithName("cart.invalid_quantity_items"))

// InvalidQuantityItems returns the lines whose quantity breaks the
// product's order constraints.
var InvalidQuantityItems = invalidQuantityItems.Eval

// AllQuantitiesValid reports whether every line respects its order
// constraints. An empty cart is trivially valid.
var AllQuantitiesValid = register(selectors.Derive1(
	invalidQuantityItems.Eval,
	func(invalid []storefront.CartItem) bool { return len(invalid) == 0 },
).WithName("cart.all_quantities_valid")).Eval

// ItemsBelowMinimum returns the lines ordered under the product's minimum.
var ItemsBelowMinimum = register(selectors.Derive1(
	CartItems,
	func(items []storefront.CartItem) []storefront.CartItem {
		out := make([]storefront.CartItem, 0, len(items))
		for _, ci := range items {
			if ci.Quantity < ci.MinQuantity {
				out = append(out, ci)
			}
		}
		return out
	},
).WithName("cart.items_below_minimum")).Eval

// ItemsAboveMaximum returns the lines ordered over the product's maximum.
// Lines without an upper bound never appear.
var ItemsAboveMaximum = register(selectors.Derive1(
	CartItems,
	func(items []storefront.CartItem) []storefront.CartItem {
		out := make([]storefront.CartItem, 0, len(items))
		for _, ci := range items {
			if ci.MaxQuantity > 0 && ci.Quantity > ci.MaxQuantity {
				out = append(out, ci)
			}
		}
		return out
	},
).WithName("cart.items_above_maximum")).Eval

var volumeDiscount = register(selectors.Derive1(
	cartSubtotal.Eval,
	func(subtotal decimal.Decimal) decimal.Decimal {
		switch {
		case subtotal.Cmp(volumeTier2Threshold) >= 0:
			return mulMoney(subtotal, volumeTier2Rate).Round(2)
		case subtotal.Cmp(volumeTier1Threshold) >= 0:
			return mulMoney(subtotal, volumeTier1Rate).Round(2)
		default:
			return decimal.Decimal{}
		}
	},
).WithName("cart.volume_discount"))

// VolumeDiscount returns the money the order volume takes off the subtotal.
var VolumeDiscount = volumeDiscount.Eval

var cartTax = register(selectors.Derive3(
	cartSubtotal.Eval,
	volumeDiscount.Eval,
	CurrentCompany,
	func(subtotal, discount decimal.Decimal, c *storefront.Company) decimal.Decimal {
		if c == nil || c.TaxRate.IsZero() {
			return decimal.Decimal{}
		}
		return mulMoney(subMoney(subtotal, discount), c.TaxRate).Round(2)
	},
).WithName("cart.tax"))

// CartTax returns the tax due on the discounted subtotal at the company's
// rate. No session or a zero rate reads as no tax.
var CartTax = cartTax.Eval

var shippingCost = register(selectors.Derive1(
	cartSubtotal.Eval,
	func(subtotal decimal.Decimal) decimal.Decimal {
		if subtotal.IsZero() || subtotal.Cmp(freeShippingOver) > 0 {
			return decimal.Decimal{}
		}
		return flatShippingFee
	},
).WithName("cart.shipping_cost"))

// ShippingCost returns the delivery fee: waived for empty carts and above
// the free-shipping threshold, flat otherwise.
var ShippingCost = shippingCost.Eval

var cartGrandTotal = register(selectors.Derive4(
	cartSubtotal.Eval,
	volumeDiscount.Eval,
	cartTax.Eval,
	shippingCost.Eval,
	func(subtotal, discount, tax, shipping decimal.Decimal) decimal.Decimal {
		return addMoney(addMoney(subMoney(subtotal, discount), tax), shipping)
	},
).WithName("cart.grand_total"))

// CartGrandTotal returns what the order costs: subtotal minus discount,
// plus tax and shipping.
var CartGrandTotal = cartGrandTotal.Eval

// CartLeadTimeDays returns the longest lead time across the order lines,
// the earliest the whole order can ship together.
var CartLeadTimeDays = register(selectors.Derive1(
	CartItems,
	func(items []storefront.CartItem) int {
		days := 0
		for _, ci := range items {
			if ci.LeadTimeDays > days {
				days = ci.LeadTimeDays
			}
		}
		return days
	},
).WithName("cart.lead_time_days")).Eval

var selectedCostCenter = register(selectors.Derive2(
	CostCenters,
	SelectedCostCenterID,
	func(all []storefront.CostCenter, id string) *storefront.CostCenter {
		if id == "" {
			return nil
		}
		for i := range all {
			if all[i].ID == id {
				cc := all[i]
				return &cc
			}
		}
		return nil
	},
).WithName("cart.selected_cost_center"))

// SelectedCostCenter resolves the picked cost center against the company
// records, nil when unset or unknown.
var SelectedCostCenter = selectedCostCenter.Eval

var selectedShippingAddress = register(selectors.Derive2(
	Addresses,
	SelectedShippingAddressID,
	func(all []storefront.Address, id string) *storefront.Address {
		if id == "" {
			return nil
		}
		for i := range all {
			if all[i].ID == id {
				a := all[i]
				return &a
			}
		}
		return nil
	},
).WithName("cart.selected_shipping_address"))

// SelectedShippingAddress resolves the picked delivery address against the
// company records, nil when unset or unknown.
var SelectedShippingAddress = selectedShippingAddress.Eval

var withinSpendingLimit = register(selectors.Derive2(
	cartGrandTotal.Eval,
	CurrentEmployee,
	func(total decimal.Decimal, e *storefront.Employee) bool {
		if e == nil {
			return false
		}
		if e.Limits.PerOrder.IsZero() {
			return true
		}
		return total.Cmp(e.Limits.PerOrder) <= 0
	},
).WithName("cart.within_spending_limit"))

// WithinSpendingLimit reports whether the order total respects the acting
// employee's per-order limit. A zero limit means unlimited; no employee
// means nobody is authorized.
var WithinSpendingLimit = withinSpendingLimit.Eval

var withinCreditLimit = register(selectors.Derive2(
	cartGrandTotal.Eval,
	CurrentCompany,
	func(total decimal.Decimal, c *storefront.Company) bool {
		if c == nil {
			return false
		}
		return total.Cmp(c.CreditRemaining()) <= 0
	},
).WithName("cart.within_credit_limit"))

// WithinCreditLimit reports whether the order total fits the company's
// remaining credit. No session reads as false.
var WithinCreditLimit = withinCreditLimit.Eval

// Checkout blocker messages, stable strings the UI maps to hints.
const (
	BlockerEmptyCart          = "cart is empty"
	BlockerInvalidQuantities  = "cart has lines with invalid quantities"
	BlockerMissingPONumber    = "purchase order number is missing"
	BlockerNoCostCenter       = "no cost center selected"
	BlockerNoShippingAddress  = "no shipping address selected"
	BlockerSpendingLimit      = "order exceeds the per-order spending limit"
	BlockerInsufficientCredit = "insufficient credit available"
)

var checkoutBlockers = register(selectors.Derive6(
	func(s *storefront.State) *storefront.CartState { return s.Cart },
	invalidQuantityItems.Eval,
	selectedCostCenter.Eval,
	selectedShippingAddress.Eval,
	withinSpendingLimit.Eval,
	withinCreditLimit.Eval,
	func(
		cart *storefront.CartState,
		invalid []storefront.CartItem,
		costCenter *storefront.CostCenter,
		shipTo *storefront.Address,
		withinSpend, withinCredit bool,
	) []string {
		var blockers []string
		if len(cart.Items) == 0 {
			blockers = append(blockers, BlockerEmptyCart)
		}
		if len(invalid) > 0 {
			blockers = append(blockers, BlockerInvalidQuantities)
		}
		if cart.PONumber == "" {
			blockers = append(blockers, BlockerMissingPONumber)
		}
		if costCenter == nil {
			blockers = append(blockers, BlockerNoCostCenter)
		}
		if shipTo == nil {
			blockers = append(blockers, BlockerNoShippingAddress)
		}
		if !withinSpend {
			blockers = append(blockers, BlockerSpendingLimit)
		}
		if !withinCredit {
			blockers = append(blockers, BlockerInsufficientCredit)
		}
		return blockers
	},
).WithName("cart.checkout_blockers"))

// CheckoutBlockers returns everything still standing between the cart and
// submission, in checklist order. Empty means the order can go out.
var CheckoutBlockers = checkoutBlockers.Eval

// CheckoutReady reports whether the order can be submitted as-is.
var CheckoutReady = register(selectors.Derive1(
	checkoutBlockers.Eval,
	func(blockers []string) bool { return len(blockers) == 0 },
).WithName("cart.checkout_ready")).Eval

// CheckoutSummary is the flat pricing record the checkout pane renders.
type CheckoutSummary struct {
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	Tax        decimal.Decimal
	Shipping   decimal.Decimal
	GrandTotal decimal.Decimal
	Units      int
	Lines      int
}

// CartCheckoutSummary returns the pricing summary as a stable record: the
// returned pointer only changes when a figure actually changes, however
// the cart slice churns underneath.
var CartCheckoutSummary = register(selectors.StableDerive6(
	cartSubtotal.Eval,
	volumeDiscount.Eval,
	cartTax.Eval,
	shippingCost.Eval,
	cartUnitCount.Eval,
	CartLineCount,
	func(subtotal, discount, tax, shipping decimal.Decimal, units, lines int) CheckoutSummary {
		return CheckoutSummary{
			Subtotal:   subtotal,
			Discount:   discount,
			Tax:        tax,
			Shipping:   shipping,
			GrandTotal: addMoney(addMoney(subMoney(subtotal, discount), tax), shipping),
			Units:      units,
			Lines:      lines,
		}
	},
).WithName("cart.checkout_summary")).Eval

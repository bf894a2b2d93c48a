package views

import (
	"github.com/govalues/decimal"

	"github.com/on-the-ground/select_ive_go/selectors"
	"github.com/on-the-ground/select_ive_go/storefront"
)

// CurrentCompany returns the loaded company, or nil before a session starts.
func CurrentCompany(s *storefront.State) *storefront.Company {
	return s.Company.Company
}

// CompanyLoaded reports whether a company session is active.
func CompanyLoaded(s *storefront.State) bool {
	return s.Company.Company != nil
}

// CurrentEmployee returns the employee driving the session, or nil.
func CurrentEmployee(s *storefront.State) *storefront.Employee {
	return s.Company.Employee
}

// CompanyName returns the loaded company's name, or "".
func CompanyName(s *storefront.State) string {
	if c := s.Company.Company; c != nil {
		return c.Name
	}
	return ""
}

// CompanyCurrency returns the company's trading currency, or "".
func CompanyCurrency(s *storefront.State) string {
	if c := s.Company.Company; c != nil {
		return c.Currency
	}
	return ""
}

// CompanyTier returns the company's account tier, or "".
func CompanyTier(s *storefront.State) storefront.Tier {
	if c := s.Company.Company; c != nil {
		return c.Tier
	}
	return ""
}

// CompanyPaymentTerms returns the company's invoicing agreement, or "".
func CompanyPaymentTerms(s *storefront.State) storefront.PaymentTerms {
	if c := s.Company.Company; c != nil {
		return c.PaymentTerms
	}
	return ""
}

// CreditLimit returns the company's credit line, zero before a session.
func CreditLimit(s *storefront.State) decimal.Decimal {
	if c := s.Company.Company; c != nil {
		return c.CreditLimit
	}
	return decimal.Decimal{}
}

// CreditUsed returns the consumed part of the credit line, zero before a
// session.
func CreditUsed(s *storefront.State) decimal.Decimal {
	if c := s.Company.Company; c != nil {
		return c.CreditUsed
	}
	return decimal.Decimal{}
}

// CreditRemaining returns the unconsumed part of the credit line, zero
// before a session.
var CreditRemaining = register(selectors.Derive1(
	CurrentCompany,
	func(c *storefront.Company) decimal.Decimal {
		if c == nil {
			return decimal.Decimal{}
		}
		return c.CreditRemaining()
	},
).WithName("company.credit_remaining")).Eval

// CreditUsagePercent returns how much of the credit line is consumed, as a
// percentage. A zero or missing limit reads as 0, never a division by zero.
// The percent is computed in decimal and converted once, so round figures
// like 40 of 200 read exactly 20.
var CreditUsagePercent = register(selectors.Derive1(
	CurrentCompany,
	func(c *storefront.Company) float64 {
		if c == nil || c.CreditLimit.IsZero() {
			return 0
		}
		ratio, err := c.CreditUsed.Quo(c.CreditLimit)
		if err != nil {
			return 0
		}
		f, _ := mulMoney(ratio, hundred).Float64()
		return f
	},
).WithName("company.credit_usage_percent")).Eval

// Employees returns the company roster.
func Employees(s *storefront.State) []storefront.Employee {
	return s.Company.Employees
}

// ActiveEmployees returns the roster members still active on the account.
var ActiveEmployees = register(selectors.Derive1(
	Employees,
	func(all []storefront.Employee) []storefront.Employee {
		out := make([]storefront.Employee, 0, len(all))
		for _, e := range all {
			if e.Active {
				out = append(out, e)
			}
		}
		return out
	},
).WithName("company.active_employees")).Eval

// EmployeeByID returns the roster member with the given ID, or nil.
var EmployeeByID = register(selectors.NewKeyed(
	func(s *storefront.State, id string) *storefront.Employee {
		for i := range s.Company.Employees {
			if s.Company.Employees[i].ID == id {
				e := s.Company.Employees[i]
				return &e
			}
		}
		return nil
	},
).WithName("company.employee_by_id")).Eval

// EmployeesByRole returns the roster members holding exactly the given role.
var EmployeesByRole = register(selectors.NewKeyed(
	func(s *storefront.State, role storefront.Role) []storefront.Employee {
		out := make([]storefront.Employee, 0, len(s.Company.Employees))
		for _, e := range s.Company.Employees {
			if e.Role == role {
				out = append(out, e)
			}
		}
		return out
	},
	selectors.WithMaxEntries(4),
).WithName("company.employees_by_role")).Eval

// HasRole reports whether the acting employee holds at least the given role.
func HasRole(s *storefront.State, min storefront.Role) bool {
	e := s.Company.Employee
	return e != nil && e.Active && e.Role.AtLeast(min)
}

// CanPurchase reports whether the acting employee may place orders.
func CanPurchase(s *storefront.State) bool {
	return HasRole(s, storefront.RolePurchaser)
}

// CanApprove reports whether the acting employee may decide approvals.
func CanApprove(s *storefront.State) bool {
	return HasRole(s, storefront.RoleApprover)
}

// IsAdmin reports whether the acting employee administers the account.
func IsAdmin(s *storefront.State) bool {
	return HasRole(s, storefront.RoleAdmin)
}

// CurrentSpendingLimits returns the acting employee's purchasing envelope as
// a stable record: the returned pointer only changes when a limit actually
// changes, not when the employee pointer churns. Nil employee reads as the
// all-zero (unlimited) envelope.
var CurrentSpendingLimits = register(selectors.StableDerive1(
	CurrentEmployee,
	func(e *storefront.Employee) storefront.SpendingLimits {
		if e == nil {
			return storefront.SpendingLimits{}
		}
		return e.Limits
	},
).WithName("company.current_spending_limits")).Eval

// Addresses returns the company's shipping and billing locations.
func Addresses(s *storefront.State) []storefront.Address {
	return s.Company.Addresses
}

// AddressByID returns the location with the given ID, or nil.
var AddressByID = register(selectors.NewKeyed(
	func(s *storefront.State, id string) *storefront.Address {
		for i := range s.Company.Addresses {
			if s.Company.Addresses[i].ID == id {
				a := s.Company.Addresses[i]
				return &a
			}
		}
		return nil
	},
).WithName("company.address_by_id")).Eval

// DefaultShippingAddress returns the location flagged as the default
// delivery target, or nil.
var DefaultShippingAddress = register(selectors.Derive1(
	Addresses,
	func(all []storefront.Address) *storefront.Address {
		for i := range all {
			if all[i].DefaultShipping {
				a := all[i]
				return &a
			}
		}
		return nil
	},
).WithName("company.default_shipping_address")).Eval

// DefaultBillingAddress returns the location flagged as the default invoice
// target, or nil.
var DefaultBillingAddress = register(selectors.Derive1(
	Addresses,
	func(all []storefront.Address) *storefront.Address {
		for i := range all {
			if all[i].DefaultBilling {
				a := all[i]
				return &a
			}
		}
		return nil
	},
).WithName("company.default_billing_address")).Eval

// CostCenters returns the company's budget buckets.
func CostCenters(s *storefront.State) []storefront.CostCenter {
	return s.Company.CostCenters
}

// ActiveCostCenters returns the budget buckets open for booking.
var ActiveCostCenters = register(selectors.Derive1(
	CostCenters,
	func(all []storefront.CostCenter) []storefront.CostCenter {
		out := make([]storefront.CostCenter, 0, len(all))
		for _, cc := range all {
			if cc.Active {
				out = append(out, cc)
			}
		}
		return out
	},
).WithName("company.active_cost_centers")).Eval

// OverBudgetCostCenters returns the budget buckets whose spending exceeded
// their budget.
var OverBudgetCostCenters = register(selectors.Derive1(
	CostCenters,
	func(all []storefront.CostCenter) []storefront.CostCenter {
		out := make([]storefront.CostCenter, 0, len(all))
		for _, cc := range all {
			if cc.OverBudget() {
				out = append(out, cc)
			}
		}
		return out
	},
).WithName("company.over_budget_cost_centers")).Eval

// CostCenterByCode returns the budget bucket with the given booking code,
// or nil.
var CostCenterByCode = register(selectors.NewKeyed(
	func(s *storefront.State, code string) *storefront.CostCenter {
		for i := range s.Company.CostCenters {
			if s.Company.CostCenters[i].Code == code {
				cc := s.Company.CostCenters[i]
				return &cc
			}
		}
		return nil
	},
).WithName("company.cost_center_by_code")).Eval

// CostCenterRemainingBudget returns the unspent budget of the bucket with
// the given booking code, zero for unknown codes.
var CostCenterRemainingBudget = register(selectors.NewKeyed(
	func(s *storefront.State, code string) decimal.Decimal {
		for i := range s.Company.CostCenters {
			if s.Company.CostCenters[i].Code == code {
				return s.Company.CostCenters[i].Remaining()
			}
		}
		return decimal.Decimal{}
	},
).WithName("company.cost_center_remaining_budget")).Eval

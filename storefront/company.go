package storefront

import (
	"github.com/govalues/decimal"
)

// CompanyState is the account slice: the company the session belongs to,
// the employee driving the session, and the company's shared master data.
type CompanyState struct {
	Company     *Company
	Employee    *Employee
	Employees   []Employee
	Addresses   []Address
	CostCenters []CostCenter
}

// Company is the buying organization of the session.
type Company struct {
	ID           string
	Name         string
	TaxID        string
	Tier         Tier
	PaymentTerms PaymentTerms
	Currency     string
	TaxRate      decimal.Decimal
	CreditLimit  decimal.Decimal
	CreditUsed   decimal.Decimal
}

// Tier is the negotiated account level of a company.
type Tier string

const (
	TierStandard Tier = "standard"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
)

// PaymentTerms is the invoicing agreement of a company.
type PaymentTerms string

const (
	PayOnAccount PaymentTerms = "on_account"
	PayNet30     PaymentTerms = "net_30"
	PayNet60     PaymentTerms = "net_60"
)

// CreditRemaining is the unconsumed part of the credit line. It goes
// negative when the line is overdrawn.
func (c Company) CreditRemaining() decimal.Decimal {
	return mustSub(c.CreditLimit, c.CreditUsed)
}

// Employee is a member of the buying organization.
type Employee struct {
	ID     string
	Name   string
	Email  string
	Role   Role
	Active bool
	Limits SpendingLimits
}

// SpendingLimits is the flat per-employee purchasing envelope. A zero field
// means no limit of that kind.
type SpendingLimits struct {
	PerOrder decimal.Decimal
	Daily    decimal.Decimal
	Weekly   decimal.Decimal
	Monthly  decimal.Decimal
}

// Role is an employee's permission level within the storefront.
type Role string

const (
	RoleViewer    Role = "viewer"
	RolePurchaser Role = "purchaser"
	RoleApprover  Role = "approver"
	RoleAdmin     Role = "admin"
)

func (r Role) rank() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleApprover:
		return 2
	case RolePurchaser:
		return 1
	case RoleViewer:
		return 0
	default:
		return -1
	}
}

// AtLeast reports whether r grants every permission of min.
// Unknown roles grant nothing.
func (r Role) AtLeast(min Role) bool {
	return r.rank() >= 0 && r.rank() >= min.rank()
}

// Address is a company shipping or billing location.
type Address struct {
	ID              string
	Label           string
	Line1           string
	Line2           string
	City            string
	Region          string
	PostalCode      string
	Country         string
	DefaultShipping bool
	DefaultBilling  bool
}

// CostCenter is an internal budget bucket purchases are booked against.
type CostCenter struct {
	ID     string
	Code   string
	Name   string
	Budget decimal.Decimal
	Spent  decimal.Decimal
	Active bool
}

// Remaining is the unspent part of the budget.
func (cc CostCenter) Remaining() decimal.Decimal {
	return mustSub(cc.Budget, cc.Spent)
}

// OverBudget reports whether spending exceeded the budget.
func (cc CostCenter) OverBudget() bool {
	return cc.Spent.Cmp(cc.Budget) > 0
}

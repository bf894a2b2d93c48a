// Package fixtures ships the deterministic demo session the original
// storefront seeds its screens with. The seed document is embedded YAML
// with string-encoded money and ISO dates; loading converts it explicitly
// into domain values and replays it through the reducers, so a loaded
// state is indistinguishable from one a live session produced.
package fixtures

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/govalues/decimal"
	"github.com/rickb777/date/v2"
	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/select_ive_go/storefront"
)

//go:embed seed.yaml
var seedYAML []byte

// Seed is the loaded demo session: the state tree plus the day the seed's
// time-window data was authored against. Ask the expiry and overdue views
// about AsOf, not about the wall clock, to get the authored answers.
type Seed struct {
	State *storefront.State
	AsOf  date.Date
}

// Load parses the embedded seed document into a ready session.
func Load() (Seed, error) {
	return parse(seedYAML)
}

// MustLoad is Load for tests and demos; it panics on a malformed seed.
func MustLoad() Seed {
	seed, err := Load()
	if err != nil {
		panic(err)
	}
	return seed
}

// Wire shapes mirror the YAML document. Money and calendar values stay
// strings here; conversion is explicit and fails loudly.

type document struct {
	AsOf            string          `yaml:"as_of"`
	Company         companyDoc      `yaml:"company"`
	CurrentEmployee string          `yaml:"current_employee"`
	Employees       []employeeDoc   `yaml:"employees"`
	Addresses       []addressDoc    `yaml:"addresses"`
	CostCenters     []costCenterDoc `yaml:"cost_centers"`
	Quotes          []quoteDoc      `yaml:"quotes"`
	Approvals       []approvalDoc   `yaml:"approvals"`
	Cart            cartDoc         `yaml:"cart"`
}

type companyDoc struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	TaxID        string `yaml:"tax_id"`
	Tier         string `yaml:"tier"`
	PaymentTerms string `yaml:"payment_terms"`
	Currency     string `yaml:"currency"`
	TaxRate      string `yaml:"tax_rate"`
	CreditLimit  string `yaml:"credit_limit"`
	CreditUsed   string `yaml:"credit_used"`
}

type employeeDoc struct {
	ID     string    `yaml:"id"`
	Name   string    `yaml:"name"`
	Email  string    `yaml:"email"`
	Role   string    `yaml:"role"`
	Active bool      `yaml:"active"`
	Limits limitsDoc `yaml:"limits"`
}

type limitsDoc struct {
	PerOrder string `yaml:"per_order"`
	Daily    string `yaml:"daily"`
	Weekly   string `yaml:"weekly"`
	Monthly  string `yaml:"monthly"`
}

type addressDoc struct {
	ID              string `yaml:"id"`
	Label           string `yaml:"label"`
	Line1           string `yaml:"line1"`
	Line2           string `yaml:"line2"`
	City            string `yaml:"city"`
	Region          string `yaml:"region"`
	PostalCode      string `yaml:"postal_code"`
	Country         string `yaml:"country"`
	DefaultShipping bool   `yaml:"default_shipping"`
	DefaultBilling  bool   `yaml:"default_billing"`
}

type costCenterDoc struct {
	ID     string `yaml:"id"`
	Code   string `yaml:"code"`
	Name   string `yaml:"name"`
	Budget string `yaml:"budget"`
	Spent  string `yaml:"spent"`
	Active bool   `yaml:"active"`
}

type quoteDoc struct {
	ID              string         `yaml:"id"`
	Number          string         `yaml:"number"`
	Title           string         `yaml:"title"`
	Status          string         `yaml:"status"`
	RequestedBy     string         `yaml:"requested_by"`
	DiscountPercent int            `yaml:"discount_percent"`
	CreatedAt       time.Time      `yaml:"created_at"`
	ValidUntil      string         `yaml:"valid_until"`
	Note            string         `yaml:"note"`
	Lines           []quoteLineDoc `yaml:"lines"`
}

type quoteLineDoc struct {
	SKU       string `yaml:"sku"`
	Name      string `yaml:"name"`
	Quantity  int    `yaml:"quantity"`
	UnitPrice string `yaml:"unit_price"`
}

type approvalDoc struct {
	ID          string    `yaml:"id"`
	Kind        string    `yaml:"kind"`
	Subject     string    `yaml:"subject"`
	RequestedBy string    `yaml:"requested_by"`
	AssignedTo  string    `yaml:"assigned_to"`
	Status      string    `yaml:"status"`
	Priority    string    `yaml:"priority"`
	Amount      string    `yaml:"amount"`
	CreatedAt   time.Time `yaml:"created_at"`
	DueBy       string    `yaml:"due_by"`
	Note        string    `yaml:"note"`
}

type cartDoc struct {
	PONumber          string        `yaml:"po_number"`
	CostCenterID      string        `yaml:"cost_center_id"`
	ShippingAddressID string        `yaml:"shipping_address_id"`
	Notes             string        `yaml:"notes"`
	Items             []cartItemDoc `yaml:"items"`
}

type cartItemDoc struct {
	SKU          string `yaml:"sku"`
	Name         string `yaml:"name"`
	UnitPrice    string `yaml:"unit_price"`
	Quantity     int    `yaml:"quantity"`
	MinQuantity  int    `yaml:"min_quantity"`
	MaxQuantity  int    `yaml:"max_quantity"`
	LeadTimeDays int    `yaml:"lead_time_days"`
}

func parse(raw []byte) (Seed, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Seed{}, fmt.Errorf("fixtures: failed to decode seed document: %w", err)
	}

	asOf, err := parseDay("as_of", doc.AsOf)
	if err != nil {
		return Seed{}, err
	}

	session, err := sessionAction(doc)
	if err != nil {
		return Seed{}, err
	}
	quotes, err := quoteValues(doc.Quotes)
	if err != nil {
		return Seed{}, err
	}
	approvals, err := approvalValues(doc.Approvals)
	if err != nil {
		return Seed{}, err
	}
	items, err := cartItemValues(doc.Cart.Items)
	if err != nil {
		return Seed{}, err
	}

	s := storefront.NewState()
	s = storefront.Reduce(s, session)
	s = storefront.Reduce(s, storefront.QuotesLoaded{Quotes: quotes})
	s = storefront.Reduce(s, storefront.ApprovalsLoaded{Requests: approvals})
	s = storefront.Reduce(s, storefront.CartImported{Items: items})
	s = storefront.Reduce(s, storefront.PONumberSet{Value: doc.Cart.PONumber})
	s = storefront.Reduce(s, storefront.CostCenterSelected{ID: doc.Cart.CostCenterID})
	s = storefront.Reduce(s, storefront.ShippingAddressSelected{ID: doc.Cart.ShippingAddressID})
	s = storefront.Reduce(s, storefront.CartNotesSet{Value: doc.Cart.Notes})

	return Seed{State: s, AsOf: asOf}, nil
}

func sessionAction(doc document) (storefront.SessionStarted, error) {
	taxRate, err := parseMoney("company.tax_rate", doc.Company.TaxRate)
	if err != nil {
		return storefront.SessionStarted{}, err
	}
	creditLimit, err := parseMoney("company.credit_limit", doc.Company.CreditLimit)
	if err != nil {
		return storefront.SessionStarted{}, err
	}
	creditUsed, err := parseMoney("company.credit_used", doc.Company.CreditUsed)
	if err != nil {
		return storefront.SessionStarted{}, err
	}

	employees := make([]storefront.Employee, 0, len(doc.Employees))
	var current *storefront.Employee
	for _, e := range doc.Employees {
		limits, err := limitsValue(e.ID, e.Limits)
		if err != nil {
			return storefront.SessionStarted{}, err
		}
		emp := storefront.Employee{
			ID:     e.ID,
			Name:   e.Name,
			Email:  e.Email,
			Role:   storefront.Role(e.Role),
			Active: e.Active,
			Limits: limits,
		}
		employees = append(employees, emp)
		if e.ID == doc.CurrentEmployee {
			picked := emp
			current = &picked
		}
	}
	if doc.CurrentEmployee != "" && current == nil {
		return storefront.SessionStarted{}, fmt.Errorf("fixtures: current_employee %q is not in the employee list", doc.CurrentEmployee)
	}

	addresses := make([]storefront.Address, 0, len(doc.Addresses))
	for _, a := range doc.Addresses {
		addresses = append(addresses, storefront.Address{
			ID:              a.ID,
			Label:           a.Label,
			Line1:           a.Line1,
			Line2:           a.Line2,
			City:            a.City,
			Region:          a.Region,
			PostalCode:      a.PostalCode,
			Country:         a.Country,
			DefaultShipping: a.DefaultShipping,
			DefaultBilling:  a.DefaultBilling,
		})
	}

	centers := make([]storefront.CostCenter, 0, len(doc.CostCenters))
	for _, cc := range doc.CostCenters {
		budget, err := parseMoney("cost_center "+cc.Code+" budget", cc.Budget)
		if err != nil {
			return storefront.SessionStarted{}, err
		}
		spent, err := parseMoney("cost_center "+cc.Code+" spent", cc.Spent)
		if err != nil {
			return storefront.SessionStarted{}, err
		}
		centers = append(centers, storefront.CostCenter{
			ID:     cc.ID,
			Code:   cc.Code,
			Name:   cc.Name,
			Budget: budget,
			Spent:  spent,
			Active: cc.Active,
		})
	}

	return storefront.SessionStarted{
		Company: &storefront.Company{
			ID:           doc.Company.ID,
			Name:         doc.Company.Name,
			TaxID:        doc.Company.TaxID,
			Tier:         storefront.Tier(doc.Company.Tier),
			PaymentTerms: storefront.PaymentTerms(doc.Company.PaymentTerms),
			Currency:     doc.Company.Currency,
			TaxRate:      taxRate,
			CreditLimit:  creditLimit,
			CreditUsed:   creditUsed,
		},
		Employee:    current,
		Employees:   employees,
		Addresses:   addresses,
		CostCenters: centers,
	}, nil
}

func limitsValue(employeeID string, doc limitsDoc) (storefront.SpendingLimits, error) {
	var out storefront.SpendingLimits
	var err error
	if out.PerOrder, err = parseOptionalMoney("employee "+employeeID+" per_order", doc.PerOrder); err != nil {
		return out, err
	}
	if out.Daily, err = parseOptionalMoney("employee "+employeeID+" daily", doc.Daily); err != nil {
		return out, err
	}
	if out.Weekly, err = parseOptionalMoney("employee "+employeeID+" weekly", doc.Weekly); err != nil {
		return out, err
	}
	if out.Monthly, err = parseOptionalMoney("employee "+employeeID+" monthly", doc.Monthly); err != nil {
		return out, err
	}
	return out, nil
}

func quoteValues(docs []quoteDoc) ([]storefront.Quote, error) {
	out := make([]storefront.Quote, 0, len(docs))
	for _, q := range docs {
		validUntil, err := parseDay("quote "+q.ID+" valid_until", q.ValidUntil)
		if err != nil {
			return nil, err
		}
		lines := make([]storefront.QuoteLine, 0, len(q.Lines))
		for _, l := range q.Lines {
			price, err := parseMoney("quote "+q.ID+" line "+l.SKU, l.UnitPrice)
			if err != nil {
				return nil, err
			}
			lines = append(lines, storefront.QuoteLine{
				SKU:       l.SKU,
				Name:      l.Name,
				Quantity:  l.Quantity,
				UnitPrice: price,
			})
		}
		out = append(out, storefront.Quote{
			ID:              q.ID,
			Number:          q.Number,
			Title:           q.Title,
			Status:          storefront.QuoteStatus(q.Status),
			RequestedBy:     q.RequestedBy,
			Lines:           lines,
			DiscountPercent: q.DiscountPercent,
			CreatedAt:       q.CreatedAt,
			ValidUntil:      validUntil,
			Note:            q.Note,
		})
	}
	return out, nil
}

func approvalValues(docs []approvalDoc) ([]storefront.ApprovalRequest, error) {
	out := make([]storefront.ApprovalRequest, 0, len(docs))
	for _, a := range docs {
		amount, err := parseMoney("approval "+a.ID+" amount", a.Amount)
		if err != nil {
			return nil, err
		}
		dueBy, err := parseDay("approval "+a.ID+" due_by", a.DueBy)
		if err != nil {
			return nil, err
		}
		out = append(out, storefront.ApprovalRequest{
			ID:          a.ID,
			Kind:        storefront.ApprovalKind(a.Kind),
			Subject:     a.Subject,
			RequestedBy: a.RequestedBy,
			AssignedTo:  a.AssignedTo,
			Status:      storefront.ApprovalStatus(a.Status),
			Priority:    storefront.Priority(a.Priority),
			Amount:      amount,
			CreatedAt:   a.CreatedAt,
			DueBy:       dueBy,
			Note:        a.Note,
		})
	}
	return out, nil
}

func cartItemValues(docs []cartItemDoc) ([]storefront.CartItem, error) {
	out := make([]storefront.CartItem, 0, len(docs))
	for _, ci := range docs {
		price, err := parseMoney("cart item "+ci.SKU, ci.UnitPrice)
		if err != nil {
			return nil, err
		}
		out = append(out, storefront.CartItem{
			SKU:          ci.SKU,
			Name:         ci.Name,
			UnitPrice:    price,
			Quantity:     ci.Quantity,
			MinQuantity:  ci.MinQuantity,
			MaxQuantity:  ci.MaxQuantity,
			LeadTimeDays: ci.LeadTimeDays,
		})
	}
	return out, nil
}

func parseMoney(field, value string) (decimal.Decimal, error) {
	d, err := decimal.Parse(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("fixtures: bad decimal in %s: %w", field, err)
	}
	return d, nil
}

func parseOptionalMoney(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Decimal{}, nil
	}
	return parseMoney(field, value)
}

func parseDay(field, value string) (date.Date, error) {
	d, err := date.ParseISO(value)
	if err != nil {
		return 0, fmt.Errorf("fixtures: bad date in %s: %w", field, err)
	}
	return d, nil
}

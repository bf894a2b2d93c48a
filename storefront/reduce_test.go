package storefront_test

import (
	"testing"

	"github.com/govalues/decimal"

	"github.com/on-the-ground/select_ive_go/storefront"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionState() *storefront.State {
	s := storefront.NewState()
	return storefront.Reduce(s, storefront.SessionStarted{
		Company: &storefront.Company{
			ID:          "co-1",
			Name:        "Vanta Industrial",
			Tier:        storefront.TierGold,
			TaxRate:     decimal.MustParse("0.19"),
			CreditLimit: decimal.MustParse("200.00"),
			CreditUsed:  decimal.MustParse("40.00"),
		},
		Employee: &storefront.Employee{ID: "emp-1", Name: "Ona", Role: storefront.RolePurchaser, Active: true},
		Employees: []storefront.Employee{
			{ID: "emp-1", Name: "Ona", Role: storefront.RolePurchaser, Active: true},
			{ID: "emp-2", Name: "Brook", Role: storefront.RoleApprover, Active: true},
		},
		Addresses: []storefront.Address{
			{ID: "addr-1", Label: "HQ", DefaultShipping: true, DefaultBilling: true},
		},
		CostCenters: []storefront.CostCenter{
			{ID: "cc-1", Code: "OPS", Budget: decimal.MustParse("1000.00"), Active: true},
		},
	})
}

func TestReduce_UnknownActionReturnsIdenticalRoot(t *testing.T) {
	s := sessionState()
	next := storefront.Reduce(s, storefront.QuotePageChanged{Page: 1}) // already on page 1
	assert.Same(t, s, next)
}

func TestReduce_UntouchedSlicesKeepTheirReferences(t *testing.T) {
	s := sessionState()
	next := storefront.Reduce(s, storefront.PONumberSet{Value: "PO-7788"})

	require.NotSame(t, s, next)
	assert.NotSame(t, s.Cart, next.Cart)
	assert.Same(t, s.Company, next.Company)
	assert.Same(t, s.Quotes, next.Quotes)
	assert.Same(t, s.Approvals, next.Approvals)
	assert.Equal(t, "PO-7788", next.Cart.PONumber)
	assert.Equal(t, "", s.Cart.PONumber) // prior state untouched
}

func TestReduce_EmployeeSwitched(t *testing.T) {
	s := sessionState()

	next := storefront.Reduce(s, storefront.EmployeeSwitched{EmployeeID: "emp-2"})
	require.NotSame(t, s, next)
	assert.Equal(t, "Brook", next.Company.Employee.Name)
	assert.Equal(t, "Ona", s.Company.Employee.Name)

	unknown := storefront.Reduce(next, storefront.EmployeeSwitched{EmployeeID: "emp-404"})
	assert.Same(t, next, unknown)
}

func TestReduce_CreditRoundTrip(t *testing.T) {
	s := sessionState()

	consumed := storefront.Reduce(s, storefront.CreditConsumed{Amount: decimal.MustParse("10.00")})
	assert.Equal(t, "50.00", consumed.Company.Company.CreditUsed.String())

	released := storefront.Reduce(consumed, storefront.CreditReleased{Amount: decimal.MustParse("10.00")})
	assert.Equal(t, "40.00", released.Company.Company.CreditUsed.String())

	noop := storefront.Reduce(released, storefront.CreditConsumed{Amount: decimal.MustParse("0")})
	assert.Same(t, released, noop)
}

func TestReduce_CostCenterSpendRecorded(t *testing.T) {
	s := sessionState()

	next := storefront.Reduce(s, storefront.CostCenterSpendRecorded{Code: "OPS", Amount: decimal.MustParse("25.50")})
	assert.Equal(t, "25.50", next.Company.CostCenters[0].Spent.String())
	assert.True(t, s.Company.CostCenters[0].Spent.IsZero())

	unknown := storefront.Reduce(next, storefront.CostCenterSpendRecorded{Code: "R&D", Amount: decimal.MustParse("1.00")})
	assert.Same(t, next, unknown)
}

func TestReduce_QuoteStatusChanged(t *testing.T) {
	s := sessionState()
	s = storefront.Reduce(s, storefront.QuotesLoaded{Quotes: []storefront.Quote{
		{ID: "q-1", Number: "Q-1001", Status: storefront.QuoteDraft},
		{ID: "q-2", Number: "Q-1002", Status: storefront.QuoteSent},
	}})

	next := storefront.Reduce(s, storefront.QuoteStatusChanged{ID: "q-1", Status: storefront.QuoteSent})
	require.NotSame(t, s, next)
	assert.Equal(t, storefront.QuoteSent, next.Quotes.Quotes[0].Status)
	assert.Equal(t, storefront.QuoteDraft, s.Quotes.Quotes[0].Status)

	same := storefront.Reduce(next, storefront.QuoteStatusChanged{ID: "q-1", Status: storefront.QuoteSent})
	assert.Same(t, next, same)

	missing := storefront.Reduce(next, storefront.QuoteStatusChanged{ID: "q-404", Status: storefront.QuoteAccepted})
	assert.Same(t, next, missing)
}

func TestReduce_QuoteSearchRewindsPage(t *testing.T) {
	s := sessionState()
	s = storefront.Reduce(s, storefront.QuotePageChanged{Page: 3})
	assert.Equal(t, 3, s.Quotes.Filter.Page)

	s = storefront.Reduce(s, storefront.QuoteSearchChanged{Query: "pump"})
	assert.Equal(t, "pump", s.Quotes.Filter.Query)
	assert.Equal(t, 1, s.Quotes.Filter.Page)
}

func TestReduce_QuoteUpserted(t *testing.T) {
	s := sessionState()
	s = storefront.Reduce(s, storefront.QuoteUpserted{Quote: storefront.Quote{ID: "q-1", Number: "Q-1001"}})
	assert.Len(t, s.Quotes.Quotes, 1)

	s = storefront.Reduce(s, storefront.QuoteUpserted{Quote: storefront.Quote{ID: "q-1", Number: "Q-1001-R2"}})
	assert.Len(t, s.Quotes.Quotes, 1)
	assert.Equal(t, "Q-1001-R2", s.Quotes.Quotes[0].Number)
}

func TestReduce_ApprovalDecided(t *testing.T) {
	s := sessionState()
	s = storefront.Reduce(s, storefront.ApprovalsLoaded{Requests: []storefront.ApprovalRequest{
		{ID: "ap-1", Status: storefront.ApprovalPending, AssignedTo: "emp-2"},
	}})

	approved := storefront.Reduce(s, storefront.ApprovalDecided{ID: "ap-1", Approved: true, Note: "within budget"})
	assert.Equal(t, storefront.ApprovalApproved, approved.Approvals.Requests[0].Status)
	assert.Equal(t, "within budget", approved.Approvals.Requests[0].Note)
	assert.Equal(t, storefront.ApprovalPending, s.Approvals.Requests[0].Status)

	// already decided, nothing to do
	again := storefront.Reduce(approved, storefront.ApprovalDecided{ID: "ap-1", Approved: false})
	assert.Same(t, approved, again)
}

func TestReduce_CartItemAddedMergesSameSKU(t *testing.T) {
	s := sessionState()
	line := storefront.CartItem{SKU: "SKU-1", Name: "Valve", UnitPrice: decimal.MustParse("9.90"), Quantity: 2, MinQuantity: 1}

	s = storefront.Reduce(s, storefront.CartItemAdded{Item: line})
	s = storefront.Reduce(s, storefront.CartItemAdded{Item: line})
	require.Len(t, s.Cart.Items, 1)
	assert.Equal(t, 4, s.Cart.Items[0].Quantity)

	s = storefront.Reduce(s, storefront.CartItemAdded{Item: storefront.CartItem{SKU: "SKU-2", Quantity: 1}})
	assert.Len(t, s.Cart.Items, 2)
}

func TestReduce_CartQuantitySet(t *testing.T) {
	s := sessionState()
	s = storefront.Reduce(s, storefront.CartItemAdded{Item: storefront.CartItem{SKU: "SKU-1", Quantity: 2}})

	bumped := storefront.Reduce(s, storefront.CartQuantitySet{SKU: "SKU-1", Quantity: 6})
	assert.Equal(t, 6, bumped.Cart.Items[0].Quantity)

	same := storefront.Reduce(bumped, storefront.CartQuantitySet{SKU: "SKU-1", Quantity: 6})
	assert.Same(t, bumped, same)

	removed := storefront.Reduce(bumped, storefront.CartQuantitySet{SKU: "SKU-1", Quantity: 0})
	assert.Empty(t, removed.Cart.Items)

	missing := storefront.Reduce(bumped, storefront.CartQuantitySet{SKU: "SKU-404", Quantity: 1})
	assert.Same(t, bumped, missing)
}

func TestReduce_CartImportedReplacesContent(t *testing.T) {
	s := sessionState()
	s = storefront.Reduce(s, storefront.CartItemAdded{Item: storefront.CartItem{SKU: "SKU-1", Quantity: 1}})
	s = storefront.Reduce(s, storefront.PONumberSet{Value: "PO-1"})

	imported := storefront.Reduce(s, storefront.CartImported{Items: []storefront.CartItem{
		{SKU: "BULK-1", Quantity: 100},
		{SKU: "BULK-2", Quantity: 40},
	}})
	assert.Len(t, imported.Cart.Items, 2)
	assert.Equal(t, "PO-1", imported.Cart.PONumber) // header fields survive an import

	cleared := storefront.Reduce(imported, storefront.CartCleared{})
	assert.Empty(t, cleared.Cart.Items)
	assert.Equal(t, "", cleared.Cart.PONumber)
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, storefront.RoleAdmin.AtLeast(storefront.RoleApprover))
	assert.True(t, storefront.RoleApprover.AtLeast(storefront.RoleApprover))
	assert.False(t, storefront.RolePurchaser.AtLeast(storefront.RoleApprover))
	assert.False(t, storefront.Role("intern").AtLeast(storefront.RoleViewer))
}

func TestCartItem_QuantityValid(t *testing.T) {
	assert.True(t, storefront.CartItem{Quantity: 5, MinQuantity: 5, MaxQuantity: 10}.QuantityValid())
	assert.False(t, storefront.CartItem{Quantity: 4, MinQuantity: 5}.QuantityValid())
	assert.False(t, storefront.CartItem{Quantity: 11, MinQuantity: 1, MaxQuantity: 10}.QuantityValid())
	assert.True(t, storefront.CartItem{Quantity: 500, MinQuantity: 1}.QuantityValid()) // no upper bound
	assert.False(t, storefront.CartItem{Quantity: 0}.QuantityValid())
}

func TestStatusFilter_Matches(t *testing.T) {
	assert.True(t, storefront.StatusFilterAll.Matches(storefront.QuoteDraft))
	assert.True(t, storefront.StatusFilter("").Matches(storefront.QuoteExpired))
	assert.True(t, storefront.FilterByStatus(storefront.QuoteSent).Matches(storefront.QuoteSent))
	assert.False(t, storefront.FilterByStatus(storefront.QuoteSent).Matches(storefront.QuoteDraft))
}

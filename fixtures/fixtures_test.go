package fixtures_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/on-the-ground/select_ive_go/fixtures"
	"github.com/on-the-ground/select_ive_go/storefront"
	"github.com/on-the-ground/select_ive_go/storefront/views"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	seed, err := fixtures.Load()
	require.NoError(t, err)
	require.NotNil(t, seed.State)

	s := seed.State
	assert.Equal(t, "Vanta Industrial Supply", s.Company.Company.Name)
	assert.Equal(t, "emp-ona", s.Company.Employee.ID)
	assert.Len(t, s.Company.Employees, 3)
	assert.Len(t, s.Company.Addresses, 2)
	assert.Len(t, s.Company.CostCenters, 2)
	assert.Len(t, s.Quotes.Quotes, 5)
	assert.Len(t, s.Approvals.Requests, 4)
	assert.Len(t, s.Cart.Items, 2)
	assert.Equal(t, "PO-88412", s.Cart.PONumber)
	assert.Equal(t, "2026-03-02", seed.AsOf.String())
}

func TestLoad_CoversEveryCatalogCorner(t *testing.T) {
	views.ResetCaches()
	seed := fixtures.MustLoad()
	s := seed.State

	// one quote per workflow status, so every status view has data
	for _, st := range storefront.QuoteStatuses() {
		assert.Len(t, views.QuotesByStatus(s, st), 1, "status %s", st)
	}

	assert.Equal(t, float64(20), views.CreditUsagePercent(s))
	assert.Len(t, views.QuotesExpiringSoon(s, seed.AsOf), 1)
	assert.Len(t, views.OverdueApprovals(s, seed.AsOf), 1)
	assert.Len(t, views.InvalidQuantityItems(s), 1)
	assert.False(t, views.CheckoutReady(s))
}

func TestLoad_IsDeterministic(t *testing.T) {
	a := fixtures.MustLoad()
	b := fixtures.MustLoad()
	assert.Equal(t, a.State, b.State)
	assert.Equal(t, a.AsOf, b.AsOf)
}

// renderDashboard projects the seed into the text the storefront dashboard
// shows, the golden surface of the fixture.
func renderDashboard(seed fixtures.Seed) []byte {
	s := seed.State
	var b strings.Builder

	fmt.Fprintf(&b, "storefront dashboard (as of %s)\n", seed.AsOf)
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "company: %s (%s, %s)\n", views.CompanyName(s), views.CompanyTier(s), views.CompanyCurrency(s))
	fmt.Fprintf(&b, "credit: %s used of %s (%.0f%%), %s remaining\n",
		views.CreditUsed(s), views.CreditLimit(s), views.CreditUsagePercent(s), views.CreditRemaining(s))
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "quotes: %d total, %d open, %d expiring soon\n",
		views.QuoteCount(s), len(views.OpenQuotes(s)), len(views.QuotesExpiringSoon(s, seed.AsOf)))
	counts := views.QuoteCountsByStatus(s)
	parts := make([]string, 0, len(counts))
	for _, st := range storefront.QuoteStatuses() {
		parts = append(parts, fmt.Sprintf("%s=%d", st, counts[st]))
	}
	fmt.Fprintf(&b, "quotes by status: %s\n", strings.Join(parts, " "))
	fmt.Fprintf(&b, "filtered: %d on %d page(s)\n", views.FilteredQuoteCount(s), views.TotalQuotePages(s))
	fmt.Fprintf(&b, "open value: %s\n", views.OpenQuoteValue(s))
	fmt.Fprintf(&b, "\n")
	tally := views.ApprovalSummary(s)
	fmt.Fprintf(&b, "approvals: pending=%d approved=%d rejected=%d high=%d\n",
		tally.Pending, tally.Approved, tally.Rejected, tally.HighPriority)
	fmt.Fprintf(&b, "pending amount: %s, overdue: %d\n",
		views.PendingApprovalAmount(s), len(views.OverdueApprovals(s, seed.AsOf)))
	fmt.Fprintf(&b, "\n")
	summary := views.CartCheckoutSummary(s)
	fmt.Fprintf(&b, "cart: %d lines, %d units, lead time %d days\n",
		summary.Lines, summary.Units, views.CartLeadTimeDays(s))
	fmt.Fprintf(&b, "pricing: subtotal=%s discount=%s tax=%s shipping=%s total=%s\n",
		summary.Subtotal, summary.Discount, summary.Tax, summary.Shipping, summary.GrandTotal)
	fmt.Fprintf(&b, "checkout ready: %t\n", views.CheckoutReady(s))
	fmt.Fprintf(&b, "blockers:\n")
	for _, blocker := range views.CheckoutBlockers(s) {
		fmt.Fprintf(&b, "  - %s\n", blocker)
	}

	return []byte(b.String())
}

func TestDashboardGolden(t *testing.T) {
	views.ResetCaches()
	seed := fixtures.MustLoad()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "dashboard", renderDashboard(seed))
}

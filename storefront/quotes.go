package storefront

import (
	"fmt"
	"time"

	"github.com/govalues/decimal"
	"github.com/rickb777/date/v2"
)

// QuotesState is the quote-workflow slice: every quote visible to the
// session, the quote opened in detail view, and the list filter.
type QuotesState struct {
	Quotes   []Quote
	ActiveID string
	Filter   QuoteFilter
}

// Quote is a priced offer negotiated between the company and the seller.
type Quote struct {
	ID              string
	Number          string
	Title           string
	Status          QuoteStatus
	RequestedBy     string
	Lines           []QuoteLine
	DiscountPercent int
	CreatedAt       time.Time
	ValidUntil      date.Date
	Note            string
}

// Subtotal sums the line totals of the quote.
func (q Quote) Subtotal() decimal.Decimal {
	total := decimal.Decimal{}
	for _, line := range q.Lines {
		total = mustAdd(total, line.LineTotal())
	}
	return total
}

// Total applies the negotiated discount to the subtotal.
func (q Quote) Total() decimal.Decimal {
	if q.DiscountPercent <= 0 {
		return q.Subtotal()
	}
	factor, err := decimal.New(int64(100-q.DiscountPercent), 2)
	if err != nil {
		panic(fmt.Errorf("storefront: bad discount percent %d: %w", q.DiscountPercent, err))
	}
	return mustMul(q.Subtotal(), factor).Round(2)
}

// QuoteLine is one priced position of a quote.
type QuoteLine struct {
	SKU       string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// LineTotal is quantity times unit price.
func (l QuoteLine) LineTotal() decimal.Decimal {
	return mustMulInt(l.UnitPrice, l.Quantity)
}

// QuoteStatus is a quote's position in the negotiation workflow.
type QuoteStatus string

const (
	QuoteDraft    QuoteStatus = "draft"
	QuoteSent     QuoteStatus = "sent"
	QuoteAccepted QuoteStatus = "accepted"
	QuoteRejected QuoteStatus = "rejected"
	QuoteExpired  QuoteStatus = "expired"
)

// QuoteStatuses lists every status in workflow order.
func QuoteStatuses() []QuoteStatus {
	return []QuoteStatus{QuoteDraft, QuoteSent, QuoteAccepted, QuoteRejected, QuoteExpired}
}

// StatusFilter narrows the quote list to one status, or passes all of them.
type StatusFilter string

// StatusFilterAll passes quotes of every status.
const StatusFilterAll StatusFilter = "all"

// FilterByStatus returns the filter passing exactly st.
func FilterByStatus(st QuoteStatus) StatusFilter { return StatusFilter(st) }

// Matches reports whether a quote of status st passes the filter.
// The zero filter behaves like StatusFilterAll.
func (f StatusFilter) Matches(st QuoteStatus) bool {
	return f == StatusFilterAll || f == "" || StatusFilter(st) == f
}

// QuoteFilter is the quote list view setting: status narrowing, free-text
// search, and pagination. The zero Page/PageSize fall back to the defaults
// when paging is applied.
type QuoteFilter struct {
	Status   StatusFilter
	Query    string
	Page     int
	PageSize int
}

// DefaultQuotePageSize is the page length used when the filter leaves
// PageSize unset.
const DefaultQuotePageSize = 10

// DefaultQuoteFilter returns the filter a fresh session starts with.
func DefaultQuoteFilter() QuoteFilter {
	return QuoteFilter{Status: StatusFilterAll, Page: 1, PageSize: DefaultQuotePageSize}
}

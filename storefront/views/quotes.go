package views

import (
	"strings"

	"github.com/govalues/decimal"
	"github.com/rickb777/date/v2"

	"github.com/on-the-ground/select_ive_go/selectors"
	"github.com/on-the-ground/select_ive_go/storefront"
)

// Quotes returns every quote visible to the session.
func Quotes(s *storefront.State) []storefront.Quote {
	return s.Quotes.Quotes
}

// QuoteCount returns how many quotes the session sees, unfiltered.
func QuoteCount(s *storefront.State) int {
	return len(s.Quotes.Quotes)
}

// ActiveQuoteID returns the ID of the quote open in detail view, or "".
func ActiveQuoteID(s *storefront.State) string {
	return s.Quotes.ActiveID
}

// CurrentQuoteFilter returns the quote list filter as set.
func CurrentQuoteFilter(s *storefront.State) storefront.QuoteFilter {
	return s.Quotes.Filter
}

// QuotesByStatus returns the quotes sitting in the given workflow status.
var QuotesByStatus = register(selectors.NewKeyed(
	func(s *storefront.State, st storefront.QuoteStatus) []storefront.Quote {
		out := make([]storefront.Quote, 0, len(s.Quotes.Quotes))
		for _, q := range s.Quotes.Quotes {
			if q.Status == st {
				out = append(out, q)
			}
		}
		return out
	},
	selectors.WithMaxEntries(5),
).WithName("quotes.by_status")).Eval

// QuoteByID returns the quote with the given ID, or nil.
var QuoteByID = register(selectors.NewKeyed(
	func(s *storefront.State, id string) *storefront.Quote {
		for i := range s.Quotes.Quotes {
			if s.Quotes.Quotes[i].ID == id {
				q := s.Quotes.Quotes[i]
				return &q
			}
		}
		return nil
	},
).WithName("quotes.by_id")).Eval

// QuoteByNumber returns the quote carrying the given document number, or nil.
var QuoteByNumber = register(selectors.NewKeyed(
	func(s *storefront.State, number string) *storefront.Quote {
		for i := range s.Quotes.Quotes {
			if s.Quotes.Quotes[i].Number == number {
				q := s.Quotes.Quotes[i]
				return &q
			}
		}
		return nil
	},
).WithName("quotes.by_number")).Eval

// QuoteCountsByStatus returns how many quotes sit in each workflow status.
// Statuses with no quotes are absent from the map.
var QuoteCountsByStatus = register(selectors.Derive1(
	Quotes,
	func(all []storefront.Quote) map[storefront.QuoteStatus]int {
		out := make(map[storefront.QuoteStatus]int, len(storefront.QuoteStatuses()))
		for _, q := range all {
			out[q.Status]++
		}
		return out
	},
).WithName("quotes.counts_by_status")).Eval

func matchesQuery(q storefront.Quote, query string) bool {
	if query == "" {
		return true
	}
	needle := strings.ToLower(query)
	return strings.Contains(strings.ToLower(q.Number), needle) ||
		strings.Contains(strings.ToLower(q.Title), needle)
}

var filteredQuotes = register(selectors.Derive2(
	Quotes,
	CurrentQuoteFilter,
	func(all []storefront.Quote, f storefront.QuoteFilter) []storefront.Quote {
		out := make([]storefront.Quote, 0, len(all))
		for _, q := range all {
			if f.Status.Matches(q.Status) && matchesQuery(q, f.Query) {
				out = append(out, q)
			}
		}
		return out
	},
).WithName("quotes.filtered"))

// FilteredQuotes returns the quotes passing the list filter: status
// narrowing plus a case-insensitive substring match of the query against
// the quote number and title.
var FilteredQuotes = filteredQuotes.Eval

// FilteredQuoteCount returns how many quotes pass the list filter.
var FilteredQuoteCount = register(selectors.Derive1(
	filteredQuotes.Eval,
	func(filtered []storefront.Quote) int { return len(filtered) },
).WithName("quotes.filtered_count")).Eval

func pageBounds(total, page, size int) (lo, hi int) {
	if size < 1 {
		size = storefront.DefaultQuotePageSize
	}
	if page < 1 {
		page = 1
	}
	lo = (page - 1) * size
	if lo > total {
		lo = total
	}
	hi = lo + size
	if hi > total {
		hi = total
	}
	return lo, hi
}

// QuotePage returns the slice of the filtered quotes shown on the current
// page. Pages past the end read as empty.
var QuotePage = register(selectors.Derive2(
	filteredQuotes.Eval,
	CurrentQuoteFilter,
	func(filtered []storefront.Quote, f storefront.QuoteFilter) []storefront.Quote {
		lo, hi := pageBounds(len(filtered), f.Page, f.PageSize)
		return filtered[lo:hi]
	},
).WithName("quotes.page")).Eval

// TotalQuotePages returns how many pages the filtered list spans; zero when
// nothing passes the filter.
var TotalQuotePages = register(selectors.Derive2(
	filteredQuotes.Eval,
	CurrentQuoteFilter,
	func(filtered []storefront.Quote, f storefront.QuoteFilter) int {
		size := f.PageSize
		if size < 1 {
			size = storefront.DefaultQuotePageSize
		}
		return (len(filtered) + size - 1) / size
	},
).WithName("quotes.total_pages")).Eval

// HasNextQuotePage reports whether a page follows the current one.
var HasNextQuotePage = register(selectors.Derive2(
	filteredQuotes.Eval,
	CurrentQuoteFilter,
	func(filtered []storefront.Quote, f storefront.QuoteFilter) bool {
		size := f.PageSize
		if size < 1 {
			size = storefront.DefaultQuotePageSize
		}
		page := f.Page
		if page < 1 {
			page = 1
		}
		return page*size < len(filtered)
	},
).WithName("quotes.has_next_page")).Eval

// ActiveQuote returns the quote open in detail view, or nil.
var ActiveQuote = register(selectors.Derive2(
	Quotes,
	ActiveQuoteID,
	func(all []storefront.Quote, id string) *storefront.Quote {
		if id == "" {
			return nil
		}
		for i := range all {
			if all[i].ID == id {
				q := all[i]
				return &q
			}
		}
		return nil
	},
).WithName("quotes.active")).Eval

// QuoteSubtotal returns the undiscounted line total of the quote with the
// given ID, zero for unknown IDs.
var QuoteSubtotal = register(selectors.NewKeyed(
	func(s *storefront.State, id string) decimal.Decimal {
		for i := range s.Quotes.Quotes {
			if s.Quotes.Quotes[i].ID == id {
				return s.Quotes.Quotes[i].Subtotal()
			}
		}
		return decimal.Decimal{}
	},
).WithName("quotes.subtotal")).Eval

// QuoteTotal returns the discounted total of the quote with the given ID,
// zero for unknown IDs.
var QuoteTotal = register(selectors.NewKeyed(
	func(s *storefront.State, id string) decimal.Decimal {
		for i := range s.Quotes.Quotes {
			if s.Quotes.Quotes[i].ID == id {
				return s.Quotes.Quotes[i].Total()
			}
		}
		return decimal.Decimal{}
	},
).WithName("quotes.total")).Eval

// QuoteDiscountAmount returns the money the negotiated discount takes off
// the quote with the given ID, zero for unknown IDs.
var QuoteDiscountAmount = register(selectors.NewKeyed(
	func(s *storefront.State, id string) decimal.Decimal {
		for i := range s.Quotes.Quotes {
			if s.Quotes.Quotes[i].ID == id {
				q := s.Quotes.Quotes[i]
				return subMoney(q.Subtotal(), q.Total())
			}
		}
		return decimal.Decimal{}
	},
).WithName("quotes.discount_amount")).Eval

func quoteOpen(q storefront.Quote) bool {
	return q.Status == storefront.QuoteDraft || q.Status == storefront.QuoteSent
}

// OpenQuotes returns the quotes still negotiable: drafts and sent quotes.
var OpenQuotes = register(selectors.Derive1(
	Quotes,
	func(all []storefront.Quote) []storefront.Quote {
		out := make([]storefront.Quote, 0, len(all))
		for _, q := range all {
			if quoteOpen(q) {
				out = append(out, q)
			}
		}
		return out
	},
).WithName("quotes.open")).Eval

// OpenQuoteValue returns the total money sitting in open quotes.
var OpenQuoteValue = register(selectors.Derive1(
	Quotes,
	func(all []storefront.Quote) decimal.Decimal {
		total := decimal.Decimal{}
		for _, q := range all {
			if quoteOpen(q) {
				total = addMoney(total, q.Total())
			}
		}
		return total
	},
).WithName("quotes.open_value")).Eval

// QuotesExpiringWithin returns the open quotes whose validity ends inside
// the window: on or after its first day, on or before its last.
var QuotesExpiringWithin = register(selectors.NewKeyed(
	func(s *storefront.State, w ExpiryWindow) []storefront.Quote {
		out := make([]storefront.Quote, 0, len(s.Quotes.Quotes))
		for _, q := range s.Quotes.Quotes {
			if quoteOpen(q) && w.AsOf <= q.ValidUntil && q.ValidUntil <= w.End() {
				out = append(out, q)
			}
		}
		return out
	},
).WithName("quotes.expiring_within")).Eval

// ExpiringSoonDays is the look-ahead the expiring-soon views use.
const ExpiringSoonDays = 7

// QuotesExpiringSoon returns the open quotes expiring within seven days of
// asOf.
func QuotesExpiringSoon(s *storefront.State, asOf date.Date) []storefront.Quote {
	return QuotesExpiringWithin(s, ExpiryWindow{AsOf: asOf, Days: ExpiringSoonDays})
}

// QuotesExpiringSoonToday is QuotesExpiringSoon against the wall clock.
// Impure on purpose: repeated calls with an identical state may differ once
// midnight passes. Callers needing determinism take QuotesExpiringSoon.
func QuotesExpiringSoonToday(s *storefront.State) []storefront.Quote {
	return QuotesExpiringSoon(s, date.Today())
}

// ExpiredQuotes returns the quotes whose validity ended before asOf,
// whatever their recorded status says.
var ExpiredQuotes = register(selectors.NewKeyed(
	func(s *storefront.State, asOf date.Date) []storefront.Quote {
		out := make([]storefront.Quote, 0, len(s.Quotes.Quotes))
		for _, q := range s.Quotes.Quotes {
			if q.ValidUntil < asOf {
				out = append(out, q)
			}
		}
		return out
	},
	selectors.WithMaxEntries(4),
).WithName("quotes.expired")).Eval

// QuoteAcceptanceRate returns the share of decided quotes that were
// accepted, in [0, 1]. No decided quotes reads as 0.
var QuoteAcceptanceRate = register(selectors.Derive1(
	Quotes,
	func(all []storefront.Quote) float64 {
		accepted, decided := 0, 0
		for _, q := range all {
			switch q.Status {
			case storefront.QuoteAccepted:
				accepted++
				decided++
			case storefront.QuoteRejected, storefront.QuoteExpired:
				decided++
			}
		}
		if decided == 0 {
			return 0
		}
		return float64(accepted) / float64(decided)
	},
).WithName("quotes.acceptance_rate")).Eval

// LatestQuote returns the most recently created quote, or nil.
var LatestQuote = register(selectors.Derive1(
	Quotes,
	func(all []storefront.Quote) *storefront.Quote {
		var latest *storefront.Quote
		for i := range all {
			if latest == nil || all[i].CreatedAt.After(latest.CreatedAt) {
				q := all[i]
				latest = &q
			}
		}
		return latest
	},
).WithName("quotes.latest")).Eval

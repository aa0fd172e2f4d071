package report

import (
	"strings"
	"time"

	"github.com/luxegem/backend/internal/domain/invoice"
	"github.com/shopspring/decimal"
)

// filterAll is the sentinel that disables an optional filter dimension.
const filterAll = "ALL"

// Filter describes one report request's record selection. The zero value of
// an optional dimension (blank string, nil bound) disables it; tenant and
// date range are always applied.
type Filter struct {
	TenantID      string
	Range         DateRange
	Search        string
	PaymentMethod string
	MetalType     string
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal
}

// Clause is one typed predicate of the composite filter. The full predicate
// is the logical AND of all clauses. Every clause both evaluates in memory
// and is translated to SQL by the storage layer, so the two cannot drift.
type Clause interface {
	Matches(inv *invoice.Invoice) bool
}

// TenantClause scopes records to one tenant, case-insensitively.
type TenantClause struct {
	TenantID string
}

func (c TenantClause) Matches(inv *invoice.Invoice) bool {
	return strings.EqualFold(strings.TrimSpace(inv.TenantID), c.TenantID)
}

// DateRangeClause selects records whose issue date lies in the inclusive interval.
type DateRangeClause struct {
	From time.Time
	To   time.Time
}

func (c DateRangeClause) Matches(inv *invoice.Invoice) bool {
	d := inv.IssueDate
	return !d.Before(c.From) && !d.After(c.To)
}

// SearchClause is a case-insensitive substring OR across the invoice number
// and the customer name.
type SearchClause struct {
	Term string
}

func (c SearchClause) Matches(inv *invoice.Invoice) bool {
	term := strings.ToLower(c.Term)
	return strings.Contains(strings.ToLower(inv.InvoiceNumber), term) ||
		strings.Contains(strings.ToLower(inv.CustomerName), term)
}

// PaymentMethodClause is a case-insensitive exact match on the raw stored
// payment method (not the normalized display label).
type PaymentMethodClause struct {
	Method string
}

func (c PaymentMethodClause) Matches(inv *invoice.Invoice) bool {
	return strings.EqualFold(strings.TrimSpace(inv.PaymentMethod), c.Method)
}

// MetalPrefixClause is a case-insensitive prefix match on the invoice type
// code, so the synonym GOLD selects GOLD_22K as well.
type MetalPrefixClause struct {
	Prefix string
}

func (c MetalPrefixClause) Matches(inv *invoice.Invoice) bool {
	return strings.HasPrefix(normalizedType(inv.Type), c.Prefix)
}

// AmountRangeClause bounds the net amount inclusively; either side may be nil.
type AmountRangeClause struct {
	Min *decimal.Decimal
	Max *decimal.Decimal
}

func (c AmountRangeClause) Matches(inv *invoice.Invoice) bool {
	if c.Min != nil && inv.NetAmount.LessThan(*c.Min) {
		return false
	}
	if c.Max != nil && inv.NetAmount.GreaterThan(*c.Max) {
		return false
	}
	return true
}

// Clauses flattens the filter into its typed predicate list. Optional
// dimensions set to "ALL" or blank are omitted entirely.
func (f Filter) Clauses() []Clause {
	clauses := []Clause{
		TenantClause{TenantID: strings.ToLower(strings.TrimSpace(f.TenantID))},
		DateRangeClause{From: f.Range.From, To: f.Range.To},
	}

	if term := strings.TrimSpace(f.Search); term != "" {
		clauses = append(clauses, SearchClause{Term: strings.ToLower(term)})
	}

	if method := strings.TrimSpace(f.PaymentMethod); method != "" && !strings.EqualFold(method, filterAll) {
		clauses = append(clauses, PaymentMethodClause{Method: strings.ToLower(method)})
	}

	if metal := strings.TrimSpace(f.MetalType); metal != "" && !strings.EqualFold(metal, filterAll) {
		// Recognized synonyms (GOLD, SILVER, PLATINUM, DIAMOND) are already
		// prefixes of the stored type codes; unrecognized tokens are used
		// verbatim as a prefix.
		clauses = append(clauses, MetalPrefixClause{Prefix: strings.ToUpper(metal)})
	}

	if f.MinAmount != nil || f.MaxAmount != nil {
		clauses = append(clauses, AmountRangeClause{Min: f.MinAmount, Max: f.MaxAmount})
	}

	return clauses
}

// Matches evaluates the composite predicate in memory.
func (f Filter) Matches(inv *invoice.Invoice) bool {
	for _, clause := range f.Clauses() {
		if !clause.Matches(inv) {
			return false
		}
	}
	return true
}

package report

import "strings"

// DefaultSalesperson is the label reported for every row. Invoices carry no
// salesperson dimension, so the report surfaces the fixed staff label instead.
const DefaultSalesperson = "Admin / Staff"

// salespersonRoster is the only set of values the salesperson filter can
// fuzzily match. The request contract exposes the field but the record model
// has no backing data for it; this is a known simplification carried from the
// billing service, preserved until product decides the real dimension.
var salespersonRoster = []string{"admin", "staff", "admin / staff"}

// SalespersonSupported reports whether the salesperson filter can match any
// data at all. A blank filter always passes. Matching is case-insensitive
// substring containment in either direction against the roster. Unsupported
// values short-circuit the whole report to an empty, well-formed response
// rather than an error.
func SalespersonSupported(filter string) bool {
	normalized := strings.ToLower(strings.TrimSpace(filter))
	if normalized == "" {
		return true
	}
	for _, entry := range salespersonRoster {
		if strings.Contains(entry, normalized) || strings.Contains(normalized, entry) {
			return true
		}
	}
	return false
}

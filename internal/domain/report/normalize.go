package report

import "strings"

// NormalizePaymentMethod canonicalizes a free-form payment method label.
// Blank means cash; UPI and card variants collapse to fixed labels; anything
// else is title-cased as-is.
func NormalizePaymentMethod(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return "Cash"
	}
	switch normalized {
	case "upi":
		return "UPI"
	case "credit card", "debit card", "card":
		return "Card"
	default:
		return titleFirst(normalized)
	}
}

// NormalizeMetal derives a display category from an invoice or item type code.
// GOLD types are refined by karat substring; blank types fall into "Other".
func NormalizeMetal(value string) string {
	normalized := normalizedType(value)
	switch {
	case strings.HasPrefix(normalized, "GOLD"):
		switch {
		case strings.Contains(normalized, "18K"):
			return "Gold 18K"
		case strings.Contains(normalized, "22K"):
			return "Gold 22K"
		case strings.Contains(normalized, "24K"):
			return "Gold 24K"
		}
		return "Gold"
	case strings.HasPrefix(normalized, "SILVER"):
		return "Silver"
	case strings.HasPrefix(normalized, "PLATINUM"):
		return "Platinum"
	case strings.HasPrefix(normalized, "DIAMOND"):
		return "Diamond"
	case normalized == "":
		return "Other"
	default:
		return titleFirst(strings.ToLower(normalized))
	}
}

// normalizedType uppercases and trims a type code, mapping blank to "".
func normalizedType(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// titleFirst uppercases the first rune only, e.g. "neft transfer" -> "Neft transfer".
func titleFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

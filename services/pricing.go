// Package services implements the quote composition engine, document
// exports, and the pricing rules shared by quotes and invoices.
package services

// PhaseLabel maps a replacement pricing tier to its customer-facing name.
// Unknown or empty tiers fall back to the standard tier.
func PhaseLabel(phase string) string {
	switch phase {
	case "phase1":
		return "Economy"
	case "phase3":
		return "Premium"
	default:
		return "Standard"
	}
}

// ItemsTotal sums line item costs. Items with no cost contribute 0.
func ItemsTotal(items []JobItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.TotalCost
	}
	return sum
}

// QuoteAmount computes the amount recorded on a quote: the combined
// replacement total when replacement entries exist, otherwise the line item
// sum.
func QuoteAmount(entries []ReplacementEntry, items []JobItem) float64 {
	if len(entries) > 0 {
		return CombinedReplacementTotal(entries)
	}
	return ItemsTotal(items)
}

// InvoiceTotals aggregates invoice line amounts.
type InvoiceTotals struct {
	Subtotal float64
	Paid     float64
	Due      float64
}

// CalcInvoiceTotals sums line amounts and nets out payments received.
func CalcInvoiceTotals(lineAmounts []float64, paid float64) InvoiceTotals {
	var totals InvoiceTotals
	for _, a := range lineAmounts {
		totals.Subtotal += a
	}
	totals.Paid = paid
	totals.Due = totals.Subtotal - paid
	return totals
}

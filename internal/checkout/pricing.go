package checkout

import "encoding/json"

// OrderTotal sums price times quantity across cart lines, in integer cents.
// Lines whose price is not numeric contribute nothing. The validator confirms
// each product exists for its vendor, but prices are taken from the request
// as-is and are not reconciled against the catalog.
func OrderTotal(lines []CartLine) int64 {
	var total int64
	for _, line := range lines {
		price, ok := priceCents(line.Price)
		if !ok {
			continue
		}
		total += price * int64(line.Quantity)
	}
	return total
}

func priceCents(v any) (int64, bool) {
	switch p := v.(type) {
	case int:
		return int64(p), true
	case int64:
		return p, true
	case float64:
		return int64(p), true
	case json.Number:
		if n, err := p.Int64(); err == nil {
			return n, true
		}
		if f, err := p.Float64(); err == nil {
			return int64(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

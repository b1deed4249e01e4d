package payment

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Summary aggregates payment amounts per currency and lifecycle bucket.
// Refunded payments were collected and then given back, so they count toward
// Refunded only; Outstanding is pending plus failed.
type Summary struct {
	Currency    string          `json:"currency"`
	Collected   decimal.Decimal `json:"collected"`
	Refunded    decimal.Decimal `json:"refunded"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

func Summarize(payments []Payment) []Summary {
	byCurrency := map[string]*Summary{}
	for _, p := range payments {
		s, ok := byCurrency[p.Currency]
		if !ok {
			s = &Summary{
				Currency:    p.Currency,
				Collected:   decimal.Zero,
				Refunded:    decimal.Zero,
				Outstanding: decimal.Zero,
			}
			byCurrency[p.Currency] = s
		}
		switch p.Status {
		case StatusPaid:
			s.Collected = s.Collected.Add(p.Amount)
		case StatusRefunded:
			s.Refunded = s.Refunded.Add(p.Amount)
		case StatusPending, StatusFailed:
			s.Outstanding = s.Outstanding.Add(p.Amount)
		}
	}

	out := make([]Summary, 0, len(byCurrency))
	for _, s := range byCurrency {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out
}

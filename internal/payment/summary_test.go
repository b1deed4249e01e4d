package payment

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSummarize_BucketsByStatusAndCurrency(t *testing.T) {
	payments := []Payment{
		{Currency: "EUR", Status: StatusPaid, Amount: decimal.RequireFromString("100.50")},
		{Currency: "EUR", Status: StatusPaid, Amount: decimal.RequireFromString("49.50")},
		{Currency: "EUR", Status: StatusRefunded, Amount: decimal.RequireFromString("25.00")},
		{Currency: "EUR", Status: StatusPending, Amount: decimal.RequireFromString("10.10")},
		{Currency: "EUR", Status: StatusFailed, Amount: decimal.RequireFromString("5.90")},
		{Currency: "USD", Status: StatusPaid, Amount: decimal.RequireFromString("75.00")},
	}

	got := Summarize(payments)
	if len(got) != 2 {
		t.Fatalf("expected 2 currencies, got %d", len(got))
	}

	eur := got[0]
	if eur.Currency != "EUR" {
		t.Fatalf("expected EUR first, got %s", eur.Currency)
	}
	if !eur.Collected.Equal(decimal.RequireFromString("150.00")) {
		t.Fatalf("expected EUR collected 150.00, got %s", eur.Collected)
	}
	if !eur.Refunded.Equal(decimal.RequireFromString("25.00")) {
		t.Fatalf("expected EUR refunded 25.00, got %s", eur.Refunded)
	}
	if !eur.Outstanding.Equal(decimal.RequireFromString("16.00")) {
		t.Fatalf("expected EUR outstanding 16.00, got %s", eur.Outstanding)
	}

	usd := got[1]
	if usd.Currency != "USD" || !usd.Collected.Equal(decimal.RequireFromString("75.00")) {
		t.Fatalf("USD summary mismatch: %+v", usd)
	}
}

func TestSummarize_EmptyInput(t *testing.T) {
	if got := Summarize(nil); len(got) != 0 {
		t.Fatalf("expected empty summary, got %+v", got)
	}
}

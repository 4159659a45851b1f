package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestRemainingBalance(t *testing.T) {
	tests := []struct {
		name  string
		total string
		paid  string
		want  string
	}{
		{"unpaid", "2320.00", "0", "2320.00"},
		{"partially paid", "2320.00", "500.00", "1820.00"},
		{"fully paid", "2320.00", "2320.00", "0"},
		{"overpaid clamps to zero", "100.00", "120.00", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemainingBalance(dec(tt.total), dec(tt.paid))
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestCollectionPercentage(t *testing.T) {
	tests := []struct {
		name  string
		total string
		paid  string
		want  string
	}{
		{"zero total yields zero", "0", "0", "0"},
		{"nothing collected", "200.00", "0", "0"},
		{"half collected", "200.00", "100.00", "50"},
		{"rounds up", "3.00", "2.00", "67"},
		{"rounds down", "3.00", "1.00", "33"},
		{"fully collected", "2320.00", "2320.00", "100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollectionPercentage(dec(tt.total), dec(tt.paid))
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestClassifyDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 42, 0, 0, time.UTC)
	day := func(offset int) *time.Time {
		d := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
		return &d
	}

	tests := []struct {
		name string
		due  *time.Time
		want DueClassification
	}{
		{"no due date", nil, DueNormal},
		{"due yesterday", day(-1), DueOverdue},
		{"due today", day(0), DueSoon},
		{"due in seven days", day(7), DueSoon},
		{"due in eight days", day(8), DueNormal},
		{"due far out", day(45), DueNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDue(tt.due, now))
		})
	}
}

func TestClassifyDueIgnoresTimeOfDay(t *testing.T) {
	// Late on the due day is still due today, not overdue.
	now := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	due := time.Date(2026, 3, 10, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, DueSoon, ClassifyDue(&due, now))
}

func TestDaysUntilDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	due := time.Date(2026, 3, 17, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, 7, DaysUntilDue(due, now))

	past := time.Date(2026, 3, 8, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, -2, DaysUntilDue(past, now))
}

func TestDerivedStatus(t *testing.T) {
	tests := []struct {
		name   string
		status domain.InvoiceStatus
		total  string
		paid   string
		want   domain.InvoiceStatus
	}{
		{"zero paid reopens as sent", domain.InvoicePartial, "100.00", "0", domain.InvoiceSent},
		{"partial payment", domain.InvoiceSent, "100.00", "40.00", domain.InvoicePartial},
		{"exact payment", domain.InvoiceSent, "100.00", "100.00", domain.InvoicePaid},
		{"void untouched", domain.InvoiceVoid, "100.00", "0", domain.InvoiceVoid},
		{"draft untouched", domain.InvoiceDraft, "100.00", "0", domain.InvoiceDraft},
		{"paid drops to partial after reversal", domain.InvoicePaid, "100.00", "60.00", domain.InvoicePartial},
		{"zero total never derives paid", domain.InvoiceSent, "0", "0", domain.InvoiceSent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DerivedStatus(tt.status, dec(tt.total), dec(tt.paid)))
		})
	}
}

// Package finance holds pure balance and due-date calculations shared by
// services and handlers. Nothing here touches storage or mutates entities.
package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
)

// DueClassification buckets an invoice by proximity to its due date.
type DueClassification string

const (
	DueOverdue DueClassification = "OVERDUE"
	DueSoon    DueClassification = "DUE_SOON"
	DueNormal  DueClassification = "NORMAL"
)

// dueSoonWindowDays is the horizon within which an unpaid invoice is
// flagged as due soon. The boundary day itself counts as due soon.
const dueSoonWindowDays = 7

// RemainingBalance returns total minus paid, clamped at zero. Overpaid
// invoices report a zero remaining balance rather than a negative one;
// callers needing the raw signed value should subtract directly.
func RemainingBalance(total, paid decimal.Decimal) decimal.Decimal {
	remaining := total.Sub(paid)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// CollectionPercentage returns how much of total has been paid, as a
// whole-number percentage rounded half away from zero. A zero or
// negative total yields 0, not 100: an empty invoice has collected nothing.
func CollectionPercentage(total, paid decimal.Decimal) decimal.Decimal {
	if total.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return paid.Div(total).Mul(decimal.NewFromInt(100)).Round(0)
}

// DerivedStatus recomputes an invoice's payment-progress status from its
// balances. Terminal VOID and pre-open DRAFT are never derived and pass
// through unchanged. PAID requires a positive total; a zero-total invoice
// is never derived as paid. Reversing the only application of a PARTIAL
// or PAID invoice reopens it as SENT.
func DerivedStatus(status domain.InvoiceStatus, total, paid decimal.Decimal) domain.InvoiceStatus {
	if status == domain.InvoiceVoid || status == domain.InvoiceDraft {
		return status
	}
	switch {
	case total.GreaterThan(decimal.Zero) && paid.GreaterThanOrEqual(total):
		return domain.InvoicePaid
	case paid.GreaterThan(decimal.Zero):
		return domain.InvoicePartial
	default:
		return domain.InvoiceSent
	}
}

// ClassifyDue buckets dueDate relative to now at UTC day granularity.
// A nil dueDate is NORMAL. Due before today is OVERDUE; due today or
// within the next seven days is DUE_SOON; anything later is NORMAL.
func ClassifyDue(dueDate *time.Time, now time.Time) DueClassification {
	if dueDate == nil {
		return DueNormal
	}
	today := truncateToDay(now)
	due := truncateToDay(*dueDate)
	if due.Before(today) {
		return DueOverdue
	}
	if !due.After(today.AddDate(0, 0, dueSoonWindowDays)) {
		return DueSoon
	}
	return DueNormal
}

// DaysUntilDue returns whole days from now until dueDate at UTC day
// granularity. Negative when overdue, zero when due today.
func DaysUntilDue(dueDate time.Time, now time.Time) int {
	due := truncateToDay(dueDate)
	today := truncateToDay(now)
	return int(due.Sub(today).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

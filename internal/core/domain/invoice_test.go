package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestInvoiceRemainingBalance(t *testing.T) {
	inv := Invoice{TotalAmount: dec("2320.00"), PaidAmount: dec("500.00")}
	assert.True(t, inv.RemainingBalance().Equal(dec("1820.00")))

	inv.PaidAmount = dec("2320.00")
	assert.True(t, inv.RemainingBalance().IsZero())
}

func TestInvoiceCanApplyPayment(t *testing.T) {
	tests := []struct {
		status InvoiceStatus
		want   bool
	}{
		{InvoiceDraft, true},
		{InvoiceSent, true},
		{InvoicePartial, true},
		{InvoicePaid, false},
		{InvoiceVoid, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			inv := Invoice{Status: tt.status}
			assert.Equal(t, tt.want, inv.CanApplyPayment())
		})
	}
}

func TestInvoiceKindIsValid(t *testing.T) {
	assert.True(t, KindAR.IsValid())
	assert.True(t, KindAP.IsValid())
	assert.False(t, InvoiceKind("XX").IsValid())
	assert.False(t, InvoiceKind("").IsValid())
}

func TestInvoiceStatusIsTerminal(t *testing.T) {
	assert.True(t, InvoicePaid.IsTerminal())
	assert.True(t, InvoiceVoid.IsTerminal())
	assert.False(t, InvoiceSent.IsTerminal())
	assert.False(t, InvoicePartial.IsTerminal())
}

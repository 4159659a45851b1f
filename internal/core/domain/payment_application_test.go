package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentApplicationValidate(t *testing.T) {
	arID := "inv-ar"
	apID := "inv-ap"

	tests := []struct {
		name    string
		app     PaymentApplication
		wantErr bool
	}{
		{
			name:    "valid AR application",
			app:     PaymentApplication{PaymentID: "pay-1", ARInvoiceID: &arID, Amount: dec("50.00")},
			wantErr: false,
		},
		{
			name:    "valid AP application",
			app:     PaymentApplication{PaymentID: "pay-1", APInvoiceID: &apID, Amount: dec("50.00")},
			wantErr: false,
		},
		{
			name:    "both invoices set",
			app:     PaymentApplication{PaymentID: "pay-1", ARInvoiceID: &arID, APInvoiceID: &apID, Amount: dec("50.00")},
			wantErr: true,
		},
		{
			name:    "no invoice set",
			app:     PaymentApplication{PaymentID: "pay-1", Amount: dec("50.00")},
			wantErr: true,
		},
		{
			name:    "missing payment",
			app:     PaymentApplication{ARInvoiceID: &arID, Amount: dec("50.00")},
			wantErr: true,
		},
		{
			name:    "zero amount",
			app:     PaymentApplication{PaymentID: "pay-1", ARInvoiceID: &arID, Amount: dec("0")},
			wantErr: true,
		},
		{
			name:    "negative amount",
			app:     PaymentApplication{PaymentID: "pay-1", ARInvoiceID: &arID, Amount: dec("-1.00")},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.app.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPaymentApplicationInvoiceID(t *testing.T) {
	arID := "inv-ar"
	app := PaymentApplication{ARInvoiceID: &arID}
	id, kind := app.InvoiceID()
	assert.Equal(t, "inv-ar", id)
	assert.Equal(t, KindAR, kind)

	apID := "inv-ap"
	app = PaymentApplication{APInvoiceID: &apID}
	id, kind = app.InvoiceID()
	assert.Equal(t, "inv-ap", id)
	assert.Equal(t, KindAP, kind)
}

func TestMarkReversedKeepsAmount(t *testing.T) {
	arID := "inv-ar"
	app := PaymentApplication{
		PaymentID:   "pay-1",
		ARInvoiceID: &arID,
		Amount:      dec("75.00"),
		Status:      ApplicationActive,
	}
	at := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	app.MarkReversed("wrong invoice", at)

	assert.True(t, app.IsReversed())
	require.NotNil(t, app.ReversedAt)
	assert.Equal(t, at, *app.ReversedAt)
	assert.Equal(t, "wrong invoice", app.ReversalReason)
	assert.True(t, app.Amount.Equal(dec("75.00")))
}

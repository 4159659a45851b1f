package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	"github.com/ledgerpad/ledgerpad_app/internal/utils/finance"
)

// CreateInvoiceRequest defines the payload for creating an invoice.
type CreateInvoiceRequest struct {
	Kind          string          `json:"kind" binding:"required,oneof=AR AP"`
	ContactID     string          `json:"contactID" binding:"required"`
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	CurrencyCode  string          `json:"currencyCode" binding:"required,currency_code"`
	TotalAmount   decimal.Decimal `json:"totalAmount" binding:"required"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// UpdateInvoiceRequest defines the payload for amending an invoice header.
// Only the fields present are changed; monetary fields are not editable here.
type UpdateInvoiceRequest struct {
	DueDate *time.Time `json:"dueDate,omitempty"`
	Notes   *string    `json:"notes,omitempty"`
}

// InvoiceResponse defines the API representation of an invoice, including
// the derived balance figures the list and detail screens show.
type InvoiceResponse struct {
	InvoiceID            string                    `json:"invoiceID"`
	Kind                 string                    `json:"kind"`
	ContactID            string                    `json:"contactID"`
	InvoiceNumber        string                    `json:"invoiceNumber"`
	CurrencyCode         string                    `json:"currencyCode"`
	TotalAmount          decimal.Decimal           `json:"totalAmount"`
	PaidAmount           decimal.Decimal           `json:"paidAmount"`
	RemainingBalance     decimal.Decimal           `json:"remainingBalance"`
	CollectionPercentage decimal.Decimal           `json:"collectionPercentage"`
	DueClassification    finance.DueClassification `json:"dueClassification"`
	Status               string                    `json:"status"`
	DueDate              *time.Time                `json:"dueDate,omitempty"`
	Notes                string                    `json:"notes,omitempty"`
	Version              int64                     `json:"version"`
	CreatedAt            time.Time                 `json:"createdAt"`
	LastUpdatedAt        time.Time                 `json:"lastUpdatedAt"`
}

// ToInvoiceResponse converts a domain invoice, deriving display balances
// relative to now.
func ToInvoiceResponse(inv domain.Invoice, now time.Time) InvoiceResponse {
	due := inv.DueDate
	cls := finance.DueNormal
	if inv.Status != domain.InvoicePaid && inv.Status != domain.InvoiceVoid {
		cls = finance.ClassifyDue(due, now)
	}
	return InvoiceResponse{
		InvoiceID:            inv.InvoiceID,
		Kind:                 string(inv.Kind),
		ContactID:            inv.ContactID,
		InvoiceNumber:        inv.InvoiceNumber,
		CurrencyCode:         inv.CurrencyCode,
		TotalAmount:          inv.TotalAmount,
		PaidAmount:           inv.PaidAmount,
		RemainingBalance:     finance.RemainingBalance(inv.TotalAmount, inv.PaidAmount),
		CollectionPercentage: finance.CollectionPercentage(inv.TotalAmount, inv.PaidAmount),
		DueClassification:    cls,
		Status:               string(inv.Status),
		DueDate:              due,
		Notes:                inv.Notes,
		Version:              inv.Version,
		CreatedAt:            inv.CreatedAt,
		LastUpdatedAt:        inv.LastUpdatedAt,
	}
}

// ListInvoicesResponse is a page of invoices.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken string            `json:"nextToken,omitempty"`
}

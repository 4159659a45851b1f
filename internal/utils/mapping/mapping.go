// Package mapping converts between persistence models and domain entities.
package mapping

import (
	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	"github.com/ledgerpad/ledgerpad_app/internal/models"
)

func auditToDomain(m models.AuditModel) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

func auditToModel(d domain.AuditFields) models.AuditModel {
	return models.AuditModel{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// InvoiceToDomain converts a persistence invoice into a domain invoice.
func InvoiceToDomain(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:     m.InvoiceID,
		Kind:          domain.InvoiceKind(m.Kind),
		ContactID:     m.ContactID,
		InvoiceNumber: m.InvoiceNumber,
		CurrencyCode:  m.CurrencyCode,
		TotalAmount:   m.TotalAmount,
		PaidAmount:    m.PaidAmount,
		Status:        domain.InvoiceStatus(m.Status),
		DueDate:       m.DueDate,
		Notes:         m.Notes,
		Version:       m.Version,
		AuditFields:   auditToDomain(m.AuditModel),
	}
}

// InvoiceToModel converts a domain invoice into its persistence model.
func InvoiceToModel(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:     d.InvoiceID,
		Kind:          string(d.Kind),
		ContactID:     d.ContactID,
		InvoiceNumber: d.InvoiceNumber,
		CurrencyCode:  d.CurrencyCode,
		TotalAmount:   d.TotalAmount,
		PaidAmount:    d.PaidAmount,
		Status:        string(d.Status),
		DueDate:       d.DueDate,
		Notes:         d.Notes,
		Version:       d.Version,
		AuditModel:    auditToModel(d.AuditFields),
	}
}

// PaymentToDomain converts a persistence payment into a domain payment.
func PaymentToDomain(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     m.PaymentID,
		ContactID:     m.ContactID,
		CurrencyCode:  m.CurrencyCode,
		Amount:        m.Amount,
		AppliedAmount: m.AppliedAmount,
		Status:        domain.PaymentStatus(m.Status),
		PaymentDate:   m.PaymentDate,
		Reference:     m.Reference,
		Notes:         m.Notes,
		Version:       m.Version,
		AuditFields:   auditToDomain(m.AuditModel),
	}
}

// PaymentToModel converts a domain payment into its persistence model.
func PaymentToModel(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		ContactID:     d.ContactID,
		CurrencyCode:  d.CurrencyCode,
		Amount:        d.Amount,
		AppliedAmount: d.AppliedAmount,
		Status:        string(d.Status),
		PaymentDate:   d.PaymentDate,
		Reference:     d.Reference,
		Notes:         d.Notes,
		Version:       d.Version,
		AuditModel:    auditToModel(d.AuditFields),
	}
}

// ApplicationToDomain converts a persistence payment application into its domain form.
func ApplicationToDomain(m models.PaymentApplication) domain.PaymentApplication {
	return domain.PaymentApplication{
		ApplicationID:   m.ApplicationID,
		PaymentID:       m.PaymentID,
		ARInvoiceID:     m.ARInvoiceID,
		APInvoiceID:     m.APInvoiceID,
		Amount:          m.Amount,
		ApplicationDate: m.ApplicationDate,
		Status:          domain.ApplicationStatus(m.Status),
		ReversedAt:      m.ReversedAt,
		ReversalReason:  m.ReversalReason,
		AuditFields:     auditToDomain(m.AuditModel),
	}
}

// ApplicationToModel converts a domain payment application into its persistence model.
func ApplicationToModel(d domain.PaymentApplication) models.PaymentApplication {
	return models.PaymentApplication{
		ApplicationID:   d.ApplicationID,
		PaymentID:       d.PaymentID,
		ARInvoiceID:     d.ARInvoiceID,
		APInvoiceID:     d.APInvoiceID,
		Amount:          d.Amount,
		ApplicationDate: d.ApplicationDate,
		Status:          string(d.Status),
		ReversedAt:      d.ReversedAt,
		ReversalReason:  d.ReversalReason,
		AuditModel:      auditToModel(d.AuditFields),
	}
}

// BankTransactionToDomain converts a persistence bank transaction into its domain form.
func BankTransactionToDomain(m models.BankTransaction) domain.BankTransaction {
	return domain.BankTransaction{
		TransactionID:        m.TransactionID,
		BankAccountID:        m.BankAccountID,
		TransactionDate:      m.TransactionDate,
		Amount:               m.Amount,
		TransactionType:      domain.BankTransactionType(m.TransactionType),
		Description:          m.Description,
		ReconciliationStatus: domain.ReconciliationStatus(m.ReconciliationStatus),
		ReconciledByID:       m.ReconciledByID,
		ReconciledAt:         m.ReconciledAt,
		ReconciliationNotes:  m.ReconciliationNotes,
		RunningBalance:       m.RunningBalance,
		Version:              m.Version,
		AuditFields:          auditToDomain(m.AuditModel),
	}
}

// BankTransactionToModel converts a domain bank transaction into its persistence model.
func BankTransactionToModel(d domain.BankTransaction) models.BankTransaction {
	return models.BankTransaction{
		TransactionID:        d.TransactionID,
		BankAccountID:        d.BankAccountID,
		TransactionDate:      d.TransactionDate,
		Amount:               d.Amount,
		TransactionType:      string(d.TransactionType),
		Description:          d.Description,
		ReconciliationStatus: string(d.ReconciliationStatus),
		ReconciledByID:       d.ReconciledByID,
		ReconciledAt:         d.ReconciledAt,
		ReconciliationNotes:  d.ReconciliationNotes,
		RunningBalance:       d.RunningBalance,
		Version:              d.Version,
		AuditModel:           auditToModel(d.AuditFields),
	}
}

// CurrencyToDomain converts a persistence currency into its domain form.
func CurrencyToDomain(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode: m.CurrencyCode,
		Symbol:       m.Symbol,
		Name:         m.Name,
		Precision:    m.Precision,
		AuditFields:  auditToDomain(m.AuditModel),
	}
}

// CurrencyToModel converts a domain currency into its persistence model.
func CurrencyToModel(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyCode: d.CurrencyCode,
		Symbol:       d.Symbol,
		Name:         d.Name,
		Precision:    d.Precision,
		AuditModel:   auditToModel(d.AuditFields),
	}
}

// UserToDomain converts a persistence user into its domain form.
func UserToDomain(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		AuthProvider: domain.AuthProvider(m.AuthProvider),
		AuditFields:  auditToDomain(m.AuditModel),
		DeletedAt:    m.DeletedAt,
	}
}

// UserToModel converts a domain user into its persistence model.
func UserToModel(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		AuthProvider: string(d.AuthProvider),
		AuditModel:   auditToModel(d.AuditFields),
		DeletedAt:    d.DeletedAt,
	}
}

package domain

// Event types emitted by the core services. Downstream consumers (GL
// posting, notifications) subscribe by name; payloads are flat maps.
const (
	EventInvoiceBalanceChanged       = "invoice.balance_changed"
	EventInvoiceFullyPaid            = "invoice.fully_paid"
	EventPaymentPosted               = "payment.posted"
	EventApplicationReversed         = "payment_application.reversed"
	EventBankTransactionReconciled   = "bank_transaction.reconciled"
	EventBankTransactionUnreconciled = "bank_transaction.unreconciled"
)

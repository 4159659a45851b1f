package models

// Currency is the persistence model for the currencies table.
type Currency struct {
	CurrencyCode string `db:"currency_code"`
	Symbol       string `db:"symbol"`
	Name         string `db:"name"`
	Precision    int32  `db:"precision"`
	AuditModel
}

package model

import "github.com/google/uuid"

// Expense is a single recorded payment: the original amount in its source
// currency plus the converted home-currency value. Expenses are top-level
// entities, not nested inside trips; the association to a trip is implicit
// through the date falling inside that trip's range, which lets the flat
// store be queried by date range without walking trips.
// An expense is immutable once created.
type Expense struct {
	ID             string        `json:"id"`
	Date           Date          `json:"date"`
	OriginalAmount float64       `json:"originalAmount"`
	HomeAmount     float64       `json:"homeAmount"`
	Currency       string        `json:"sourceCurrency"`
	Method         PaymentMethod `json:"paymentMethod"`
	Category       Category      `json:"category"`
}

// NewExpense creates an expense with a fresh unique identifier.
func NewExpense(date Date, original, home float64, currency string, method PaymentMethod, category Category) Expense {
	return Expense{
		ID:             uuid.NewString(),
		Date:           date,
		OriginalAmount: original,
		HomeAmount:     home,
		Currency:       currency,
		Method:         method,
		Category:       category,
	}
}

package model

// Account is a single ledger entry: a 10-digit account number and its
// current balance. Accounts carry no owner reference; the registered
// username is only an eligibility gate at creation time.
type Account struct {
	ID      int64   `json:"id" validate:"required,min=1000000000,max=9999999999"`
	Balance float64 `json:"balance" validate:"gte=0"`
}

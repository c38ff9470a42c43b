package models

import "time"

// Transaction is a ledger entry. Amount is signed: positive for income
// categories, negative for expenses.
type Transaction struct {
	ID          string            `bson:"id" json:"id"`
	Date        string            `bson:"date" json:"date"` // "2006-01-02"
	Description string            `bson:"description" json:"description"`
	Amount      float64           `bson:"amount" json:"amount"`
	Category    string            `bson:"category" json:"category"`
	Entity      string            `bson:"entity,omitempty" json:"entity,omitempty"`
	Account     string            `bson:"account" json:"account"`
	Currency    string            `bson:"currency" json:"currency"`
	Source      string            `bson:"source" json:"source"`
	BookingID   string            `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	Metadata    map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt   time.Time         `bson:"createdAt" json:"createdAt"`
}

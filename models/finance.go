package models

// SyncOutcome reports what a single booking sync posted.
type SyncOutcome struct {
	BookingID     string        `json:"bookingId"`
	AlreadySynced bool          `json:"alreadySynced"`
	Posted        []Transaction `json:"posted,omitempty"`
}

// BulkSyncItem is one booking's result within a bulk sync run.
type BulkSyncItem struct {
	BookingID     string `json:"bookingId"`
	PostedCount   int    `json:"postedCount"`
	AlreadySynced bool   `json:"alreadySynced,omitempty"`
	Error         string `json:"error,omitempty"`
}

// RevenueReport aggregates ledger transactions over a date range.
type RevenueReport struct {
	From             string             `json:"from"`
	To               string             `json:"to"`
	ServiceRevenue   float64            `json:"serviceRevenue"`
	Tips             float64            `json:"tips"`
	GrossIncome      float64            `json:"grossIncome"`
	Expenses         float64            `json:"expenses"`
	NetIncome        float64            `json:"netIncome"`
	ByService        map[string]float64 `json:"byService,omitempty"`
	ByCustomer       map[string]float64 `json:"byCustomer,omitempty"`
	TransactionCount int                `json:"transactionCount"`
}

// CustomerValue sums a customer's lifetime ledger contribution.
type CustomerValue struct {
	CustomerID       string  `json:"customerId"`
	CustomerName     string  `json:"customerName"`
	ServiceRevenue   float64 `json:"serviceRevenue"`
	Tips             float64 `json:"tips"`
	GrossIncome      float64 `json:"grossIncome"`
	TransactionCount int     `json:"transactionCount"`
	FirstDate        string  `json:"firstDate,omitempty"`
	LastDate         string  `json:"lastDate,omitempty"`
}

// DepositLink describes a payment intent created for a booking deposit.
type DepositLink struct {
	BookingID       string  `json:"bookingId"`
	PaymentIntentID string  `json:"paymentIntentId"`
	ClientSecret    string  `json:"clientSecret"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
}

package models

// HistoryStats are derived from a customer's completed bookings.
type HistoryStats struct {
	CompletedCount int     `json:"completedCount"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalTips      float64 `json:"totalTips"`
	AverageTicket  float64 `json:"averageTicket"`
}

// CustomerHistory is the denormalized customer aggregate: the customer
// plus its vehicles, bookings and communications with derived stats.
type CustomerHistory struct {
	Customer       Customer        `json:"customer"`
	Vehicles       []Vehicle       `json:"vehicles"`
	Bookings       []Booking       `json:"bookings"`
	Communications []Communication `json:"communications"`
	Stats          HistoryStats    `json:"stats"`
}

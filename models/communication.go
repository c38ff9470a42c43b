package models

import "time"

// Communication logs an exchange with a customer on any channel.
type Communication struct {
	ID          string    `bson:"id" json:"id"`
	CustomerID  string    `bson:"customerId" json:"customerId"`
	Channel     string    `bson:"channel" json:"channel"`     // "sms", "instagram", "email", "phone"
	Direction   string    `bson:"direction" json:"direction"` // "inbound", "outbound"
	Summary     string    `bson:"summary" json:"summary"`
	ActionItems []string  `bson:"actionItems,omitempty" json:"actionItems,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

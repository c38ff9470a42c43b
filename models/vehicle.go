package models

import "time"

// Vehicle represents a customer's vehicle.
type Vehicle struct {
	ID         string    `bson:"id" json:"id"`
	CustomerID string    `bson:"customerId" json:"customerId"`
	Year       int       `bson:"year,omitempty" json:"year,omitempty"`
	Make       string    `bson:"make" json:"make"`
	Model      string    `bson:"model" json:"model"`
	Color      string    `bson:"color,omitempty" json:"color,omitempty"`
	Nickname   string    `bson:"nickname,omitempty" json:"nickname,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

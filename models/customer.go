package models

import (
	"fmt"
	"time"
)

// PriceTier enumerates the pricing categories applied to a customer.
type PriceTier string

const (
	TierLoyalty  PriceTier = "loyalty"
	TierReferral PriceTier = "referral"
	TierStandard PriceTier = "standard"
)

// ParsePriceTier validates a raw string against the closed tier set.
func ParsePriceTier(s string) (PriceTier, error) {
	switch t := PriceTier(s); t {
	case TierLoyalty, TierReferral, TierStandard:
		return t, nil
	}
	return "", fmt.Errorf("unknown price tier %q", s)
}

// Customer represents a CRM customer record.
type Customer struct {
	ID                string    `bson:"id" json:"id"`
	Name              string    `bson:"name" json:"name"`
	Phone             string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address           string    `bson:"address,omitempty" json:"address,omitempty"`
	LocationArea      string    `bson:"locationArea,omitempty" json:"locationArea,omitempty"`
	Tags              []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	PriceTier         PriceTier `bson:"priceTier" json:"priceTier"`
	ReferralSource    string    `bson:"referralSource,omitempty" json:"referralSource,omitempty"`
	Notes             string    `bson:"notes,omitempty" json:"notes,omitempty"`
	LastServiceAt     string    `bson:"lastServiceAt,omitempty" json:"lastServiceAt,omitempty"`
	NextAppointmentAt string    `bson:"nextAppointmentAt,omitempty" json:"nextAppointmentAt,omitempty"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
}

package extract

import (
	"fmt"
	"strings"

	"detailflow/models"
)

// Extraction carries the fields a vision-capable agent pulled from a
// chat screenshot. Everything is optional; normalization works with
// whatever arrived.
type Extraction struct {
	Name           string  `json:"name,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	Address        string  `json:"address,omitempty"`
	LocationArea   string  `json:"locationArea,omitempty"`
	Vehicle        string  `json:"vehicle,omitempty"`
	ServiceType    string  `json:"serviceType,omitempty"`
	RequestedDate  string  `json:"requestedDate,omitempty"`
	RequestedTime  string  `json:"requestedTime,omitempty"`
	Price          float64 `json:"price,omitempty"`
	ReferralSource string  `json:"referralSource,omitempty"`
	Notes          string  `json:"notes,omitempty"`
}

// Result is the normalized record plus rendered guidance.
type Result struct {
	Normalized     Extraction `json:"normalized"`
	PriceTier      string     `json:"priceTier"`
	Summary        string     `json:"summary"`
	SuggestedCalls []string   `json:"suggestedCalls"`
	MissingFields  []string   `json:"missingFields,omitempty"`
}

// NormalizePhone strips a phone string down to digits, keeping a
// leading plus sign.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for i, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TierFromReferral derives the starting price tier from how the
// customer found the business. Referred customers start on the
// referral tier; everyone else starts standard.
func TierFromReferral(source string) models.PriceTier {
	s := strings.ToLower(source)
	if strings.Contains(s, "referr") || strings.Contains(s, "friend") || strings.Contains(s, "word of mouth") {
		return models.TierReferral
	}
	return models.TierStandard
}

// Format normalizes an extraction and renders the summary plus the
// tool calls the agent should make next. Dates pass through unvalidated.
func Format(e Extraction) Result {
	e.Phone = NormalizePhone(e.Phone)
	e.Name = strings.TrimSpace(e.Name)
	e.Vehicle = strings.TrimSpace(e.Vehicle)

	tier := TierFromReferral(e.ReferralSource)
	result := Result{Normalized: e, PriceTier: string(tier)}

	var lines []string
	lines = append(lines, "Extracted from screenshot:")
	appendLine := func(label, value string) {
		if value != "" {
			lines = append(lines, fmt.Sprintf("- %s: %s", label, value))
		}
	}
	appendLine("Name", e.Name)
	appendLine("Phone", e.Phone)
	appendLine("Address", e.Address)
	appendLine("Area", e.LocationArea)
	appendLine("Vehicle", e.Vehicle)
	appendLine("Service", e.ServiceType)
	appendLine("Requested date", e.RequestedDate)
	appendLine("Requested time", e.RequestedTime)
	if e.Price > 0 {
		lines = append(lines, fmt.Sprintf("- Quoted price: $%.2f", e.Price))
	}
	appendLine("Referral source", e.ReferralSource)
	appendLine("Notes", e.Notes)
	lines = append(lines, fmt.Sprintf("- Starting tier: %s", tier))
	result.Summary = strings.Join(lines, "\n")

	for _, f := range [][2]string{{"name", e.Name}, {"phone", e.Phone}, {"serviceType", e.ServiceType}} {
		if f[1] == "" {
			result.MissingFields = append(result.MissingFields, f[0])
		}
	}

	if e.Name != "" {
		result.SuggestedCalls = append(result.SuggestedCalls,
			fmt.Sprintf("customer_create(name=%q, phone=%q, address=%q, priceTier=%q, referralSource=%q)",
				e.Name, e.Phone, e.Address, tier, e.ReferralSource))
	}
	if e.Vehicle != "" {
		result.SuggestedCalls = append(result.SuggestedCalls,
			fmt.Sprintf("vehicle_add(customerId=<new id>, description=%q)", e.Vehicle))
	}
	if e.ServiceType != "" && e.RequestedDate != "" {
		result.SuggestedCalls = append(result.SuggestedCalls,
			fmt.Sprintf("booking_create(customerId=<new id>, serviceType=%q, date=%q, time=%q, price=%.2f)",
				e.ServiceType, e.RequestedDate, e.RequestedTime, e.Price))
	} else if e.ServiceType != "" {
		result.SuggestedCalls = append(result.SuggestedCalls,
			fmt.Sprintf("availability_check(serviceType=%q)", e.ServiceType))
	}

	return result
}

package models

// TimeSlot is a candidate one-hour start time for a new booking.
// Slots are transient query results, recomputed on every availability
// check from the current set of bookings.
type TimeSlot struct {
	Date          string `json:"date"` // "2006-01-02"
	Hour          int    `json:"hour"`
	Available     bool   `json:"available"`
	ConflictsWith string `json:"conflictsWith,omitempty"` // booking ID occupying the slot
}

// Suggestion is a scored candidate slot. Ties keep generation order
// (date ascending, then hour ascending).
type Suggestion struct {
	Date    string `json:"date"`
	Hour    int    `json:"hour"`
	Weekday string `json:"weekday"`
	Score   int    `json:"score"`
}

// AvailabilityResult is the outcome of an availability check. An empty
// slot list is a valid negative result, not an error.
type AvailabilityResult struct {
	Slots        []TimeSlot   `json:"slots"`
	Open         []TimeSlot   `json:"open"`
	LocationHint LocationType `json:"locationHint"`
	Message      string       `json:"message"`
}

// SuggestionResult carries the ranked suggestions plus guidance text
// when nothing is open.
type SuggestionResult struct {
	Suggestions []Suggestion `json:"suggestions"`
	Message     string       `json:"message"`
}

// RebookingPlan is the computed follow-up interval for a customer.
type RebookingPlan struct {
	NextDate string   `json:"nextDate"` // "2006-01-02"
	Snapped  bool     `json:"snapped"`  // true when the computed date had passed and was moved to today+7d
	Messages []string `json:"messages"`
}

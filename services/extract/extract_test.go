package extract

import (
	"strings"
	"testing"

	"detailflow/models"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(555) 867-5309", "5558675309"},
		{"+1 555 867 5309", "+15558675309"},
		{"555.867.5309 ext 2", "55586753092"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTierFromReferral(t *testing.T) {
	tests := []struct {
		source string
		want   models.PriceTier
	}{
		{"referred by Dana", models.TierReferral},
		{"friend of Lee", models.TierReferral},
		{"word of mouth", models.TierReferral},
		{"instagram ad", models.TierStandard},
		{"", models.TierStandard},
	}
	for _, tc := range tests {
		if got := TierFromReferral(tc.source); got != tc.want {
			t.Errorf("TierFromReferral(%q) = %v, want %v", tc.source, got, tc.want)
		}
	}
}

func TestFormatFullExtraction(t *testing.T) {
	result := Format(Extraction{
		Name:           " Dana Reyes ",
		Phone:          "(555) 867-5309",
		Address:        "12 Birch Lane",
		Vehicle:        "2021 Subaru Outback",
		ServiceType:    "full_detail",
		RequestedDate:  "2026-05-20",
		RequestedTime:  "10:00",
		Price:          250,
		ReferralSource: "referred by Lee",
	})

	if result.Normalized.Phone != "5558675309" {
		t.Errorf("phone = %q, want digits only", result.Normalized.Phone)
	}
	if result.Normalized.Name != "Dana Reyes" {
		t.Errorf("name = %q, want trimmed", result.Normalized.Name)
	}
	if result.PriceTier != string(models.TierReferral) {
		t.Errorf("tier = %q, want referral", result.PriceTier)
	}
	if len(result.MissingFields) != 0 {
		t.Errorf("missing fields = %v, want none", result.MissingFields)
	}
	for _, want := range []string{"Dana Reyes", "full_detail", "$250.00"} {
		if !strings.Contains(result.Summary, want) {
			t.Errorf("summary missing %q:\n%s", want, result.Summary)
		}
	}
	if len(result.SuggestedCalls) != 3 {
		t.Fatalf("suggested calls = %d, want customer_create, vehicle_add and booking_create", len(result.SuggestedCalls))
	}
	if !strings.HasPrefix(result.SuggestedCalls[0], "customer_create(") {
		t.Errorf("first call = %q, want customer_create", result.SuggestedCalls[0])
	}
	if !strings.HasPrefix(result.SuggestedCalls[2], "booking_create(") {
		t.Errorf("third call = %q, want booking_create", result.SuggestedCalls[2])
	}
}

func TestFormatPartialExtraction(t *testing.T) {
	result := Format(Extraction{ServiceType: "wash"})

	for _, want := range []string{"name", "phone"} {
		found := false
		for _, f := range result.MissingFields {
			if f == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing fields %v should include %q", result.MissingFields, want)
		}
	}
	// Without a date the formatter should steer toward availability.
	if len(result.SuggestedCalls) != 1 || !strings.HasPrefix(result.SuggestedCalls[0], "availability_check(") {
		t.Errorf("suggested calls = %v, want a single availability_check", result.SuggestedCalls)
	}
}

package skills

import (
	"context"
	"encoding/json"
	"fmt"

	"detailflow/models"
	"detailflow/services/scheduler"
)

// RegisterSchedulerTools wires the scheduling tools onto the registry.
func RegisterSchedulerTools(r *Registry, svc scheduler.SchedulerService) {
	r.Register(&ToolDef{
		Name:        "availability_check",
		Description: "List open and taken hour slots for a service over a date range (YYYY-MM-DD, inclusive).",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"from":{"type":"string"},"to":{"type":"string"},"serviceType":{"type":"string","enum":["full_detail","interior","exterior","coating","wash","other"]}},"required":["from","to","serviceType"]}`),
		Handler:     availabilityCheck(svc),
	})
	r.Register(&ToolDef{
		Name:        "time_suggest",
		Description: "Suggest up to five ranked appointment times from weekday, time-band and urgency preferences.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"customerName":{"type":"string"},"preferredWeekdays":{"type":"array","items":{"type":"string"}},"timeBand":{"type":"string","enum":["morning","afternoon","evening"]},"urgency":{"type":"string","enum":["asap","this_week","next_week","flexible"]},"serviceType":{"type":"string","enum":["full_detail","interior","exterior","coating","wash","other"]}},"required":["serviceType"]}`),
		Handler:     timeSuggest(svc),
	})
	r.Register(&ToolDef{
		Name:        "rebooking_compute",
		Description: "Compute the next maintenance date from the last service date and a frequency (weekly, biweekly, monthly, bimonthly, quarterly), with outreach message drafts.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"lastServiceDate":{"type":"string"},"frequency":{"type":"string","enum":["weekly","biweekly","monthly","bimonthly","quarterly"]}},"required":["lastServiceDate","frequency"]}`),
		Handler:     rebookingCompute(svc),
	})
	r.Register(&ToolDef{
		Name:        "confirmation_draft",
		Description: "Draft a booking confirmation message for the customer.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"customerName":{"type":"string"},"serviceType":{"type":"string","enum":["full_detail","interior","exterior","coating","wash","other"]},"date":{"type":"string"},"time":{"type":"string"},"price":{"type":"number"},"locationType":{"type":"string","enum":["wash_bay","customer_home"]}},"required":["customerName","serviceType","date","time"]}`),
		Handler:     confirmationDraft(svc),
	})
}

func availabilityCheck(svc scheduler.SchedulerService) ToolHandler {
	return func(ctx context.Context, input json.RawMessage) *ToolResult {
		var params struct {
			From        string `json:"from"`
			To          string `json:"to"`
			ServiceType string `json:"serviceType"`
		}
		if err := decode(input, &params); err != nil {
			return Errorf("%v", err)
		}
		serviceType, err := models.ParseServiceType(params.ServiceType)
		if err != nil {
			return Errorf("%v", err)
		}
		result, err := svc.CheckAvailability(ctx, params.From, params.To, serviceType)
		if err != nil {
			return Errorf("availability check failed: %v", err)
		}
		return OK(result.Message, result)
	}
}

func timeSuggest(svc scheduler.SchedulerService) ToolHandler {
	return func(ctx context.Context, input json.RawMessage) *ToolResult {
		var params struct {
			CustomerName      string   `json:"customerName"`
			PreferredWeekdays []string `json:"preferredWeekdays"`
			TimeBand          string   `json:"timeBand"`
			Urgency           string   `json:"urgency"`
			ServiceType       string   `json:"serviceType"`
		}
		if err := decode(input, &params); err != nil {
			return Errorf("%v", err)
		}
		serviceType, err := models.ParseServiceType(params.ServiceType)
		if err != nil {
			return Errorf("%v", err)
		}
		result, err := svc.SuggestTimes(ctx, scheduler.SuggestionRequest{
			CustomerName:      params.CustomerName,
			PreferredWeekdays: params.PreferredWeekdays,
			TimeBand:          params.TimeBand,
			Urgency:           params.Urgency,
			ServiceType:       serviceType,
		})
		if err != nil {
			return Errorf("suggestion failed: %v", err)
		}
		return OK(result.Message, result)
	}
}

func rebookingCompute(svc scheduler.SchedulerService) ToolHandler {
	return func(ctx context.Context, input json.RawMessage) *ToolResult {
		var params struct {
			LastServiceDate string `json:"lastServiceDate"`
			Frequency       string `json:"frequency"`
		}
		if err := decode(input, &params); err != nil {
			return Errorf("%v", err)
		}
		plan, err := svc.ComputeRebooking(params.LastServiceDate, params.Frequency)
		if err != nil {
			return Errorf("%v", err)
		}
		msg := fmt.Sprintf("Next service due %s.", plan.NextDate)
		if plan.Snapped {
			msg = fmt.Sprintf("Overdue; next service moved to %s.", plan.NextDate)
		}
		return OK(msg, plan)
	}
}

func confirmationDraft(svc scheduler.SchedulerService) ToolHandler {
	return func(ctx context.Context, input json.RawMessage) *ToolResult {
		var params struct {
			CustomerName string  `json:"customerName"`
			ServiceType  string  `json:"serviceType"`
			Date         string  `json:"date"`
			Time         string  `json:"time"`
			Price        float64 `json:"price"`
			LocationType string  `json:"locationType"`
		}
		if err := decode(input, &params); err != nil {
			return Errorf("%v", err)
		}
		serviceType, err := models.ParseServiceType(params.ServiceType)
		if err != nil {
			return Errorf("%v", err)
		}
		draft := svc.DraftConfirmation(params.CustomerName, models.Booking{
			ServiceType:  serviceType,
			Date:         params.Date,
			Time:         params.Time,
			Price:        params.Price,
			LocationType: models.LocationType(params.LocationType),
		})
		return OK(draft, map[string]string{"draft": draft})
	}
}

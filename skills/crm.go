package skills

import (
	"context"
	"encoding/json"
	"fmt"

	"detailflow/models"
	"detailflow/services/crm"
)

// RegisterCRMTools wires the record-management tools onto the registry.
func RegisterCRMTools(r *Registry, svc crm.CRMService) {
	r.Register(&ToolDef{
		Name:        "customer_create",
		Description: "Create a customer record. Name is required; priceTier defaults to standard.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"name":{"type":"string"},"phone":{"type":"string"},"address":{"type":"string"},"locationArea":{"type":"string"},"tags":{"type":"array","items":{"type":"string"}},"priceTier":{"type":"string","enum":["loyalty","referral","standard"]},"referralSource":{"type":"string"},"notes":{"type":"string"}},"required":["name"]}`),
		Handler:     customerCreate(svc),
	})
	r.Register(&ToolDef{
		Name:        "customer_update",
		Description: "Update fields on an existing customer by ID.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"customerId":{"type":"string"},"updates":{"type":"object"}},"required":["customerId","updates"]}`),
		Handler:     customerUpdate(svc),
	})
	r.Register(&ToolDef{
		Name:        "customer_search",
		Description: "Search customers by name or phone substring. Empty query lists recent customers.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"query":{"type":"string"}}}`),
		Handler:     customerSearch(svc),
	})
	r.Register(&ToolDef{
		Name:        "customer_history",
		Description: "Full history for one customer: record, vehicles, bookings, communications and revenue stats.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"customerId":{"type":"string"}},"required":["customerId"]}`),
		Handler:     customerHistory(svc),
	})
	r.Register(&ToolDef{
		Name:        "vehicle_add",
		Description: "Register a vehicle under an existing customer.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"customerId":{"type":"string"},"year":{"type":"integer"},"make":{"type":"string"},"model":{"type":"string"},"color":{"type":"string"},"nickname":{"type":"string"}},"required":["customerId","make","model"]}`),
		Handler:     vehicleAdd(svc),
	})
	r.Register(&ToolDef{
		Name:        "booking_create",
		Description: "Create a booking for an existing customer. Date is YYYY-MM-DD, time is HH:MM.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"customerId":{"type":"string"},"vehicleId":{"type":"string"},"serviceType":{"type":"string","enum":["full_detail","interior","exterior","coating","wash","other"]},"date":{"type":"string"},"time":{"type":"string"},"price":{"type":"number"},"tip":{"type":"number"},"locationType":{"type":"string","enum":["wash_bay","customer_home"]},"notes":{"type":"string"}},"required":["customerId","serviceType","date","time"]}`),
		Handler:     bookingCreate(svc),
	})
	r.Register(&ToolDef{
		Name:        "booking_update_status",
		Description: "Transition a booking's status. Completed updates the customer's last service date.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"bookingId":{"type":"string"},"status":{"type":"string","enum":["scheduled","confirmed","in_progress","completed","cancelled","no_show"]}},"required":["bookingId","status"]}`),
		Handler:     bookingUpdateStatus(svc),
	})
	r.Register(&ToolDef{
		Name:        "booking_list",
		Description: "List bookings for a customer, or recent bookings when no customer is given.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"customerId":{"type":"string"}}}`),
		Handler:     bookingList(svc),
	})
	r.Register(&ToolDef{
		Name:        "communication_log",
		Description: "Log a customer conversation with channel, direction, summary and action items.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"customerId":{"type":"string"},"channel":{"type":"string"},"direction":{"type":"string","enum":["inbound","outbound"]},"summary":{"type":"string"},"actionItems":{"type":"array","items":{"type":"string"}}},"required":["customerId","channel","direction","summary"]}`),
		Handler:     communicationLog(svc),
	})
}

func customerCreate(svc crm.CRMService) ToolHandler {
	return func(ctx context.Context, input json.RawMessage) *ToolResult {
		var params struct {
			Name           string   `json:"name"`
			Phone          string   `json:"phone"`
			Address        string   `json:"address"`
			LocationArea   string   `json:"locationArea"`
			Tags           []string `json:"tags"`
			PriceTier      string   `json:"priceTier"`
			ReferralSource string   `json:"referralSource"`
			Notes          string   `json:"notes"`
		}
		if err := decode(input, &params); err != nil {
			return Errorf("%v", err)
		}
		customer := models.Customer{
			Name:           params.Name,
			Phone:          params.Phone,
			Address:        params.Address,
			LocationArea:   params.LocationArea,
			Tags:           params.Tags,
			ReferralSource: params.ReferralSource,
			Notes:          params.Notes,
		}
		if params.PriceTier != "" {
			tier, err := models.ParsePriceTier(params.PriceTier)
			if err != nil {
				return Errorf("%v", err)
			}
			customer.PriceTier = tier
		}
		created, err := svc.CreateCustomer(ctx, customer)
		if err != nil {
			return Errorf("failed to create customer: %v", err)
		}
		return OK(fmt.Sprintf("Created customer %s (id %s).", created.Name, created.ID), created)
	}
}

func customerUpdate(svc crm.CRMService) ToolHandler {
	return func(ctx context.Context, input json.RawMessage) *ToolResult {
		var params struct {
			CustomerID string                 `json:"customerId"`
			Updates    map[string]interface{} `json:"updates"`
		}
		if err := decode(input, &params); err != nil {
			return Errorf("%v", err)
		}
		if len(params.Updates) == 0 {
			return Errorf("no updates given")
		}
		if raw, ok := params.Updates["priceTier"].(string); ok {
			if _, err := models.ParsePriceTier(raw); err != nil {
				return Errorf("%v", err)
			}
		}
		updated, err := svc.UpdateCustomer(ctx, params.CustomerID, params.Updates)
		if err != nil {
			return Errorf("failed to update customer: %v", err)
		}
		if updated == nil {
			return Errorf("no customer with id %s", params.CustomerID)
		}
		return OK(fmt.Sprintf("Updated customer %s.", updated.Name), updated)
	}
}

func customerSearch(svc crm.CRMService) ToolHandler {
	return func(ctx context.Context, input json.RawMessage) *ToolResult {
		var params struct {
			Query string `json:"query"`
		}
		if err := decode(input, &params); err != nil {
			return Errorf("%v", err)
		}
		matches, err := svc.SearchCustomers(ctx, params.Query)
		if err != nil {
			return Errorf("search failed: %v", err)
		}
		if len(matches) == 0 {
			return OK(fmt.Sprintf("No customers matching %q.", params.Query), matches)
		}
		return OK(fmt.Sprintf("Found %d customer(s).", len(matches)), matches)
	}
}

func customerHistory(svc crm.CRMService) ToolHandler {
	return func(ctx context.Context, input json.RawMessage) *ToolResult {
		var params struct {
			CustomerID string `json:"customerId"`
		}
		if err := decode(input, &params); err != nil {
			return Errorf("%v", err)
		}
		history, err := svc.CustomerHistory(ctx, params.CustomerID)
		if err != nil {
			return Errorf("failed to load history: %v", err)
		}
		if history == nil {
			return Errorf("no customer with id %s", params.CustomerID)
		}
		msg := fmt.Sprintf("%s: %d completed service(s), $%.2f lifetime revenue, $%.2f average ticket.",
			history.Customer.Name, history.Stats.CompletedCount, history.Stats.TotalRevenue, history.Stats.AverageTicket)
		return OK(msg, history)
	}
}

func vehicleAdd(svc crm.CRMService) ToolHandler {
	return func(ctx context.Context, input json.RawMessage) *ToolResult {
		var params struct {
			CustomerID string `json:"customerId"`
			Year       int    `json:"year"`
			Make       string `json:"make"`
			Model      string `json:"model"`
			Color      string `json:"color"`
			Nickname   string `json:"nickname"`
		}
		if err := decode(input, &params); err != nil {
			return Errorf("%v", err)
		}
		vehicle, err := svc.AddVehicle(ctx, models.Vehicle{
			CustomerID: params.CustomerID,
			Year:       params.Year,
			Make:       params.Make,
			Model:      params.Model,
			Color:      params.Color,
			Nickname:   params.Nickname,
		})
		if err != nil {
			return Errorf("failed to add vehicle: %v", err)
		}
		if vehicle == nil {
			return Errorf("no customer with id %s", params.CustomerID)
		}
		return OK(fmt.Sprintf("Added %d %s %s (id %s).", vehicle.Year, vehicle.Make, vehicle.Model, vehicle.ID), vehicle)
	}
}

func bookingCreate(svc crm.CRMService) ToolHandler {
	return func(ctx context.Context, input json.RawMessage) *ToolResult {
		var params struct {
			CustomerID   string  `json:"customerId"`
			VehicleID    string  `json:"vehicleId"`
			ServiceType  string  `json:"serviceType"`
			Date         string  `json:"date"`
			Time         string  `json:"time"`
			Price        float64 `json:"price"`
			Tip          float64 `json:"tip"`
			LocationType string  `json:"locationType"`
			Notes        string  `json:"notes"`
		}
		if err := decode(input, &params); err != nil {
			return Errorf("%v", err)
		}
		serviceType, err := models.ParseServiceType(params.ServiceType)
		if err != nil {
			return Errorf("%v", err)
		}
		booking := models.Booking{
			CustomerID:   params.CustomerID,
			VehicleID:    params.VehicleID,
			ServiceType:  serviceType,
			Date:         params.Date,
			Time:         params.Time,
			Price:        params.Price,
			Tip:          params.Tip,
			LocationType: models.LocationType(params.LocationType),
			Notes:        params.Notes,
		}
		created, err := svc.CreateBooking(ctx, booking)
		if err != nil {
			return Errorf("failed to create booking: %v", err)
		}
		if created == nil {
			return Errorf("no customer with id %s", params.CustomerID)
		}
		msg := fmt.Sprintf("Booked %s on %s at %s (id %s).", created.ServiceType, created.Date, created.Time, created.ID)
		return OK(msg, created)
	}
}

func bookingUpdateStatus(svc crm.CRMService) ToolHandler {
	return func(ctx context.Context, input json.RawMessage) *ToolResult {
		var params struct {
			BookingID string `json:"bookingId"`
			Status    string `json:"status"`
		}
		if err := decode(input, &params); err != nil {
			return Errorf("%v", err)
		}
		status, err := models.ParseBookingStatus(params.Status)
		if err != nil {
			return Errorf("%v", err)
		}
		booking, err := svc.UpdateBookingStatus(ctx, params.BookingID, status)
		if err != nil {
			return Errorf("failed to update booking: %v", err)
		}
		if booking == nil {
			return Errorf("no booking with id %s", params.BookingID)
		}
		return OK(fmt.Sprintf("Booking %s is now %s.", booking.ID, booking.Status), booking)
	}
}

func bookingList(svc crm.CRMService) ToolHandler {
	return func(ctx context.Context, input json.RawMessage) *ToolResult {
		var params struct {
			CustomerID string `json:"customerId"`
		}
		if err := decode(input, &params); err != nil {
			return Errorf("%v", err)
		}
		bookings, err := svc.ListBookings(ctx, params.CustomerID)
		if err != nil {
			return Errorf("failed to list bookings: %v", err)
		}
		return OK(fmt.Sprintf("Found %d booking(s).", len(bookings)), bookings)
	}
}

func communicationLog(svc crm.CRMService) ToolHandler {
	return func(ctx context.Context, input json.RawMessage) *ToolResult {
		var params struct {
			CustomerID  string   `json:"customerId"`
			Channel     string   `json:"channel"`
			Direction   string   `json:"direction"`
			Summary     string   `json:"summary"`
			ActionItems []string `json:"actionItems"`
		}
		if err := decode(input, &params); err != nil {
			return Errorf("%v", err)
		}
		comm, err := svc.LogCommunication(ctx, models.Communication{
			CustomerID:  params.CustomerID,
			Channel:     params.Channel,
			Direction:   params.Direction,
			Summary:     params.Summary,
			ActionItems: params.ActionItems,
		})
		if err != nil {
			return Errorf("failed to log communication: %v", err)
		}
		if comm == nil {
			return Errorf("no customer with id %s", params.CustomerID)
		}
		return OK(fmt.Sprintf("Logged %s %s message for customer %s.", params.Direction, params.Channel, params.CustomerID), comm)
	}
}

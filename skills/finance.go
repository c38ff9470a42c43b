package skills

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"detailflow/services/finance"
)

// RegisterFinanceTools wires the ledger tools onto the registry.
func RegisterFinanceTools(r *Registry, svc finance.FinanceService) {
	r.Register(&ToolDef{
		Name:        "finance_sync",
		Description: "Post a completed booking to the ledger as service revenue plus optional tip. Safe to retry.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"bookingId":{"type":"string"}},"required":["bookingId"]}`),
		Handler:     financeSync(svc),
	})
	r.Register(&ToolDef{
		Name:        "finance_sync_bulk",
		Description: "Sweep recent completed bookings that have not been posted to the ledger yet.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{}}`),
		Handler:     financeSyncBulk(svc),
	})
	r.Register(&ToolDef{
		Name:        "revenue_report",
		Description: "Revenue report over a date range (YYYY-MM-DD, inclusive): gross, net, tips, expenses, by service and customer.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"from":{"type":"string"},"to":{"type":"string"}},"required":["from","to"]}`),
		Handler:     revenueReport(svc),
	})
	r.Register(&ToolDef{
		Name:        "customer_value",
		Description: "Lifetime ledger income from one customer.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"customerId":{"type":"string"}},"required":["customerId"]}`),
		Handler:     customerValue(svc),
	})
	r.Register(&ToolDef{
		Name:        "deposit_link",
		Description: "Create a Stripe payment intent for a booking deposit. Amount defaults to a quarter of the quoted price.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"bookingId":{"type":"string"},"amount":{"type":"number"}},"required":["bookingId"]}`),
		Handler:     depositLink(svc),
	})
}

func financeSync(svc finance.FinanceService) ToolHandler {
	return func(ctx context.Context, input json.RawMessage) *ToolResult {
		var params struct {
			BookingID string `json:"bookingId"`
		}
		if err := decode(input, &params); err != nil {
			return Errorf("%v", err)
		}
		outcome, err := svc.SyncBooking(ctx, params.BookingID)
		if errors.Is(err, finance.ErrNotCompleted) {
			return Errorf("%v; mark it completed first", err)
		}
		if err != nil {
			return Errorf("sync failed: %v", err)
		}
		if outcome == nil {
			return Errorf("no booking with id %s", params.BookingID)
		}
		if outcome.AlreadySynced {
			return OK(fmt.Sprintf("Booking %s was already synced; nothing posted.", params.BookingID), outcome)
		}
		return OK(fmt.Sprintf("Posted %d transaction(s) for booking %s.", len(outcome.Posted), params.BookingID), outcome)
	}
}

func financeSyncBulk(svc finance.FinanceService) ToolHandler {
	return func(ctx context.Context, input json.RawMessage) *ToolResult {
		results, err := svc.SyncRecent(ctx)
		if err != nil {
			return Errorf("bulk sync failed: %v", err)
		}
		if len(results) == 0 {
			return OK("Nothing to sync; all recent completed bookings are posted.", results)
		}
		failed := 0
		for _, item := range results {
			if item.Error != "" {
				failed++
			}
		}
		return OK(fmt.Sprintf("Synced %d booking(s), %d failure(s).", len(results)-failed, failed), results)
	}
}

func revenueReport(svc finance.FinanceService) ToolHandler {
	return func(ctx context.Context, input json.RawMessage) *ToolResult {
		var params struct {
			From string `json:"from"`
			To   string `json:"to"`
		}
		if err := decode(input, &params); err != nil {
			return Errorf("%v", err)
		}
		report, err := svc.RevenueReport(ctx, params.From, params.To)
		if err != nil {
			return Errorf("report failed: %v", err)
		}
		msg := fmt.Sprintf("%s to %s: $%.2f gross ($%.2f services + $%.2f tips), $%.2f expenses, $%.2f net.",
			report.From, report.To, report.GrossIncome, report.ServiceRevenue, report.Tips, report.Expenses, report.NetIncome)
		return OK(msg, report)
	}
}

func customerValue(svc finance.FinanceService) ToolHandler {
	return func(ctx context.Context, input json.RawMessage) *ToolResult {
		var params struct {
			CustomerID string `json:"customerId"`
		}
		if err := decode(input, &params); err != nil {
			return Errorf("%v", err)
		}
		value, err := svc.CustomerValue(ctx, params.CustomerID)
		if err != nil {
			return Errorf("lookup failed: %v", err)
		}
		if value == nil {
			return Errorf("no customer with id %s", params.CustomerID)
		}
		msg := fmt.Sprintf("%s: $%.2f lifetime ($%.2f services + $%.2f tips) across %d transaction(s).",
			value.CustomerName, value.GrossIncome, value.ServiceRevenue, value.Tips, value.TransactionCount)
		return OK(msg, value)
	}
}

func depositLink(svc finance.FinanceService) ToolHandler {
	return func(ctx context.Context, input json.RawMessage) *ToolResult {
		var params struct {
			BookingID string  `json:"bookingId"`
			Amount    float64 `json:"amount"`
		}
		if err := decode(input, &params); err != nil {
			return Errorf("%v", err)
		}
		link, err := svc.CreateDepositLink(ctx, params.BookingID, params.Amount)
		if err != nil {
			return Errorf("deposit setup failed: %v", err)
		}
		if link == nil {
			return Errorf("no booking with id %s", params.BookingID)
		}
		return OK(fmt.Sprintf("Deposit of $%.2f ready for booking %s.", link.Amount, link.BookingID), link)
	}
}

package finance

import (
	"context"

	"detailflow/models"
)

// BuildRevenueReport folds a transaction set into a period report.
// Positive amounts are income, split into service revenue and tips by
// category; negative amounts are expenses. The report keeps the
// invariants gross = serviceRevenue + tips and net = gross - expenses.
func BuildRevenueReport(from, to string, txs []models.Transaction) models.RevenueReport {
	report := models.RevenueReport{
		From:       from,
		To:         to,
		ByService:  map[string]float64{},
		ByCustomer: map[string]float64{},
	}
	for _, tx := range txs {
		report.TransactionCount++
		if tx.Amount < 0 {
			report.Expenses += -tx.Amount
			continue
		}
		if tx.Category == tipCategory {
			report.Tips += tx.Amount
		} else {
			report.ServiceRevenue += tx.Amount
			if svc := tx.Metadata["serviceType"]; svc != "" {
				report.ByService[svc] += tx.Amount
			}
		}
		if tx.Entity != "" {
			report.ByCustomer[tx.Entity] += tx.Amount
		}
	}
	report.GrossIncome = report.ServiceRevenue + report.Tips
	report.NetIncome = report.GrossIncome - report.Expenses
	return report
}

// RevenueReport aggregates the ledger over [from, to] inclusive.
func (s *DefaultFinanceService) RevenueReport(ctx context.Context, from, to string) (*models.RevenueReport, error) {
	txs, err := s.Ledger.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	report := BuildRevenueReport(from, to, txs)
	return &report, nil
}

// BuildCustomerValue folds a customer's transactions into lifetime totals.
func BuildCustomerValue(customerID, customerName string, txs []models.Transaction) models.CustomerValue {
	value := models.CustomerValue{CustomerID: customerID, CustomerName: customerName}
	for _, tx := range txs {
		if tx.Amount < 0 {
			continue
		}
		value.TransactionCount++
		if tx.Category == tipCategory {
			value.Tips += tx.Amount
		} else {
			value.ServiceRevenue += tx.Amount
		}
		if value.FirstDate == "" || tx.Date < value.FirstDate {
			value.FirstDate = tx.Date
		}
		if tx.Date > value.LastDate {
			value.LastDate = tx.Date
		}
	}
	value.GrossIncome = value.ServiceRevenue + value.Tips
	return value
}

// CustomerValue sums a customer's lifetime ledger income. Nil result
// means the customer does not exist.
func (s *DefaultFinanceService) CustomerValue(ctx context.Context, customerID string) (*models.CustomerValue, error) {
	customer, err := s.Customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	txs, err := s.Ledger.FindByEntity(ctx, customer.Name)
	if err != nil {
		return nil, err
	}
	value := BuildCustomerValue(customerID, customer.Name, txs)
	return &value, nil
}

package crm

import (
	"context"
	"encoding/json"

	"detailflow/models"
	"detailflow/utils"

	"go.uber.org/zap"
)

// CustomerHistory assembles the denormalized aggregate for one customer:
// the record plus vehicles, bookings and communications, with revenue
// stats derived from completed bookings. The result is cached briefly in
// Redis since agents tend to re-read it within a conversation.
func (s *DefaultCRMService) CustomerHistory(ctx context.Context, customerID string) (*models.CustomerHistory, error) {
	logger := utils.GetLogger()

	if cached := s.readHistoryCache(ctx, customerID); cached != nil {
		return cached, nil
	}

	customer, err := s.Customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}

	vehicles, err := s.Vehicles.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	comms, err := s.Comms.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	history := &models.CustomerHistory{
		Customer:       *customer,
		Vehicles:       vehicles,
		Bookings:       bookings,
		Communications: comms,
		Stats:          DeriveStats(bookings),
	}

	s.writeHistoryCache(ctx, customerID, history)
	logger.Debug("assembled customer history",
		zap.String("customerId", customerID), zap.Int("bookings", len(bookings)))
	return history, nil
}

// DeriveStats sums completed bookings into revenue, tips and average ticket.
func DeriveStats(bookings []models.Booking) models.HistoryStats {
	var stats models.HistoryStats
	for _, b := range bookings {
		if b.Status != models.StatusCompleted {
			continue
		}
		stats.CompletedCount++
		stats.TotalRevenue += b.Price
		stats.TotalTips += b.Tip
	}
	if stats.CompletedCount > 0 {
		stats.AverageTicket = stats.TotalRevenue / float64(stats.CompletedCount)
	}
	return stats
}

func (s *DefaultCRMService) readHistoryCache(ctx context.Context, customerID string) *models.CustomerHistory {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, utils.HistoryCachePrefix+customerID).Bytes()
	if err != nil {
		return nil
	}
	var history models.CustomerHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil
	}
	return &history
}

func (s *DefaultCRMService) writeHistoryCache(ctx context.Context, customerID string, history *models.CustomerHistory) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(history)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, utils.HistoryCachePrefix+customerID, data, utils.HistoryCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache customer history",
			zap.String("customerId", customerID), zap.Error(err))
	}
}

func (s *DefaultCRMService) invalidateHistory(ctx context.Context, customerID string) {
	if s.Cache == nil {
		return
	}
	s.Cache.Del(ctx, utils.HistoryCachePrefix+customerID)
}

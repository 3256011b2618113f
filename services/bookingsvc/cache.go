package bookingsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"salonbook/utils"
)

const datesCacheTTL = 5 * time.Minute

// Cache keys carry a per-company epoch that booking writes bump, so
// stale availability-dates entries simply stop being addressed instead
// of needing a scan-and-delete.
func (s *DefaultBookingService) datesCacheKey(companyID, serviceID, staffID string) string {
	epoch := "0"
	if v, err := s.Cache.Get(context.Background(), "availepoch:"+companyID).Result(); err == nil {
		epoch = v
	}
	return fmt.Sprintf("availdates:%s:%s:%s:%s", companyID, serviceID, staffID, epoch)
}

func (s *DefaultBookingService) cachedDates(companyID, serviceID, staffID string) ([]string, bool) {
	if s.Cache == nil {
		return nil, false
	}
	data, err := s.Cache.Get(context.Background(), s.datesCacheKey(companyID, serviceID, staffID)).Bytes()
	if err != nil {
		return nil, false
	}
	var dates []string
	if err := json.Unmarshal(data, &dates); err != nil {
		return nil, false
	}
	return dates, true
}

func (s *DefaultBookingService) storeDates(companyID, serviceID, staffID string, dates []string) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(dates)
	if err != nil {
		return
	}
	key := s.datesCacheKey(companyID, serviceID, staffID)
	if err := s.Cache.Set(context.Background(), key, data, datesCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache available dates", zap.String("key", key), zap.Error(err))
	}
}

// bumpAvailabilityEpoch invalidates every cached dates entry for the
// company after a booking write.
func (s *DefaultBookingService) bumpAvailabilityEpoch(companyID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Incr(context.Background(), "availepoch:"+companyID).Err(); err != nil {
		utils.GetLogger().Warn("failed to bump availability epoch", zap.String("companyID", companyID), zap.Error(err))
	}
}

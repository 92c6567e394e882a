package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"concert-ticketing/internal/core/domain"
	"concert-ticketing/internal/core/ports"
)

const seatCacheTTL = 30 * time.Second

func seatCacheKey(scheduleID uuid.UUID) string {
	return fmt.Sprintf("seats:%s", scheduleID)
}

// SeatQueryService serves seat availability listings through a short-lived
// redis cache. Reservations invalidate the schedule's entry on success.
type SeatQueryService struct {
	seats ports.SeatRepository
	cache *redis.Client
	clock func() time.Time
	log   *zap.Logger
}

func NewSeatQueryService(seats ports.SeatRepository, cache *redis.Client, log *zap.Logger) *SeatQueryService {
	return &SeatQueryService{
		seats: seats,
		cache: cache,
		clock: time.Now,
		log:   log,
	}
}

// AvailableSeats returns the schedule's seats that are neither finally
// reserved nor under a valid hold.
func (s *SeatQueryService) AvailableSeats(ctx context.Context, scheduleID uuid.UUID) ([]domain.Seat, error) {
	key := seatCacheKey(scheduleID)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key).Result()
		if err == nil {
			var seats []domain.Seat
			if err := json.Unmarshal([]byte(cached), &seats); err == nil {
				return seats, nil
			}
			s.log.Warn("dropping undecodable seat cache entry", zap.String("key", key))
			_ = s.cache.Del(ctx, key).Err()
		} else if err != redis.Nil {
			s.log.Warn("seat cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	seats, err := s.seats.FindAvailableBySchedule(ctx, scheduleID, s.clock())
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(seats); err == nil {
			if err := s.cache.Set(ctx, key, encoded, seatCacheTTL).Err(); err != nil {
				s.log.Warn("seat cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}

	return seats, nil
}

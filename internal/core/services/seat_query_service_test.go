package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"concert-ticketing/internal/core/domain"
	"concert-ticketing/internal/core/ports/mocks"
	"concert-ticketing/internal/core/services"
)

func TestAvailableSeats_CacheMissFallsThroughAndPopulates(t *testing.T) {
	seatRepo := mocks.NewSeatRepository(t)
	cache, cacheMock := redismock.NewClientMock()

	svc := services.NewSeatQueryService(seatRepo, cache, zap.NewNop())

	scheduleID := uuid.New()
	key := fmt.Sprintf("seats:%s", scheduleID)
	seats := []domain.Seat{
		{ID: uuid.New(), ScheduleID: scheduleID, SeatNumber: 1, Price: 7000},
		{ID: uuid.New(), ScheduleID: scheduleID, SeatNumber: 2, Price: 7000},
	}
	encoded, err := json.Marshal(seats)
	assert.NoError(t, err)

	cacheMock.ExpectGet(key).RedisNil()
	cacheMock.ExpectSet(key, encoded, 30*time.Second).SetVal("OK")

	seatRepo.On("FindAvailableBySchedule", mock.Anything, scheduleID, mock.AnythingOfType("time.Time")).
		Return(seats, nil)

	got, err := svc.AvailableSeats(context.Background(), scheduleID)

	assert.NoError(t, err)
	assert.Equal(t, seats, got)
	assert.NoError(t, cacheMock.ExpectationsWereMet())
}

func TestAvailableSeats_CacheHitSkipsRepository(t *testing.T) {
	seatRepo := mocks.NewSeatRepository(t)
	cache, cacheMock := redismock.NewClientMock()

	svc := services.NewSeatQueryService(seatRepo, cache, zap.NewNop())

	scheduleID := uuid.New()
	key := fmt.Sprintf("seats:%s", scheduleID)
	seats := []domain.Seat{{ID: uuid.New(), ScheduleID: scheduleID, SeatNumber: 3, Price: 7000}}
	encoded, err := json.Marshal(seats)
	assert.NoError(t, err)

	cacheMock.ExpectGet(key).SetVal(string(encoded))

	got, err := svc.AvailableSeats(context.Background(), scheduleID)

	assert.NoError(t, err)
	assert.Equal(t, seats, got)
	seatRepo.AssertNotCalled(t, "FindAvailableBySchedule", mock.Anything, mock.Anything, mock.Anything)
	assert.NoError(t, cacheMock.ExpectationsWereMet())
}

func TestAvailableSeats_CacheErrorStillServesFromRepository(t *testing.T) {
	seatRepo := mocks.NewSeatRepository(t)
	cache, cacheMock := redismock.NewClientMock()

	svc := services.NewSeatQueryService(seatRepo, cache, zap.NewNop())

	scheduleID := uuid.New()
	key := fmt.Sprintf("seats:%s", scheduleID)
	seats := []domain.Seat{{ID: uuid.New(), ScheduleID: scheduleID, SeatNumber: 4, Price: 7000}}
	encoded, err := json.Marshal(seats)
	assert.NoError(t, err)

	cacheMock.ExpectGet(key).SetErr(assert.AnError)
	cacheMock.ExpectSet(key, encoded, 30*time.Second).SetVal("OK")

	seatRepo.On("FindAvailableBySchedule", mock.Anything, scheduleID, mock.AnythingOfType("time.Time")).
		Return(seats, nil)

	got, err := svc.AvailableSeats(context.Background(), scheduleID)

	assert.NoError(t, err)
	assert.Equal(t, seats, got)
}

func TestAvailableSeats_UndecodableCacheEntryDropped(t *testing.T) {
	seatRepo := mocks.NewSeatRepository(t)
	cache, cacheMock := redismock.NewClientMock()

	svc := services.NewSeatQueryService(seatRepo, cache, zap.NewNop())

	scheduleID := uuid.New()
	key := fmt.Sprintf("seats:%s", scheduleID)
	seats := []domain.Seat{}
	encoded, err := json.Marshal(seats)
	assert.NoError(t, err)

	cacheMock.ExpectGet(key).SetVal("not json")
	cacheMock.ExpectDel(key).SetVal(1)
	cacheMock.ExpectSet(key, encoded, 30*time.Second).SetVal("OK")

	seatRepo.On("FindAvailableBySchedule", mock.Anything, scheduleID, mock.AnythingOfType("time.Time")).
		Return(seats, nil)

	got, err := svc.AvailableSeats(context.Background(), scheduleID)

	assert.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, cacheMock.ExpectationsWereMet())
}

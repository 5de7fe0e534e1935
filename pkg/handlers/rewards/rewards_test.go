package rewards

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/snapbite/coin-ledger/pkg/api"
	"github.com/snapbite/coin-ledger/pkg/ledger"
	"github.com/snapbite/coin-ledger/pkg/ledger/mocks"
	"github.com/snapbite/coin-ledger/pkg/models"
	"github.com/snapbite/coin-ledger/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func applyResult(amount, newBalance int64) *ledger.ApplyResult {
	return &ledger.ApplyResult{
		Transaction: &models.Transaction{ID: "entry-1", Amount: amount, Kind: models.ScanReward},
		NewBalance:  newBalance,
	}
}

func TestScanReward(t *testing.T) {
	body := api.ScanReward{UserId: "user-1", ScanEventId: "event-1", FoodName: "Apple"}

	t.Run("Success", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("AwardScan", mock.Anything, "user-1", "event-1", "Apple").Return(applyResult(1, 11), nil)

		handler := NewRewardsHandler(mockService)
		raw, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/rewards/scan", bytes.NewReader(raw))
		rr := httptest.NewRecorder()

		handler.ScanReward(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp api.Reward
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, int64(11), resp.NewBalance)
		mockService.AssertExpectations(t)
	})

	t.Run("Duplicate Scan Event", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("AwardScan", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, storage.ErrDuplicateIdempotencyKey)

		handler := NewRewardsHandler(mockService)
		raw, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/rewards/scan", bytes.NewReader(raw))
		rr := httptest.NewRecorder()

		handler.ScanReward(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Missing Event Id", func(t *testing.T) {
		mockService := new(mocks.Service)
		handler := NewRewardsHandler(mockService)

		raw, _ := json.Marshal(api.ScanReward{UserId: "user-1"})
		req := httptest.NewRequest(http.MethodPost, "/rewards/scan", bytes.NewReader(raw))
		rr := httptest.NewRecorder()

		handler.ScanReward(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "AwardScan", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Account Not Found", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("AwardScan", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, storage.ErrAccountNotFound)

		handler := NewRewardsHandler(mockService)
		raw, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/rewards/scan", bytes.NewReader(raw))
		rr := httptest.NewRecorder()

		handler.ScanReward(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestDailyBonus(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("AwardDailyBonus", mock.Anything, "user-1", now).Return(applyResult(5, 15), nil)

		handler := NewRewardsHandler(mockService)
		handler.Now = func() time.Time { return now }

		raw, _ := json.Marshal(api.DailyBonus{UserId: "user-1"})
		req := httptest.NewRequest(http.MethodPost, "/rewards/daily", bytes.NewReader(raw))
		rr := httptest.NewRecorder()

		handler.DailyBonus(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp api.Reward
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, int64(15), resp.NewBalance)
		mockService.AssertExpectations(t)
	})

	t.Run("Already Claimed Today", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("AwardDailyBonus", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, storage.ErrDuplicateIdempotencyKey)

		handler := NewRewardsHandler(mockService)
		raw, _ := json.Marshal(api.DailyBonus{UserId: "user-1"})
		req := httptest.NewRequest(http.MethodPost, "/rewards/daily", bytes.NewReader(raw))
		rr := httptest.NewRecorder()

		handler.DailyBonus(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockService.AssertExpectations(t)
	})
}

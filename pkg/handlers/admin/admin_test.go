package admin

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/snapbite/coin-ledger/pkg/api"
	"github.com/snapbite/coin-ledger/pkg/ledger"
	ledgermocks "github.com/snapbite/coin-ledger/pkg/ledger/mocks"
	"github.com/snapbite/coin-ledger/pkg/models"
	"github.com/snapbite/coin-ledger/pkg/storage"
	"github.com/snapbite/coin-ledger/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func postAdjust(t *testing.T, handler *AdminHandler, body api.CoinAdjustment) *httptest.ResponseRecorder {
	t.Helper()
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/admin/users/coins/adjust", bytes.NewReader(raw))
	rr := httptest.NewRecorder()
	handler.AdjustCoins(rr, req)
	return rr
}

func TestAdjustCoins(t *testing.T) {
	adjustment := api.CoinAdjustment{UserId: "user-1", Amount: -50, Reason: "fraud rollback", AdminId: "admin-1"}

	t.Run("Success", func(t *testing.T) {
		mockService := new(ledgermocks.Service)
		result := &ledger.AdjustResult{PreviousBalance: 80, NewBalance: 30, Applied: -50}
		mockService.On("AdminAdjust", mock.Anything, "user-1", int64(-50), "fraud rollback", "admin-1").Return(result, nil)

		rr := postAdjust(t, NewAdminHandler(mockService, nil), adjustment)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp api.CoinAdjustmentResult
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, int64(80), resp.PreviousBalance)
		assert.Equal(t, int64(30), resp.NewBalance)
		assert.Equal(t, int64(-50), resp.Applied)
		mockService.AssertExpectations(t)
	})

	t.Run("Missing Reason", func(t *testing.T) {
		mockService := new(ledgermocks.Service)
		invalid := api.CoinAdjustment{UserId: "user-1", Amount: -50, AdminId: "admin-1"}

		rr := postAdjust(t, NewAdminHandler(mockService, nil), invalid)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "AdminAdjust", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Account Not Found", func(t *testing.T) {
		mockService := new(ledgermocks.Service)
		mockService.On("AdminAdjust", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, storage.ErrAccountNotFound)

		rr := postAdjust(t, NewAdminHandler(mockService, nil), adjustment)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Contention Exhausted", func(t *testing.T) {
		mockService := new(ledgermocks.Service)
		mockService.On("AdminAdjust", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, storage.ErrConcurrentModification)

		rr := postAdjust(t, NewAdminHandler(mockService, nil), adjustment)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestGetAdjustmentHistory(t *testing.T) {
	records := []models.AuditRecord{
		{ID: "audit-1", AdminID: "admin-1", UserID: "user-1", Amount: -50, Timestamp: time.Now().UTC()},
	}

	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("ListAuditRecords", mock.Anything, int32(50)).Return(records, nil)

		handler := NewAdminHandler(nil, mockStorage)
		req := httptest.NewRequest(http.MethodGet, "/admin/users/coins/history", nil)
		rr := httptest.NewRecorder()

		handler.GetAdjustmentHistory(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []api.AuditRecord
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, "admin-1", resp[0].AdminId)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Invalid Limit", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		handler := NewAdminHandler(nil, mockStorage)
		req := httptest.NewRequest(http.MethodGet, "/admin/users/coins/history?limit=-1", nil)
		rr := httptest.NewRecorder()

		handler.GetAdjustmentHistory(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertNotCalled(t, "ListAuditRecords", mock.Anything, mock.Anything)
	})
}

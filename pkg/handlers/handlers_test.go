package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/snapbite/coin-ledger/pkg/api"
	"github.com/snapbite/coin-ledger/pkg/config"
	"github.com/snapbite/coin-ledger/pkg/ledger"
	"github.com/snapbite/coin-ledger/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
)

// TestRouter drives a few flows end to end through the chi router against the
// in-memory store, checking the route wiring rather than handler internals.
func TestRouter(t *testing.T) {
	store := memory.New()
	engine := ledger.New(store, nil, config.Rewards{ScanReward: 1, DailyBonus: 5, ReferralBonus: 10, ApplyMaxAttempts: 3},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	router := NewRouter(store, engine)

	post := func(t *testing.T, path string, payload any) *httptest.ResponseRecorder {
		t.Helper()
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}
	get := func(t *testing.T, path string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	t.Run("Account Lifecycle", func(t *testing.T) {
		rr := post(t, "/accounts", api.NewAccount{UserId: "user-1", Phone: "+15550001111", Name: "Test User"})
		assert.Equal(t, http.StatusCreated, rr.Code)

		rr = post(t, "/rewards/scan", api.ScanReward{UserId: "user-1", ScanEventId: "event-1", FoodName: "Apple"})
		assert.Equal(t, http.StatusCreated, rr.Code)

		rr = get(t, "/coins/user-1/balance")
		assert.Equal(t, http.StatusOK, rr.Code)
		var balance api.Balance
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&balance))
		assert.Equal(t, int64(1), balance.Balance)

		rr = get(t, "/coins/user-1/history")
		assert.Equal(t, http.StatusOK, rr.Code)
		var history []api.Transaction
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&history))
		assert.Len(t, history, 1)
	})

	t.Run("Transfer Between Accounts", func(t *testing.T) {
		rr := post(t, "/accounts", api.NewAccount{UserId: "user-2", Phone: "+15550002222"})
		assert.Equal(t, http.StatusCreated, rr.Code)

		rr = post(t, "/transfers", api.NewTransfer{SenderId: "user-1", ReceiverPhone: "+15550002222", Amount: 1})
		assert.Equal(t, http.StatusCreated, rr.Code)

		var result api.TransferResult
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&result))
		assert.Equal(t, int64(0), result.SenderBalance)
		assert.Equal(t, int64(1), result.ReceiverBalance)
	})

	t.Run("Invalid UUID Param", func(t *testing.T) {
		rr := post(t, "/referrals/not-a-uuid/redeem", api.RedeemReferral{NewUserId: "user-2"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Unknown Account Balance", func(t *testing.T) {
		rr := get(t, "/coins/nobody/balance")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

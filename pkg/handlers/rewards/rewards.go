package rewards

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/snapbite/coin-ledger/pkg/api"
	"github.com/snapbite/coin-ledger/pkg/ledger"
	"github.com/snapbite/coin-ledger/pkg/mapping"
	"github.com/snapbite/coin-ledger/pkg/storage"
)

// RewardsHandler holds the dependencies for reward-related handlers.
type RewardsHandler struct {
	Ledger ledger.Service
	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

// NewRewardsHandler creates a new RewardsHandler.
func NewRewardsHandler(svc ledger.Service) *RewardsHandler {
	return &RewardsHandler{Ledger: svc, Now: time.Now}
}

// ScanReward handles the coin payout for a completed scan.
func (h *RewardsHandler) ScanReward(w http.ResponseWriter, r *http.Request) {
	var req api.ScanReward
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := api.Validate(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.Ledger.AwardScan(r.Context(), req.UserId, req.ScanEventId, req.FoodName)
	if err != nil {
		h.writeRewardError(w, err)
		return
	}

	h.writeReward(w, result)
}

// DailyBonus handles the daily login bonus payout.
func (h *RewardsHandler) DailyBonus(w http.ResponseWriter, r *http.Request) {
	var req api.DailyBonus
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := api.Validate(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.Ledger.AwardDailyBonus(r.Context(), req.UserId, h.Now())
	if err != nil {
		h.writeRewardError(w, err)
		return
	}

	h.writeReward(w, result)
}

func (h *RewardsHandler) writeReward(w http.ResponseWriter, result *ledger.ApplyResult) {
	apiReward := mapping.ToApiReward(result)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(apiReward); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

func (h *RewardsHandler) writeRewardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrAccountNotFound):
		http.Error(w, "Account not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrDuplicateIdempotencyKey):
		http.Error(w, "Reward already granted for this event", http.StatusConflict)
	case errors.Is(err, storage.ErrConcurrentModification):
		http.Error(w, "Account is busy, please try again", http.StatusServiceUnavailable)
	default:
		http.Error(w, fmt.Sprintf("Failed to grant reward: %v", err), http.StatusInternalServerError)
	}
}

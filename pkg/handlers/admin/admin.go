package admin

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/snapbite/coin-ledger/pkg/api"
	"github.com/snapbite/coin-ledger/pkg/ledger"
	"github.com/snapbite/coin-ledger/pkg/mapping"
	"github.com/snapbite/coin-ledger/pkg/storage"
)

// AdminHandler holds the dependencies for admin-panel handlers.
type AdminHandler struct {
	Ledger ledger.Service
	Store  storage.AuditStore
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc ledger.Service, store storage.AuditStore) *AdminHandler {
	return &AdminHandler{Ledger: svc, Store: store}
}

// AdjustCoins handles a manual signed balance correction.
func (h *AdminHandler) AdjustCoins(w http.ResponseWriter, r *http.Request) {
	var req api.CoinAdjustment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := api.Validate(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.Ledger.AdminAdjust(r.Context(), req.UserId, req.Amount, req.Reason, req.AdminId)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAccountNotFound):
			http.Error(w, "Account not found", http.StatusNotFound)
		case errors.Is(err, ledger.ErrInvalidAmount):
			http.Error(w, "Adjustment amount must be non-zero", http.StatusBadRequest)
		case errors.Is(err, storage.ErrConcurrentModification):
			http.Error(w, "Account is busy, please try again", http.StatusServiceUnavailable)
		default:
			http.Error(w, fmt.Sprintf("Failed to adjust coins: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiResult := api.CoinAdjustmentResult{
		PreviousBalance: result.PreviousBalance,
		NewBalance:      result.NewBalance,
		Applied:         result.Applied,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiResult); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetAdjustmentHistory handles the logic for listing recent audit records.
func (h *AdminHandler) GetAdjustmentHistory(w http.ResponseWriter, r *http.Request) {
	limit := int32(50)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed < 0 {
			http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = int32(parsed)
	}

	domainRecords, err := h.Store.ListAuditRecords(r.Context(), limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve audit records: %v", err), http.StatusInternalServerError)
		return
	}

	apiRecords := make([]*api.AuditRecord, len(domainRecords))
	for i, record := range domainRecords {
		apiRecords[i] = mapping.ToApiAuditRecord(&record)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiRecords); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

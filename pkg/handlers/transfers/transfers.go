package transfers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/snapbite/coin-ledger/pkg/api"
	"github.com/snapbite/coin-ledger/pkg/ledger"
	"github.com/snapbite/coin-ledger/pkg/mapping"
	"github.com/snapbite/coin-ledger/pkg/storage"
)

// TransfersHandler holds the dependencies for transfer-related handlers.
type TransfersHandler struct {
	Ledger ledger.Service
}

// NewTransfersHandler creates a new TransfersHandler.
func NewTransfersHandler(svc ledger.Service) *TransfersHandler {
	return &TransfersHandler{Ledger: svc}
}

// CreateTransfer handles the logic for a phone-addressed coin transfer.
func (h *TransfersHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	var newTransfer api.NewTransfer
	if err := json.NewDecoder(r.Body).Decode(&newTransfer); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := api.Validate(&newTransfer); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.Ledger.Transfer(r.Context(), newTransfer.SenderId, newTransfer.ReceiverPhone, newTransfer.Amount)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInsufficientBalance):
			http.Error(w, "Insufficient balance", http.StatusUnprocessableEntity)
		case errors.Is(err, storage.ErrAccountNotFound):
			http.Error(w, "Account not found", http.StatusNotFound)
		case errors.Is(err, ledger.ErrTransferToSelf):
			http.Error(w, "Cannot transfer to yourself", http.StatusBadRequest)
		case errors.Is(err, ledger.ErrInvalidAmount):
			http.Error(w, "Transfer amount must be positive", http.StatusBadRequest)
		case errors.Is(err, storage.ErrConcurrentModification):
			http.Error(w, "Account is busy, please try again", http.StatusServiceUnavailable)
		default:
			http.Error(w, fmt.Sprintf("Failed to transfer coins: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiResult := mapping.ToApiTransferResult(result)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(apiResult); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

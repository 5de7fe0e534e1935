package referrals

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/snapbite/coin-ledger/pkg/api"
	"github.com/snapbite/coin-ledger/pkg/ledger"
	"github.com/snapbite/coin-ledger/pkg/mapping"
	"github.com/snapbite/coin-ledger/pkg/models"
	"github.com/snapbite/coin-ledger/pkg/storage"
)

// ReferralsHandler holds the dependencies for referral-related handlers.
type ReferralsHandler struct {
	Store  storage.ReferralStore
	Ledger ledger.Service
}

// NewReferralsHandler creates a new ReferralsHandler.
func NewReferralsHandler(store storage.ReferralStore, svc ledger.Service) *ReferralsHandler {
	return &ReferralsHandler{Store: store, Ledger: svc}
}

// SendReferrals handles bulk referral creation. Phones the referrer already
// referred are silently skipped, matching the invite flow in the mobile client.
func (h *ReferralsHandler) SendReferrals(w http.ResponseWriter, r *http.Request) {
	var req api.NewReferrals
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := api.Validate(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	created := make([]api.Referral, 0, len(req.PhoneNumbers))
	for _, phone := range req.PhoneNumbers {
		referral, err := h.Store.CreateReferral(r.Context(), &models.Referral{
			ID:            uuid.New().String(),
			ReferrerID:    req.UserId,
			ReferredPhone: phone,
		})
		if err != nil {
			if errors.Is(err, storage.ErrReferralExists) {
				continue
			}
			http.Error(w, fmt.Sprintf("Failed to create referral: %v", err), http.StatusInternalServerError)
			return
		}
		created = append(created, *mapping.ToApiReferral(referral))
	}

	result := api.SendReferralsResult{
		Message:   fmt.Sprintf("Referrals sent to %d contacts", len(created)),
		Referrals: created,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListReferrals handles the logic for retrieving a user's referral history.
func (h *ReferralsHandler) ListReferrals(w http.ResponseWriter, r *http.Request, userId string) {
	domainReferrals, err := h.Store.ListReferralsByReferrer(r.Context(), userId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve referrals: %v", err), http.StatusInternalServerError)
		return
	}

	apiReferrals := make([]*api.Referral, len(domainReferrals))
	for i, referral := range domainReferrals {
		apiReferrals[i] = mapping.ToApiReferral(&referral)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiReferrals); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetStats handles the logic for a user's referral statistics.
func (h *ReferralsHandler) GetStats(w http.ResponseWriter, r *http.Request, userId string) {
	domainReferrals, err := h.Store.ListReferralsByReferrer(r.Context(), userId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve referrals: %v", err), http.StatusInternalServerError)
		return
	}

	var stats models.ReferralStats
	stats.Total = len(domainReferrals)
	for _, referral := range domainReferrals {
		switch referral.Status {
		case models.ReferralPending:
			stats.Pending++
		case models.ReferralAccepted:
			stats.Accepted++
		case models.ReferralRegistered:
			stats.Registered++
		case models.ReferralRedeemed:
			stats.Redeemed++
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// RegisterReferral links a referred phone number to its newly registered user.
func (h *ReferralsHandler) RegisterReferral(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterReferral
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := api.Validate(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	referral, err := h.Store.RegisterReferral(r.Context(), req.Phone, req.UserId)
	if err != nil {
		if errors.Is(err, storage.ErrReferralNotFound) {
			http.Error(w, "No pending referral for this phone", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to register referral: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiReferral := mapping.ToApiReferral(referral)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiReferral); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// RedeemReferral pays out the bonus for a registered referral.
func (h *ReferralsHandler) RedeemReferral(w http.ResponseWriter, r *http.Request, referralId openapi_types.UUID) {
	var req api.RedeemReferral
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := api.Validate(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.Ledger.AwardReferralBonus(r.Context(), referralId.String(), req.NewUserId)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrReferralNotFound):
			http.Error(w, "Referral not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrReferralAlreadyRedeemed):
			http.Error(w, "Referral already redeemed", http.StatusConflict)
		case errors.Is(err, storage.ErrAccountNotFound):
			http.Error(w, "Account not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrConcurrentModification):
			http.Error(w, "Account is busy, please try again", http.StatusServiceUnavailable)
		default:
			http.Error(w, fmt.Sprintf("Failed to redeem referral: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiResult := api.RedeemReferralResult{
		ReferralId:    result.ReferralID,
		CorrelationId: result.CorrelationID,
		Amount:        result.Amount,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiResult); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// Package handlers assembles the HTTP surface of the coin ledger service.
// Each resource has its own subpackage; this package wires them onto one
// chi router and takes care of path parameter parsing.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/snapbite/coin-ledger/pkg/handlers/accounts"
	"github.com/snapbite/coin-ledger/pkg/handlers/admin"
	"github.com/snapbite/coin-ledger/pkg/handlers/referrals"
	"github.com/snapbite/coin-ledger/pkg/handlers/rewards"
	"github.com/snapbite/coin-ledger/pkg/handlers/transfers"
	"github.com/snapbite/coin-ledger/pkg/ledger"
	"github.com/snapbite/coin-ledger/pkg/storage"
)

// NewRouter builds the service router on top of the given storage and ledger
// service. Middleware is attached by the caller.
func NewRouter(store storage.Storage, svc ledger.Service) chi.Router {
	accountsHandler := accounts.NewAccountsHandler(store)
	transfersHandler := transfers.NewTransfersHandler(svc)
	rewardsHandler := rewards.NewRewardsHandler(svc)
	referralsHandler := referrals.NewReferralsHandler(store, svc)
	adminHandler := admin.NewAdminHandler(svc, store)

	r := chi.NewRouter()

	r.Post("/accounts", accountsHandler.CreateAccount)
	r.Get("/accounts", accountsHandler.ListAccounts)

	r.Get("/coins/{userId}/balance", func(w http.ResponseWriter, req *http.Request) {
		accountsHandler.GetBalance(w, req, chi.URLParam(req, "userId"))
	})
	r.Get("/coins/{userId}/history", func(w http.ResponseWriter, req *http.Request) {
		accountsHandler.GetHistory(w, req, chi.URLParam(req, "userId"))
	})
	r.Get("/coins/{userId}/transactions/{entryId}", func(w http.ResponseWriter, req *http.Request) {
		entryId, ok := parseUUIDParam(w, req, "entryId")
		if !ok {
			return
		}
		accountsHandler.GetTransactionById(w, req, chi.URLParam(req, "userId"), entryId)
	})

	r.Post("/transfers", transfersHandler.CreateTransfer)

	r.Post("/rewards/scan", rewardsHandler.ScanReward)
	r.Post("/rewards/daily", rewardsHandler.DailyBonus)

	r.Post("/referrals/send", referralsHandler.SendReferrals)
	r.Post("/referrals/register", referralsHandler.RegisterReferral)
	r.Get("/referrals/{userId}", func(w http.ResponseWriter, req *http.Request) {
		referralsHandler.ListReferrals(w, req, chi.URLParam(req, "userId"))
	})
	r.Get("/referrals/{userId}/stats", func(w http.ResponseWriter, req *http.Request) {
		referralsHandler.GetStats(w, req, chi.URLParam(req, "userId"))
	})
	r.Post("/referrals/{referralId}/redeem", func(w http.ResponseWriter, req *http.Request) {
		referralId, ok := parseUUIDParam(w, req, "referralId")
		if !ok {
			return
		}
		referralsHandler.RedeemReferral(w, req, referralId)
	})

	r.Post("/admin/users/coins/adjust", adminHandler.AdjustCoins)
	r.Get("/admin/users/coins/history", adminHandler.GetAdjustmentHistory)

	return r
}

// parseUUIDParam parses a UUID path parameter, writing a 400 on failure.
func parseUUIDParam(w http.ResponseWriter, r *http.Request, name string) (openapi_types.UUID, bool) {
	parsed, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		http.Error(w, "Invalid "+name+" parameter", http.StatusBadRequest)
		return openapi_types.UUID{}, false
	}
	return openapi_types.UUID(parsed), true
}

package mapping

import (
	"github.com/snapbite/coin-ledger/pkg/api"
	"github.com/snapbite/coin-ledger/pkg/ledger"
	"github.com/snapbite/coin-ledger/pkg/models"
)

// ToDomainNewAccount converts an API NewAccount to a domain Account.
// Balance and version are set by the storage layer.
func ToDomainNewAccount(newAccount *api.NewAccount) *models.Account {
	return &models.Account{
		ID:    newAccount.UserId,
		Phone: newAccount.Phone,
		Name:  newAccount.Name,
	}
}

// ToApiAccount converts a domain Account to an API Account.
func ToApiAccount(account *models.Account) *api.Account {
	return &api.Account{
		Id:        account.ID,
		Phone:     account.Phone,
		Name:      account.Name,
		Balance:   account.Balance,
		Version:   account.Version,
		CreatedAt: account.CreatedAt,
	}
}

// ToApiTransaction converts a domain ledger entry to an API Transaction.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	return &api.Transaction{
		Id:             tx.ID,
		AccountId:      tx.AccountID,
		Amount:         tx.Amount,
		Kind:           string(tx.Kind),
		CorrelationId:  tx.CorrelationID,
		IdempotencyKey: tx.IdempotencyKey,
		Description:    tx.Description,
		CreatedAt:      tx.CreatedAt,
	}
}

// ToApiReferral converts a domain Referral to an API Referral.
func ToApiReferral(referral *models.Referral) *api.Referral {
	return &api.Referral{
		Id:             referral.ID,
		ReferrerId:     referral.ReferrerID,
		ReferredPhone:  referral.ReferredPhone,
		ReferredUserId: referral.ReferredUserID,
		Status:         string(referral.Status),
		CreatedAt:      referral.CreatedAt,
	}
}

// ToApiAuditRecord converts a domain AuditRecord to its API representation.
func ToApiAuditRecord(record *models.AuditRecord) *api.AuditRecord {
	return &api.AuditRecord{
		Id:              record.ID,
		AdminId:         record.AdminID,
		UserId:          record.UserID,
		Amount:          record.Amount,
		Reason:          record.Reason,
		PreviousBalance: record.PreviousBalance,
		NewBalance:      record.NewBalance,
		Timestamp:       record.Timestamp,
	}
}

// ToApiTransferResult converts a domain transfer result to its API representation.
func ToApiTransferResult(result *ledger.TransferResult) *api.TransferResult {
	return &api.TransferResult{
		CorrelationId:   result.CorrelationID,
		SenderBalance:   result.SenderBalance,
		ReceiverBalance: result.ReceiverBalance,
	}
}

// ToApiReward converts an apply result to the reward response shape.
func ToApiReward(result *ledger.ApplyResult) *api.Reward {
	return &api.Reward{
		TransactionId: result.Transaction.ID,
		Amount:        result.Transaction.Amount,
		NewBalance:    result.NewBalance,
	}
}

package config

import (
	"github.com/spf13/viper"
)

// Rewards holds the coin amounts paid by the reward pipeline and the bound on
// optimistic-concurrency retries. The source of truth is configuration, never
// a literal in the engine.
type Rewards struct {
	ScanReward       int64
	DailyBonus       int64
	ReferralBonus    int64
	ApplyMaxAttempts int
}

// Config holds all service configuration, bound from the environment.
type Config struct {
	HTTPPort string

	AccountsTable  string
	LedgerTable    string
	ReferralsTable string
	AuditTable     string

	AuditQueueURL string

	Rewards Rewards
}

// Load reads configuration from the environment (with .env overrides already
// loaded by the caller) and applies defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.BindEnv("http.port", "HTTP_PORT")
	v.BindEnv("dynamodb.accounts_table", "DYNAMODB_ACCOUNTS_TABLE_NAME")
	v.BindEnv("dynamodb.ledger_table", "DYNAMODB_LEDGER_TABLE_NAME")
	v.BindEnv("dynamodb.referrals_table", "DYNAMODB_REFERRALS_TABLE_NAME")
	v.BindEnv("dynamodb.audit_table", "DYNAMODB_AUDIT_TABLE_NAME")
	v.BindEnv("audit.queue_url", "AUDIT_QUEUE_URL")
	v.BindEnv("rewards.scan", "SCAN_REWARD_COINS")
	v.BindEnv("rewards.daily", "DAILY_BONUS_COINS")
	v.BindEnv("rewards.referral", "REFERRAL_BONUS_COINS")
	v.BindEnv("rewards.apply_max_attempts", "APPLY_MAX_ATTEMPTS")

	v.SetDefault("http.port", "8080")
	v.SetDefault("dynamodb.accounts_table", "coin-accounts")
	v.SetDefault("dynamodb.ledger_table", "coin-ledger")
	v.SetDefault("dynamodb.referrals_table", "coin-referrals")
	v.SetDefault("dynamodb.audit_table", "coin-audit")
	v.SetDefault("rewards.scan", 1)
	v.SetDefault("rewards.daily", 5)
	v.SetDefault("rewards.referral", 10)
	v.SetDefault("rewards.apply_max_attempts", 3)

	return &Config{
		HTTPPort:       v.GetString("http.port"),
		AccountsTable:  v.GetString("dynamodb.accounts_table"),
		LedgerTable:    v.GetString("dynamodb.ledger_table"),
		ReferralsTable: v.GetString("dynamodb.referrals_table"),
		AuditTable:     v.GetString("dynamodb.audit_table"),
		AuditQueueURL:  v.GetString("audit.queue_url"),
		Rewards: Rewards{
			ScanReward:       v.GetInt64("rewards.scan"),
			DailyBonus:       v.GetInt64("rewards.daily"),
			ReferralBonus:    v.GetInt64("rewards.referral"),
			ApplyMaxAttempts: v.GetInt("rewards.apply_max_attempts"),
		},
	}, nil
}

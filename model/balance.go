package model

import "time"

// CreateBalanceRequest is the body for creating a ledger balance.
type CreateBalanceRequest struct {
	LedgerID   string   `json:"ledger_id"`
	IdentityID string   `json:"identity_id,omitempty"`
	Currency   string   `json:"currency"`
	MetaData   Metadata `json:"meta_data,omitempty"`
}

// Balance is a ledger balance as returned by the server. Monetary fields are
// integer amounts in the smallest unit implied by Precision.
type Balance struct {
	BalanceID             string    `json:"balance_id"`
	LedgerID              string    `json:"ledger_id"`
	IdentityID            string    `json:"identity_id,omitempty"`
	Indicator             string    `json:"indicator,omitempty"`
	Currency              string    `json:"currency"`
	Precision             int64     `json:"precision"`
	Balance               int64     `json:"balance"`
	CreditBalance         int64     `json:"credit_balance"`
	DebitBalance          int64     `json:"debit_balance"`
	InflightBalance       int64     `json:"inflight_balance"`
	InflightCreditBalance int64     `json:"inflight_credit_balance"`
	InflightDebitBalance  int64     `json:"inflight_debit_balance"`
	Version               int64     `json:"version,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	MetaData              Metadata  `json:"meta_data,omitempty"`
}

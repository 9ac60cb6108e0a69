package model

import "time"

// CreateLedgerRequest is the body for creating a ledger.
type CreateLedgerRequest struct {
	Name     string   `json:"name"`
	MetaData Metadata `json:"meta_data,omitempty"`
}

// Ledger is a ledger as returned by the server.
type Ledger struct {
	LedgerID  string    `json:"ledger_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	MetaData  Metadata  `json:"meta_data,omitempty"`
}

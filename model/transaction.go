package model

import "time"

// Transaction status literals. Inflight transactions are resolved with the
// lower-case commit/void statuses; the remaining values are reported by the
// server and never sent by the client.
const (
	StatusCommit   = "commit"
	StatusVoid     = "void"
	StatusQueued   = "QUEUED"
	StatusApplied  = "APPLIED"
	StatusRejected = "REJECTED"
	StatusInflight = "INFLIGHT"
	StatusExpired  = "EXPIRED"
)

// DistributionEntry assigns a portion of a transaction's amount to a single
// balance. Distribution is a percentage ("10%"), an absolute numeric string
// ("250.5") or the literal "left" which absorbs the remainder.
type DistributionEntry struct {
	Identifier   string `json:"identifier"`
	Distribution string `json:"distribution"`
	Narration    string `json:"narration,omitempty"`
}

// CreateTransactionRequest is the body for recording a transaction. Exactly
// one of Source/Sources may be set, and the same holds for the destination
// side.
type CreateTransactionRequest struct {
	Amount             float64             `json:"amount"`
	Precision          int64               `json:"precision"`
	Reference          string              `json:"reference"`
	Description        string              `json:"description"`
	Currency           string              `json:"currency"`
	Rate               float64             `json:"rate,omitempty"`
	Source             string              `json:"source,omitempty"`
	Sources            []DistributionEntry `json:"sources,omitempty"`
	Destination        string              `json:"destination,omitempty"`
	Destinations       []DistributionEntry `json:"destinations,omitempty"`
	Inflight           bool                `json:"inflight,omitempty"`
	InflightExpiryDate *time.Time          `json:"inflight_expiry_date,omitempty"`
	ScheduledFor       *time.Time          `json:"scheduled_for,omitempty"`
	AllowOverdraft     bool                `json:"allow_overdraft,omitempty"`
	MetaData           Metadata            `json:"meta_data,omitempty"`
}

// Transaction is a transaction record as returned by the server.
type Transaction struct {
	TransactionID string              `json:"transaction_id"`
	Amount        float64             `json:"amount"`
	Precision     int64               `json:"precision"`
	PreciseAmount int64               `json:"precise_amount"`
	Rate          float64             `json:"rate,omitempty"`
	Reference     string              `json:"reference"`
	Description   string              `json:"description"`
	Currency      string              `json:"currency"`
	Status        string              `json:"status"`
	Source        string              `json:"source,omitempty"`
	Sources       []DistributionEntry `json:"sources,omitempty"`
	Destination   string              `json:"destination,omitempty"`
	Destinations  []DistributionEntry `json:"destinations,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	MetaData      Metadata            `json:"meta_data,omitempty"`
}

// StatusUpdate resolves an inflight transaction. Status must be commit or
// void; a non-zero Amount commits or voids only part of the inflight amount.
type StatusUpdate struct {
	Status   string   `json:"status"`
	Amount   float64  `json:"amount,omitempty"`
	MetaData Metadata `json:"meta_data,omitempty"`
}

// BulkTransactionRequest submits multiple transactions in one request.
type BulkTransactionRequest struct {
	Atomic       bool                       `json:"atomic,omitempty"`
	Inflight     bool                       `json:"inflight,omitempty"`
	RunAsync     bool                       `json:"run_async,omitempty"`
	Transactions []CreateTransactionRequest `json:"transactions"`
}

// BulkTransactionResult reports the outcome of a bulk submission. When the
// batch runs asynchronously only the batch identifier is returned.
type BulkTransactionResult struct {
	BatchID          string        `json:"batch_id"`
	Status           string        `json:"status"`
	TransactionCount int           `json:"transaction_count,omitempty"`
	Transactions     []Transaction `json:"transactions,omitempty"`
	Error            string        `json:"error,omitempty"`
}

package model

import "time"

// MonitorCondition describes the balance field comparison that triggers a
// monitor. Value is expressed in the major unit and scaled by Precision.
type MonitorCondition struct {
	Field     string  `json:"field"`
	Operator  string  `json:"operator"`
	Value     float64 `json:"value"`
	Precision int64   `json:"precision"`
}

// CreateMonitorRequest is the body for creating or updating a balance
// monitor.
type CreateMonitorRequest struct {
	BalanceID   string           `json:"balance_id"`
	Condition   MonitorCondition `json:"condition"`
	Description string           `json:"description,omitempty"`
	CallBackURL string           `json:"call_back_url,omitempty"`
	MetaData    Metadata         `json:"meta_data,omitempty"`
}

// Monitor is a balance monitor as returned by the server.
type Monitor struct {
	CreateMonitorRequest

	MonitorID string    `json:"monitor_id"`
	CreatedAt time.Time `json:"created_at"`
}

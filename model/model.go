// Package model defines the request and response bodies exchanged with the
// Blnk ledger API. All types are plain value objects round-tripped through
// JSON; the client never mutates them after construction.
package model

// Metadata is the open key-value blob every Blnk entity can carry.
type Metadata map[string]any

// Response is the uniform envelope returned by every client operation,
// success or failure. Callers branch on Status and Data == nil without
// knowing which layer produced the response.
type Response[T any] struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

// Format wraps a status, message and payload into a Response envelope.
func Format[T any](status int, message string, data *T) *Response[T] {
	return &Response[T]{Status: status, Message: message, Data: data}
}

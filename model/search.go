package model

import "encoding/json"

// SearchResource selects the collection a search query runs against.
type SearchResource string

const (
	SearchLedgers      SearchResource = "ledgers"
	SearchTransactions SearchResource = "transactions"
	SearchBalances     SearchResource = "balances"
)

// SearchParams is the body for a search request. Q is required.
type SearchParams struct {
	Q        string `json:"q"`
	QueryBy  string `json:"query_by,omitempty"`
	FilterBy string `json:"filter_by,omitempty"`
	SortBy   string `json:"sort_by,omitempty"`
	Page     int    `json:"page,omitempty"`
	PerPage  int    `json:"per_page,omitempty"`
}

// SearchHit wraps a single matching document. The document shape depends on
// the resource searched, so it is left raw for the caller to decode.
type SearchHit struct {
	Document json.RawMessage `json:"document"`
}

// SearchResult is the server's search response.
type SearchResult struct {
	Found         int          `json:"found"`
	OutOf         int          `json:"out_of"`
	Page          int          `json:"page"`
	SearchTimeMS  int          `json:"search_time_ms"`
	RequestParams SearchParams `json:"request_params"`
	Hits          []SearchHit  `json:"hits"`
}

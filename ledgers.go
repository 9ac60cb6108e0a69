package blnk

import (
	"context"
	"net/http"

	"github.com/blnkfinance/blnk-go/model"
	"github.com/blnkfinance/blnk-go/validation"
)

// LedgersService manages ledgers.
type LedgersService struct {
	client *Client
}

// Create records a new ledger.
func (s *LedgersService) Create(ctx context.Context, data *model.CreateLedgerRequest) *model.Response[model.Ledger] {
	if err := validation.CreateLedger(data); err != nil {
		return invalid[model.Ledger](err)
	}
	return request[model.Ledger](ctx, s.client, "ledgers", data, http.MethodPost, nil)
}

// Get retrieves a ledger by id.
func (s *LedgersService) Get(ctx context.Context, id string) *model.Response[model.Ledger] {
	return request[model.Ledger](ctx, s.client, "ledgers/"+id, nil, http.MethodGet, nil)
}

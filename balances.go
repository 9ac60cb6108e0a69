package blnk

import (
	"context"
	"net/http"

	"github.com/blnkfinance/blnk-go/model"
	"github.com/blnkfinance/blnk-go/validation"
)

// LedgerBalancesService manages balances within a ledger.
type LedgerBalancesService struct {
	client *Client
}

// Create records a new balance under a ledger, optionally linked to an
// identity.
func (s *LedgerBalancesService) Create(ctx context.Context, data *model.CreateBalanceRequest) *model.Response[model.Balance] {
	if err := validation.CreateBalance(data); err != nil {
		return invalid[model.Balance](err)
	}
	return request[model.Balance](ctx, s.client, "balances", data, http.MethodPost, nil)
}

// Get retrieves a balance by id.
func (s *LedgerBalancesService) Get(ctx context.Context, id string) *model.Response[model.Balance] {
	return request[model.Balance](ctx, s.client, "balances/"+id, nil, http.MethodGet, nil)
}

package blnk

import (
	"context"
	"net/http"

	"github.com/blnkfinance/blnk-go/model"
	"github.com/blnkfinance/blnk-go/validation"
)

// BalanceMonitorsService manages balance monitors: server-side watchers that
// fire a callback when a balance field crosses a condition.
type BalanceMonitorsService struct {
	client *Client
}

// Create registers a new monitor.
func (s *BalanceMonitorsService) Create(ctx context.Context, data *model.CreateMonitorRequest) *model.Response[model.Monitor] {
	if err := validation.CreateMonitor(data); err != nil {
		return invalid[model.Monitor](err)
	}
	return request[model.Monitor](ctx, s.client, "balance-monitors", data, http.MethodPost, nil)
}

// Get retrieves a monitor by id.
func (s *BalanceMonitorsService) Get(ctx context.Context, id string) *model.Response[model.Monitor] {
	return request[model.Monitor](ctx, s.client, "balance-monitors/"+id, nil, http.MethodGet, nil)
}

// List retrieves all monitors.
func (s *BalanceMonitorsService) List(ctx context.Context) *model.Response[[]model.Monitor] {
	return request[[]model.Monitor](ctx, s.client, "balance-monitors", nil, http.MethodGet, nil)
}

// Update replaces a monitor's configuration.
func (s *BalanceMonitorsService) Update(ctx context.Context, id string, data *model.CreateMonitorRequest) *model.Response[model.Monitor] {
	if err := validation.CreateMonitor(data); err != nil {
		return invalid[model.Monitor](err)
	}
	return request[model.Monitor](ctx, s.client, "balance-monitors/"+id, data, http.MethodPut, nil)
}

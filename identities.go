package blnk

import (
	"context"
	"net/http"

	"github.com/blnkfinance/blnk-go/model"
	"github.com/blnkfinance/blnk-go/validation"
)

// IdentitiesService manages the individuals and organizations balances can
// be linked to.
type IdentitiesService struct {
	client *Client
}

// Create records a new identity.
func (s *IdentitiesService) Create(ctx context.Context, data *model.IdentityRequest) *model.Response[model.Identity] {
	if err := validation.Identity(data); err != nil {
		return invalid[model.Identity](err)
	}
	return request[model.Identity](ctx, s.client, "identities", data, http.MethodPost, nil)
}

// Get retrieves an identity by id.
func (s *IdentitiesService) Get(ctx context.Context, id string) *model.Response[model.Identity] {
	return request[model.Identity](ctx, s.client, "identities/"+id, nil, http.MethodGet, nil)
}

// List retrieves all identities.
func (s *IdentitiesService) List(ctx context.Context) *model.Response[[]model.Identity] {
	return request[[]model.Identity](ctx, s.client, "identities", nil, http.MethodGet, nil)
}

// Update replaces an identity record.
func (s *IdentitiesService) Update(ctx context.Context, id string, data *model.IdentityRequest) *model.Response[model.Identity] {
	if err := validation.Identity(data); err != nil {
		return invalid[model.Identity](err)
	}
	return request[model.Identity](ctx, s.client, "identities/"+id, data, http.MethodPut, nil)
}

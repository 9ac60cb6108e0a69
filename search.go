package blnk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/blnkfinance/blnk-go/model"
)

// SearchService queries the server's search index.
type SearchService struct {
	client *Client
}

// Search runs a query against one of the searchable collections. Q is
// required; everything else is optional.
func (s *SearchService) Search(ctx context.Context, params model.SearchParams, resource model.SearchResource) *model.Response[model.SearchResult] {
	if strings.TrimSpace(params.Q) == "" {
		return invalid[model.SearchResult](errors.New(`field "q" must be filled`))
	}
	switch resource {
	case model.SearchLedgers, model.SearchTransactions, model.SearchBalances:
	default:
		return invalid[model.SearchResult](fmt.Errorf("unknown search resource %q", resource))
	}
	return request[model.SearchResult](ctx, s.client, "search/"+string(resource), params, http.MethodPost, nil)
}

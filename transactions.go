package blnk

import (
	"context"
	"net/http"
	"strings"

	"github.com/blnkfinance/blnk-go/model"
	"github.com/blnkfinance/blnk-go/validation"
)

// TransactionsService records transactions and resolves inflight ones.
type TransactionsService struct {
	client *Client
}

// Create records a single transaction.
func (s *TransactionsService) Create(ctx context.Context, data *model.CreateTransactionRequest) *model.Response[model.Transaction] {
	if err := validation.CreateTransaction(data); err != nil {
		return invalid[model.Transaction](err)
	}
	return request[model.Transaction](ctx, s.client, "transactions", data, http.MethodPost, nil)
}

// CreateBulk submits a batch of transactions in one request. Every element
// must be valid on its own and references must be unique within the batch.
func (s *TransactionsService) CreateBulk(ctx context.Context, data *model.BulkTransactionRequest) *model.Response[model.BulkTransactionResult] {
	if err := validation.BulkTransaction(data); err != nil {
		return invalid[model.BulkTransactionResult](err)
	}
	return request[model.BulkTransactionResult](ctx, s.client, "transactions/bulk", data, http.MethodPost, nil)
}

// UpdateStatus resolves an inflight transaction (or, via a parent id, a
// batch of them). Status is canonicalized to lower-case commit/void before
// transmission; a non-zero amount commits or voids only part of the
// reserved amount.
func (s *TransactionsService) UpdateStatus(ctx context.Context, id string, update model.StatusUpdate) *model.Response[model.Transaction] {
	if err := validation.StatusUpdate(&update); err != nil {
		return invalid[model.Transaction](err)
	}
	update.Status = strings.ToLower(strings.TrimSpace(update.Status))
	return request[model.Transaction](ctx, s.client, "transactions/inflight/"+id, &update, http.MethodPut, nil)
}

// UpdateStatusRaw is UpdateStatus for callers holding an unparsed payload,
// such as one read from a file. Keys outside the status/amount/meta_data
// contract are rejected by name.
func (s *TransactionsService) UpdateStatusRaw(ctx context.Context, id string, raw []byte) *model.Response[model.Transaction] {
	update, err := validation.DecodeStatusUpdate(raw)
	if err != nil {
		return invalid[model.Transaction](err)
	}
	return s.UpdateStatus(ctx, id, update)
}

// Commit applies the full reserved amount of an inflight transaction.
func (s *TransactionsService) Commit(ctx context.Context, id string) *model.Response[model.Transaction] {
	return s.UpdateStatus(ctx, id, model.StatusUpdate{Status: model.StatusCommit})
}

// CommitPartial applies part of the reserved amount of an inflight
// transaction.
func (s *TransactionsService) CommitPartial(ctx context.Context, id string, amount float64) *model.Response[model.Transaction] {
	return s.UpdateStatus(ctx, id, model.StatusUpdate{Status: model.StatusCommit, Amount: amount})
}

// Void discards an inflight transaction and releases its reserved amount.
func (s *TransactionsService) Void(ctx context.Context, id string) *model.Response[model.Transaction] {
	return s.UpdateStatus(ctx, id, model.StatusUpdate{Status: model.StatusVoid})
}

// Refund reverses an applied transaction. The server records a new
// transaction with source and destination swapped; the client treats the
// operation as opaque and sends no body.
func (s *TransactionsService) Refund(ctx context.Context, id string) *model.Response[model.Transaction] {
	return request[model.Transaction](ctx, s.client, "refund-transaction/"+id, nil, http.MethodPost, nil)
}

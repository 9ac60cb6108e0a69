package blnk

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blnkfinance/blnk-go/model"
)

func TestLedgersCreate(t *testing.T) {
	doer := &fakeDoer{handler: respondWith(http.StatusCreated,
		`{"ledger_id":"l1","name":"Test","created_at":"2024-01-01T00:00:00Z"}`)}
	c := newTestClient(doer)

	resp := c.Ledgers().Create(context.Background(), &model.CreateLedgerRequest{
		Name:     "Test",
		MetaData: model.Metadata{"team": "payments"},
	})

	require.Equal(t, 1, doer.calls)
	assert.Equal(t, http.MethodPost, doer.lastReq.Method)
	assert.Equal(t, "http://blnk.test/ledgers", doer.lastReq.URL.String())

	var sent map[string]any
	require.NoError(t, json.Unmarshal(doer.lastBody, &sent))
	assert.Equal(t, "Test", sent["name"])
	assert.Equal(t, map[string]any{"team": "payments"}, sent["meta_data"])

	require.NotNil(t, resp.Data)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, "l1", resp.Data.LedgerID)
}

func TestLedgersCreateMissingName(t *testing.T) {
	doer := &fakeDoer{}
	c := newTestClient(doer)

	resp := c.Ledgers().Create(context.Background(), &model.CreateLedgerRequest{})

	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Nil(t, resp.Data)
	assert.Contains(t, resp.Message, "name")
	assert.Zero(t, doer.calls, "validation failures must not reach the network")
}

func TestLedgersGet(t *testing.T) {
	doer := &fakeDoer{handler: respondWith(http.StatusOK, `{"ledger_id":"l1","name":"main"}`)}
	c := newTestClient(doer)

	resp := c.Ledgers().Get(context.Background(), "l1")

	assert.Equal(t, http.MethodGet, doer.lastReq.Method)
	assert.Equal(t, "http://blnk.test/ledgers/l1", doer.lastReq.URL.String())
	require.NotNil(t, resp.Data)
	assert.Equal(t, "main", resp.Data.Name)
}

func TestLedgerBalancesCreate(t *testing.T) {
	doer := &fakeDoer{handler: respondWith(http.StatusCreated,
		`{"balance_id":"b1","ledger_id":"l1","currency":"USD","precision":100}`)}
	c := newTestClient(doer)

	resp := c.LedgerBalances().Create(context.Background(), &model.CreateBalanceRequest{
		LedgerID: "l1",
		Currency: "USD",
	})

	assert.Equal(t, "http://blnk.test/balances", doer.lastReq.URL.String())
	require.NotNil(t, resp.Data)
	assert.Equal(t, "b1", resp.Data.BalanceID)
	assert.Equal(t, int64(100), resp.Data.Precision)
}

func TestLedgerBalancesCreateRejectsUnknownCurrency(t *testing.T) {
	doer := &fakeDoer{}
	c := newTestClient(doer)

	resp := c.LedgerBalances().Create(context.Background(), &model.CreateBalanceRequest{
		LedgerID: "l1",
		Currency: "EUR",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Contains(t, resp.Message, "currency")
	assert.Zero(t, doer.calls)
}

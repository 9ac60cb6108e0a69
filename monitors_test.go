package blnk

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blnkfinance/blnk-go/model"
)

func validMonitor() *model.CreateMonitorRequest {
	return &model.CreateMonitorRequest{
		BalanceID: "b1",
		Condition: model.MonitorCondition{
			Field:     "balance",
			Operator:  ">=",
			Value:     5000,
			Precision: 100,
		},
		Description: "alert on large balance",
	}
}

func TestMonitorsCreate(t *testing.T) {
	doer := &fakeDoer{handler: respondWith(http.StatusCreated, `{"monitor_id":"m1"}`)}
	c := newTestClient(doer)

	resp := c.BalanceMonitors().Create(context.Background(), validMonitor())

	assert.Equal(t, "http://blnk.test/balance-monitors", doer.lastReq.URL.String())
	require.NotNil(t, resp.Data)
	assert.Equal(t, "m1", resp.Data.MonitorID)
}

func TestMonitorsCreateRejectsBadOperator(t *testing.T) {
	doer := &fakeDoer{}
	c := newTestClient(doer)

	data := validMonitor()
	data.Condition.Operator = "~="
	resp := c.BalanceMonitors().Create(context.Background(), data)

	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Contains(t, resp.Message, "operator")
	assert.Zero(t, doer.calls)
}

func TestMonitorsGetListUpdate(t *testing.T) {
	doer := &fakeDoer{handler: respondWith(http.StatusOK, `{"monitor_id":"m1"}`)}
	c := newTestClient(doer)

	c.BalanceMonitors().Get(context.Background(), "m1")
	assert.Equal(t, "http://blnk.test/balance-monitors/m1", doer.lastReq.URL.String())

	doer.handler = respondWith(http.StatusOK, `[{"monitor_id":"m1"}]`)
	list := c.BalanceMonitors().List(context.Background())
	require.NotNil(t, list.Data)
	require.Len(t, *list.Data, 1)

	doer.handler = respondWith(http.StatusOK, `{"monitor_id":"m1"}`)
	updated := c.BalanceMonitors().Update(context.Background(), "m1", validMonitor())
	assert.Equal(t, http.MethodPut, doer.lastReq.Method)
	require.NotNil(t, updated.Data)
}

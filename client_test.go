package blnk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New("key", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baseUrl is required")
}

func TestNewDefaults(t *testing.T) {
	c, err := New("key", Options{BaseURL: "http://localhost:5001"})
	require.NoError(t, err)

	assert.Equal(t, DefaultTimeout, c.timeout)
	assert.NotNil(t, c.logger)
	assert.NotNil(t, c.httpClient)
	assert.Equal(t, "key", c.APIKey())
}

func TestNewOverrides(t *testing.T) {
	doer := &fakeDoer{}
	c, err := New("key", Options{
		BaseURL:    "http://localhost:5001/",
		Timeout:    10 * time.Second,
		HTTPClient: doer,
	})
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, c.timeout)
	assert.Equal(t, "http://localhost:5001/ledgers", c.url("ledgers"))
}

func TestServicesAreMemoized(t *testing.T) {
	c := newTestClient(&fakeDoer{})

	assert.Same(t, c.Ledgers(), c.Ledgers())
	assert.Same(t, c.LedgerBalances(), c.LedgerBalances())
	assert.Same(t, c.Transactions(), c.Transactions())
	assert.Same(t, c.BalanceMonitors(), c.BalanceMonitors())
	assert.Same(t, c.Identities(), c.Identities())
	assert.Same(t, c.Reconciliation(), c.Reconciliation())
	assert.Same(t, c.Search(), c.Search())
}

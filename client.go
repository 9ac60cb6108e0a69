// Package blnk is a client for the Blnk ledger API. It shapes, validates and
// transmits requests; the ledger engine itself is remote. Every operation
// returns the uniform model.Response envelope regardless of outcome:
// validation failures surface as status 400 without a network call, server
// failures pass the server's status through, and unexpected transport
// failures are normalized to status 500.
package blnk

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"
)

// DefaultTimeout bounds each request when Options.Timeout is unset.
const DefaultTimeout = 3000 * time.Millisecond

// Doer is the transport primitive. *http.Client satisfies it; tests inject
// fakes. The client assumes nothing beyond this shape.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a Client.
type Options struct {
	// BaseURL is the address of the Blnk server. Required.
	BaseURL string
	// Timeout bounds each request, including body parsing. Defaults to
	// DefaultTimeout.
	Timeout time.Duration
	// Headers are extra default headers sent on every request.
	Headers map[string]string
	// Logger defaults to the zerolog console logger.
	Logger Logger
	// HTTPClient defaults to a plain *http.Client. Cancellation comes from
	// the per-request context, so no transport-level timeout is set.
	HTTPClient Doer
}

// Client is the single entry point to the SDK. It holds no ledger state;
// the cached service instances are stateless wrappers constructed on first
// access.
type Client struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	headers    map[string]string
	logger     Logger
	httpClient Doer

	ledgersOnce  sync.Once
	ledgers      *LedgersService
	balancesOnce sync.Once
	balances     *LedgerBalancesService
	txOnce       sync.Once
	tx           *TransactionsService
	monitorsOnce sync.Once
	monitors     *BalanceMonitorsService
	idOnce       sync.Once
	identities   *IdentitiesService
	reconOnce    sync.Once
	recon        *ReconciliationService
	searchOnce   sync.Once
	search       *SearchService
}

// New constructs a Client. A missing BaseURL is a fatal misconfiguration and
// fails construction immediately.
func New(apiKey string, opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("baseUrl is required for the self-hosted Blnk client")
	}

	c := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		timeout:    opts.Timeout,
		headers:    opts.Headers,
		logger:     opts.Logger,
		httpClient: opts.HTTPClient,
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.logger == nil {
		c.logger = NewConsoleLogger()
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	return c, nil
}

// Ledgers returns the ledger service.
func (c *Client) Ledgers() *LedgersService {
	c.ledgersOnce.Do(func() { c.ledgers = &LedgersService{client: c} })
	return c.ledgers
}

// LedgerBalances returns the ledger balance service.
func (c *Client) LedgerBalances() *LedgerBalancesService {
	c.balancesOnce.Do(func() { c.balances = &LedgerBalancesService{client: c} })
	return c.balances
}

// Transactions returns the transaction service.
func (c *Client) Transactions() *TransactionsService {
	c.txOnce.Do(func() { c.tx = &TransactionsService{client: c} })
	return c.tx
}

// BalanceMonitors returns the balance monitor service.
func (c *Client) BalanceMonitors() *BalanceMonitorsService {
	c.monitorsOnce.Do(func() { c.monitors = &BalanceMonitorsService{client: c} })
	return c.monitors
}

// Identities returns the identity service.
func (c *Client) Identities() *IdentitiesService {
	c.idOnce.Do(func() { c.identities = &IdentitiesService{client: c} })
	return c.identities
}

// Reconciliation returns the reconciliation service.
func (c *Client) Reconciliation() *ReconciliationService {
	c.reconOnce.Do(func() { c.recon = &ReconciliationService{client: c} })
	return c.recon
}

// Search returns the search service.
func (c *Client) Search() *SearchService {
	c.searchOnce.Do(func() { c.search = &SearchService{client: c} })
	return c.search
}

// APIKey returns the configured API key.
func (c *Client) APIKey() string {
	return c.apiKey
}

// url joins an endpoint path onto the base address.
func (c *Client) url(endpoint string) string {
	return c.baseURL + "/" + strings.TrimPrefix(endpoint, "/")
}

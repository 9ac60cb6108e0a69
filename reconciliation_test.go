package blnk

import (
	"bytes"
	"context"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blnkfinance/blnk-go/model"
)

func TestUploadMissingFile(t *testing.T) {
	doer := &fakeDoer{}
	c := newTestClient(doer)

	resp := c.Reconciliation().Upload(context.Background(), "/no/such/file.csv", "bank")

	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Nil(t, resp.Data)
	assert.Contains(t, resp.Message, "/no/such/file.csv")
	assert.Zero(t, doer.calls, "a missing file must be reported without a network call")
}

func TestUploadNilReader(t *testing.T) {
	doer := &fakeDoer{}
	c := newTestClient(doer)

	resp := c.Reconciliation().UploadReader(context.Background(), nil, "records.csv", "bank")

	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Zero(t, doer.calls)
}

func parseUploadBody(t *testing.T, doer *fakeDoer) map[string]string {
	t.Helper()

	contentType := doer.lastReq.Header.Get("Content-Type")
	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(bytes.NewReader(doer.lastBody), params["boundary"])
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)

	parts := map[string]string{}
	for name, values := range form.Value {
		parts[name] = values[0]
	}
	for name, files := range form.File {
		f, err := files[0].Open()
		require.NoError(t, err)
		var buf bytes.Buffer
		_, err = buf.ReadFrom(f)
		require.NoError(t, err)
		f.Close()
		parts[name] = buf.String()
	}
	return parts
}

func TestUploadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.csv")
	require.NoError(t, os.WriteFile(path, []byte("amount,reference\n100,ref_1\n"), 0o644))

	doer := &fakeDoer{handler: respondWith(http.StatusOK,
		`{"upload_id":"u1","record_count":1,"source":"bank"}`)}
	c := newTestClient(doer)

	resp := c.Reconciliation().Upload(context.Background(), path, "bank")

	require.Equal(t, 1, doer.calls)
	assert.Equal(t, "http://blnk.test/reconciliation/upload", doer.lastReq.URL.String())

	parts := parseUploadBody(t, doer)
	assert.Equal(t, "amount,reference\n100,ref_1\n", parts["file"])
	assert.Equal(t, "bank", parts["source"])

	require.NotNil(t, resp.Data)
	assert.Equal(t, "u1", resp.Data.UploadID)
	assert.Equal(t, 1, resp.Data.RecordCount)
}

func TestUploadFromReader(t *testing.T) {
	doer := &fakeDoer{handler: respondWith(http.StatusOK,
		`{"upload_id":"u2","record_count":2,"source":"stripe"}`)}
	c := newTestClient(doer)

	resp := c.Reconciliation().UploadReader(context.Background(),
		strings.NewReader("a,b\n1,2\n3,4\n"), "export.csv", "stripe")

	require.Equal(t, 1, doer.calls)
	parts := parseUploadBody(t, doer)
	assert.Equal(t, "a,b\n1,2\n3,4\n", parts["file"])
	assert.Equal(t, "stripe", parts["source"])
	require.NotNil(t, resp.Data)
	assert.Equal(t, "u2", resp.Data.UploadID)
}

func TestCreateMatchingRule(t *testing.T) {
	doer := &fakeDoer{handler: respondWith(http.StatusCreated,
		`{"rule_id":"r1","name":"amount match"}`)}
	c := newTestClient(doer)

	resp := c.Reconciliation().CreateMatchingRule(context.Background(), &model.Matcher{
		Name:        "amount match",
		Description: "match on amount with small drift",
		Criteria: []model.MatcherCriteria{
			{Field: model.CriteriaAmount, Operator: model.OperatorEquals, AllowableDrift: 0.5},
		},
	})

	assert.Equal(t, "http://blnk.test/reconciliation/matching-rules", doer.lastReq.URL.String())
	require.NotNil(t, resp.Data)
	assert.Equal(t, "r1", resp.Data.RuleID)
}

func TestCreateMatchingRuleRejectsUnknownField(t *testing.T) {
	doer := &fakeDoer{}
	c := newTestClient(doer)

	resp := c.Reconciliation().CreateMatchingRule(context.Background(), &model.Matcher{
		Name:        "bad",
		Description: "bad",
		Criteria:    []model.MatcherCriteria{{Field: "counterparty", Operator: model.OperatorEquals}},
	})

	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Contains(t, resp.Message, "counterparty")
	assert.Zero(t, doer.calls)
}

func TestRunReconciliation(t *testing.T) {
	doer := &fakeDoer{handler: respondWith(http.StatusOK,
		`{"reconciliation_id":"recon_1","status":"started"}`)}
	c := newTestClient(doer)

	resp := c.Reconciliation().Run(context.Background(), &model.RunReconciliationRequest{
		UploadID:        "u1",
		Strategy:        model.StrategyOneToOne,
		DryRun:          true,
		MatchingRuleIDs: []string{"r1"},
	})

	assert.Equal(t, "http://blnk.test/reconciliation/start", doer.lastReq.URL.String())
	require.NotNil(t, resp.Data)
	assert.Equal(t, "recon_1", resp.Data.ReconciliationID)
}

func TestRunReconciliationRejectsUnknownStrategy(t *testing.T) {
	doer := &fakeDoer{}
	c := newTestClient(doer)

	resp := c.Reconciliation().Run(context.Background(), &model.RunReconciliationRequest{
		UploadID:        "u1",
		Strategy:        "all_to_all",
		MatchingRuleIDs: []string{"r1"},
	})

	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Zero(t, doer.calls)
}

package blnk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/blnkfinance/blnk-go/model"
	"github.com/blnkfinance/blnk-go/validation"
)

// ReconciliationService uploads external records and drives reconciliation
// runs against them. Matching itself happens server-side.
type ReconciliationService struct {
	client *Client
}

// Upload submits the file at path as an external record batch. A missing
// path is reported locally with status 404 and no network call.
func (s *ReconciliationService) Upload(ctx context.Context, path, source string) *model.Response[model.Upload] {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return model.Format[model.Upload](http.StatusNotFound, fmt.Sprintf("file does not exist at path: %s", path), nil)
	}
	f, err := os.Open(path)
	if err != nil {
		return handleError[model.Upload](err, s.client.logger, "reconciliation/upload")
	}
	defer f.Close()
	return s.upload(ctx, f, filepath.Base(path), source)
}

// UploadReader submits an already-open byte stream as an external record
// batch. A nil reader is reported locally with status 400.
func (s *ReconciliationService) UploadReader(ctx context.Context, r io.Reader, filename, source string) *model.Response[model.Upload] {
	if r == nil {
		return model.Format[model.Upload](http.StatusBadRequest, "invalid read stream provided", nil)
	}
	if filename == "" {
		filename = "upload"
	}
	return s.upload(ctx, r, filename, source)
}

// upload builds the two-part multipart body (binary "file" plus text
// "source") and dispatches it with the boundary content-type overriding the
// JSON default.
func (s *ReconciliationService) upload(ctx context.Context, r io.Reader, filename, source string) *model.Response[model.Upload] {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return handleError[model.Upload](err, s.client.logger, "reconciliation/upload")
	}
	if _, err := io.Copy(part, r); err != nil {
		return handleError[model.Upload](err, s.client.logger, "reconciliation/upload")
	}
	if err := w.WriteField("source", source); err != nil {
		return handleError[model.Upload](err, s.client.logger, "reconciliation/upload")
	}
	if err := w.Close(); err != nil {
		return handleError[model.Upload](err, s.client.logger, "reconciliation/upload")
	}

	headers := map[string]string{"Content-Type": w.FormDataContentType()}
	return request[model.Upload](ctx, s.client, "reconciliation/upload", &body, http.MethodPost, headers)
}

// CreateMatchingRule registers a named matcher for pairing uploaded records
// with ledger transactions.
func (s *ReconciliationService) CreateMatchingRule(ctx context.Context, data *model.Matcher) *model.Response[model.MatchingRule] {
	if err := validation.Matcher(data); err != nil {
		return invalid[model.MatchingRule](err)
	}
	return request[model.MatchingRule](ctx, s.client, "reconciliation/matching-rules", data, http.MethodPost, nil)
}

// Run starts a reconciliation over a previously uploaded batch.
func (s *ReconciliationService) Run(ctx context.Context, data *model.RunReconciliationRequest) *model.Response[model.Reconciliation] {
	if err := validation.RunReconciliation(data); err != nil {
		return invalid[model.Reconciliation](err)
	}
	return request[model.Reconciliation](ctx, s.client, "reconciliation/start", data, http.MethodPost, nil)
}

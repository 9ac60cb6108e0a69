package blnk

import (
	"net/http"

	"github.com/blnkfinance/blnk-go/model"
)

// handleError normalizes any unexpected failure into a 500 envelope. The
// cause is logged against the operation name; validation failures never
// reach this path.
func handleError[R any](err error, logger Logger, op string) *model.Response[R] {
	message := "an unknown error occurred"
	if err != nil {
		message = err.Error()
	}
	logger.Error("%s: request failed: %v", op, err)
	return model.Format[R](http.StatusInternalServerError, message, nil)
}

// invalid short-circuits an operation with a 400 envelope before any network
// attempt.
func invalid[R any](err error) *model.Response[R] {
	return model.Format[R](http.StatusBadRequest, err.Error(), nil)
}

package validation

import (
	"errors"

	"github.com/blnkfinance/blnk-go/model"
)

// CreateLedger checks a ledger creation payload.
func CreateLedger(data *model.CreateLedgerRequest) error {
	if data == nil {
		return errors.New("ledger payload is required")
	}
	if blank(data.Name) {
		return errors.New("name must be a non-empty string")
	}
	return nil
}

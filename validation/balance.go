package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blnkfinance/blnk-go/model"
)

// Currencies the balance API accepts.
var allowedCurrencies = []string{"USD", "NGN"}

// CreateBalance checks a ledger balance creation payload.
func CreateBalance(data *model.CreateBalanceRequest) error {
	if data == nil {
		return errors.New("balance payload is required")
	}
	if blank(data.LedgerID) {
		return errors.New("ledger_id must be a non-empty string")
	}
	if !validCurrency(data.Currency) {
		return fmt.Errorf("currency must be one of %s", strings.Join(allowedCurrencies, ", "))
	}
	return nil
}

func validCurrency(currency string) bool {
	for _, c := range allowedCurrencies {
		if currency == c {
			return true
		}
	}
	return false
}

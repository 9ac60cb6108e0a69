package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/blnkfinance/blnk-go/model"
)

var oneHundred = decimal.NewFromInt(100)

// CreateTransaction checks a single transaction payload: required fields
// first, then field shapes, then the composite source/destination and
// distribution invariants.
func CreateTransaction(data *model.CreateTransactionRequest) error {
	if data == nil {
		return errors.New("transaction payload is required")
	}
	if data.Amount <= 0 {
		return errors.New("amount must be greater than zero")
	}
	if data.Precision <= 0 {
		return errors.New("precision must be greater than zero")
	}
	if blank(data.Reference) {
		return errors.New("reference must be a non-empty string")
	}
	if blank(data.Description) {
		return errors.New("description must be a non-empty string")
	}
	if blank(data.Currency) {
		return errors.New("currency must be a non-empty string")
	}
	if data.Rate < 0 {
		return errors.New("rate must not be negative")
	}

	if data.Source != "" && len(data.Sources) > 0 {
		return errors.New("both 'source' and 'sources' cannot be provided together")
	}
	if len(data.Sources) > 0 {
		if err := distributions("source", data.Sources, data.Amount); err != nil {
			return err
		}
	}

	if data.Destination != "" && len(data.Destinations) > 0 {
		return errors.New("both 'destination' and 'destinations' cannot be provided together")
	}
	if len(data.Destinations) > 0 {
		if err := distributions("destination", data.Destinations, data.Amount); err != nil {
			return err
		}
	}

	return nil
}

// distributions resolves each weighted entry to an absolute amount and
// checks the sum invariant: without a "left" entry the resolved amounts must
// equal the transaction amount exactly; with one, the remainder must not be
// negative. Decimal arithmetic keeps percentage resolution exact.
func distributions(side string, entries []model.DistributionEntry, amount float64) error {
	total := decimal.NewFromFloat(amount)
	sum := decimal.Zero
	hasLeft := false

	for _, entry := range entries {
		if blank(entry.Identifier) {
			return fmt.Errorf("every %s entry must have an identifier", side)
		}

		dist := strings.TrimSpace(entry.Distribution)
		switch {
		case strings.HasSuffix(dist, "%"):
			pct, err := decimal.NewFromString(strings.TrimSuffix(dist, "%"))
			if err != nil || pct.IsNegative() || pct.GreaterThan(oneHundred) {
				return fmt.Errorf("invalid percentage value in %s %q", side, entry.Identifier)
			}
			sum = sum.Add(pct.Mul(total).Div(oneHundred))
		case dist == "left":
			if hasLeft {
				return errors.New("multiple 'left' distribution entries are not allowed")
			}
			hasLeft = true
		default:
			value, err := decimal.NewFromString(dist)
			if err != nil {
				return fmt.Errorf("invalid distribution type for %s %q", side, entry.Identifier)
			}
			if value.IsNegative() {
				return fmt.Errorf("invalid numeric value in %s %q", side, entry.Identifier)
			}
			sum = sum.Add(value)
		}
	}

	if hasLeft {
		if sum.GreaterThan(total) {
			return errors.New("total distribution exceeds the specified amount")
		}
		return nil
	}
	if !sum.Equal(total) {
		return fmt.Errorf("total distribution sum (%s) does not equal the specified amount (%s)", sum, total)
	}
	return nil
}

// StatusUpdate checks an inflight resolution payload. Status is matched
// case-insensitively; commit and void are the only accepted values.
func StatusUpdate(update *model.StatusUpdate) error {
	if update == nil {
		return errors.New("status update payload is required")
	}
	status := strings.ToLower(strings.TrimSpace(update.Status))
	if status != model.StatusCommit && status != model.StatusVoid {
		return fmt.Errorf("status must be %q or %q", model.StatusCommit, model.StatusVoid)
	}
	if update.Amount < 0 {
		return errors.New("amount must not be negative")
	}
	return nil
}

// DecodeStatusUpdate parses a raw status update, rejecting any key outside
// the status/amount/meta_data contract by name.
func DecodeStatusUpdate(raw []byte) (model.StatusUpdate, error) {
	var update model.StatusUpdate
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&update); err != nil {
		if name, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
			return update, fmt.Errorf("invalid field: %s", strings.Trim(name, `"`))
		}
		return update, err
	}
	return update, nil
}

// BulkTransaction checks a batch: non-empty, every element valid on its own,
// and no reference reused anywhere in the batch.
func BulkTransaction(data *model.BulkTransactionRequest) error {
	if data == nil {
		return errors.New("bulk transaction payload is required")
	}
	if len(data.Transactions) == 0 {
		return errors.New("transactions array cannot be empty")
	}

	seen := make(map[string]int, len(data.Transactions))
	for i := range data.Transactions {
		tx := &data.Transactions[i]
		if err := CreateTransaction(tx); err != nil {
			return fmt.Errorf("transaction at index %d: %w", i, err)
		}
		if first, dup := seen[tx.Reference]; dup {
			return fmt.Errorf("reference %q is reused at indexes %d and %d: all transactions must have unique references within the bulk request", tx.Reference, first, i)
		}
		seen[tx.Reference] = i
	}
	return nil
}

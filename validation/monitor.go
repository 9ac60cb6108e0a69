package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blnkfinance/blnk-go/model"
)

var monitorOperators = []string{">", "<", "=", "!=", ">=", "<="}

// CreateMonitor checks a balance monitor payload.
func CreateMonitor(data *model.CreateMonitorRequest) error {
	if data == nil {
		return errors.New("monitor payload is required")
	}
	if blank(data.BalanceID) {
		return errors.New("balance_id must be a non-empty string")
	}
	if blank(data.Condition.Field) {
		return errors.New("condition.field must be a non-empty string")
	}
	if !validMonitorOperator(data.Condition.Operator) {
		return fmt.Errorf("condition.operator must be one of %s", strings.Join(monitorOperators, ", "))
	}
	if data.Condition.Value < 0 {
		return errors.New("condition.value must not be negative")
	}
	if data.Condition.Precision <= 0 {
		return errors.New("condition.precision must be greater than zero")
	}
	return nil
}

func validMonitorOperator(op string) bool {
	for _, o := range monitorOperators {
		if op == o {
			return true
		}
	}
	return false
}

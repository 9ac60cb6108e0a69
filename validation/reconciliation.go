package validation

import (
	"errors"
	"fmt"

	"github.com/blnkfinance/blnk-go/model"
)

var criteriaFields = map[string]bool{
	model.CriteriaAmount:      true,
	model.CriteriaCurrency:    true,
	model.CriteriaReference:   true,
	model.CriteriaDescription: true,
	model.CriteriaDate:        true,
}

var criteriaOperators = map[string]bool{
	model.OperatorEquals:      true,
	model.OperatorGreaterThan: true,
	model.OperatorLessThan:    true,
	model.OperatorContains:    true,
}

var strategies = map[string]bool{
	model.StrategyOneToOne:  true,
	model.StrategyOneToMany: true,
	model.StrategyManyToOne: true,
}

// Matcher checks a matching rule payload.
func Matcher(data *model.Matcher) error {
	if data == nil {
		return errors.New("matcher payload is required")
	}
	if blank(data.Name) {
		return errors.New("name must be a non-empty string")
	}
	if blank(data.Description) {
		return errors.New("description must be a non-empty string")
	}
	if len(data.Criteria) == 0 {
		return errors.New("criteria must be a non-empty array")
	}
	for i, criterion := range data.Criteria {
		if !criteriaFields[criterion.Field] {
			return fmt.Errorf("criteria[%d]: unknown field %q", i, criterion.Field)
		}
		if !criteriaOperators[criterion.Operator] {
			return fmt.Errorf("criteria[%d]: unknown operator %q", i, criterion.Operator)
		}
		if criterion.AllowableDrift < 0 {
			return fmt.Errorf("criteria[%d]: allowable_drift must not be negative", i)
		}
	}
	return nil
}

// RunReconciliation checks a reconciliation run payload.
func RunReconciliation(data *model.RunReconciliationRequest) error {
	if data == nil {
		return errors.New("reconciliation run payload is required")
	}
	if blank(data.UploadID) {
		return errors.New("upload_id must be a non-empty string")
	}
	if !strategies[data.Strategy] {
		return fmt.Errorf("strategy must be one of %s, %s, %s",
			model.StrategyOneToOne, model.StrategyOneToMany, model.StrategyManyToOne)
	}
	if len(data.MatchingRuleIDs) == 0 {
		return errors.New("matching_rule_ids must be a non-empty array")
	}
	if data.GroupingCriteria != "" && !criteriaFields[data.GroupingCriteria] {
		return fmt.Errorf("unknown grouping_criteria %q", data.GroupingCriteria)
	}
	return nil
}

package model

import "time"

// Fields a matching rule criterion may compare.
const (
	CriteriaAmount      = "amount"
	CriteriaCurrency    = "currency"
	CriteriaReference   = "reference"
	CriteriaDescription = "description"
	CriteriaDate        = "date"
)

// Operators a matching rule criterion may apply.
const (
	OperatorEquals      = "equals"
	OperatorGreaterThan = "greater_than"
	OperatorLessThan    = "less_than"
	OperatorContains    = "contains"
)

// Reconciliation strategies.
const (
	StrategyOneToOne  = "one_to_one"
	StrategyOneToMany = "one_to_many"
	StrategyManyToOne = "many_to_one"
)

// MatcherCriteria is a single field comparison within a matching rule.
// AllowableDrift loosens the comparison for fields that support it.
type MatcherCriteria struct {
	Field          string  `json:"field"`
	Operator       string  `json:"operator"`
	AllowableDrift float64 `json:"allowable_drift,omitempty"`
}

// Matcher is a named set of criteria the server uses to pair external
// records against ledger transactions.
type Matcher struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Criteria    []MatcherCriteria `json:"criteria"`
}

// MatchingRule is a matcher as stored by the server.
type MatchingRule struct {
	Matcher

	RuleID    string    `json:"rule_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Upload identifies an uploaded external record batch.
type Upload struct {
	UploadID    string `json:"upload_id"`
	RecordCount int    `json:"record_count"`
	Source      string `json:"source"`
}

// RunReconciliationRequest starts a reconciliation over an uploaded batch.
type RunReconciliationRequest struct {
	UploadID         string   `json:"upload_id"`
	Strategy         string   `json:"strategy"`
	DryRun           bool     `json:"dry_run"`
	GroupingCriteria string   `json:"grouping_criteria,omitempty"`
	MatchingRuleIDs  []string `json:"matching_rule_ids"`
}

// Reconciliation reports a started reconciliation run.
type Reconciliation struct {
	ReconciliationID string    `json:"reconciliation_id"`
	UploadID         string    `json:"upload_id,omitempty"`
	Status           string    `json:"status"`
	MatchedCount     int       `json:"matched_transactions,omitempty"`
	UnmatchedCount   int       `json:"unmatched_transactions,omitempty"`
	StartedAt        time.Time `json:"started_at,omitempty"`
}

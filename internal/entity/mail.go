package entity

// MetricDelta is one tracked metric in the account summary email:
// the current-period value against the prior-period value.
type MetricDelta struct {
	Label     string
	Current   string
	Prior     string
	ChangePct string
	// Direction is "up", "down" or "" when unchanged.
	Direction string
	// New is set when the prior value is zero and the current is positive.
	New bool
}

// AccountSummary is the rendered-template payload for the summary email.
type AccountSummary struct {
	AccountName string
	PeriodStart string
	PeriodEnd   string
	PriorStart  string
	PriorEnd    string
	Metrics     []MetricDelta
}

package hermes

import "time"

type ComparisonCompletedEvent struct {
	RunID         string    `json:"run_id"`
	Shape         string    `json:"shape"`
	ResultCount   int       `json:"result_count"`
	TotalUploaded int       `json:"total_uploaded"`
	Qualified     int       `json:"qualified"`
	Fallbacks     int       `json:"fallbacks"`
	TopProposal   string    `json:"top_proposal,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

type ComparisonPartialEvent struct {
	RunID         string `json:"run_id"`
	ResultCount   int    `json:"result_count"`
	TotalUploaded int    `json:"total_uploaded"`
}

type ComparisonFailedEvent struct {
	RunID string `json:"run_id"`
	Error string `json:"error"`
}

type TableSavedEvent struct {
	TableID   string `json:"table_id"`
	TableName string `json:"table_name"`
	Rows      int    `json:"rows"`
}

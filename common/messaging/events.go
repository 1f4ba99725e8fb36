package messaging

import "time"

const (
	// ExtractionCompletedTopic carries events for finished extractions.
	ExtractionCompletedTopic = "vendors.extraction.completed"
)

// ExtractionOperation identifies which entry point produced an event.
type ExtractionOperation string

const (
	// OperationFetchAll is a full (capped) extraction.
	OperationFetchAll ExtractionOperation = "fetch:all"
	// OperationFetchPage is a single-page extraction.
	OperationFetchPage ExtractionOperation = "fetch:page"
)

// ExtractionCompletedEvent is published after every successful extraction.
type ExtractionCompletedEvent struct {
	ID           string              `json:"id"`
	Operation    ExtractionOperation `json:"operation"`
	TotalRecords int                 `json:"total_records"`
	HasMore      bool                `json:"has_more"`
	DurationMs   int64               `json:"duration_ms"`
	ExtractedAt  time.Time           `json:"extracted_at"`
}

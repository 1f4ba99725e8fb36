package models

import "time"

// VendorRecord is the projected output shape for a single vendor row.
// JSON field names are part of the wire contract with existing consumers
// and must not change.
type VendorRecord struct {
	ID              string  `json:"id"`
	EntityCode      string  `json:"entityCode"`
	DisplayLabel    string  `json:"displayLabel"`
	CompanyName     string  `json:"companyName"`
	IsInactive      bool    `json:"isInactive"`
	SubsidiaryLabel *string `json:"subsidiaryLabel"`
	SubsidiaryID    *string `json:"subsidiaryId"`
	CategoryLabel   *string `json:"categoryLabel"`
	CategoryID      *string `json:"categoryId"`
}

// PageRequest selects one window of the result set. Both fields are
// optional on the wire; missing values take their documented defaults.
// A pageSize outside 1..1000 is clamped rather than rejected.
type PageRequest struct {
	StartIndex *int `json:"startIndex" validate:"omitempty,gte=0"`
	PageSize   *int `json:"pageSize"`
}

// VendorListResult is the success envelope for a full extraction.
type VendorListResult struct {
	Success      bool           `json:"success"`
	ExtractedAt  time.Time      `json:"extractedAt"`
	TotalVendors int            `json:"totalVendors"`
	HasMore      bool           `json:"hasMore"`
	Vendors      []VendorRecord `json:"vendors"`
	Message      string         `json:"message"`
}

// VendorPageResult is the success envelope for a single page.
type VendorPageResult struct {
	Success       bool           `json:"success"`
	ExtractedAt   time.Time      `json:"extractedAt"`
	StartIndex    int            `json:"startIndex"`
	PageSize      int            `json:"pageSize"`
	ReturnedCount int            `json:"returnedCount"`
	HasMore       bool           `json:"hasMore"`
	Vendors       []VendorRecord `json:"vendors"`
	Message       string         `json:"message"`
}

// ExtractionFailure is the envelope returned when an extraction could not
// complete. It never carries a partial record list.
type ExtractionFailure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewExtractionFailure stringifies err into the failure envelope.
func NewExtractionFailure(err error, message string) ExtractionFailure {
	return ExtractionFailure{
		Success: false,
		Error:   err.Error(),
		Message: message,
	}
}

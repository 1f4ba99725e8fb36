package common

const (
	// AppName is the name of the application
	AppName = "vendor-extract-service"

	// VendorRecordType is the record type queried against the host search
	VendorRecordType = "vendor"

	// MaxWindowSize is the hard cap on rows retrieved in a single extraction
	MaxWindowSize = 1000
)

// Package extractor implements paginated, idempotent extraction of vendor
// records from the host platform's record search.
package extractor

import (
	"context"
	"fmt"
	"time"

	"github.com/lumenops/vendor-extract-service/common"
	"github.com/lumenops/vendor-extract-service/common/models"
	"github.com/lumenops/vendor-extract-service/search"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Columns projected for every vendor extraction.
const (
	colInternalID  = "internalid"
	colEntityID    = "entityid"
	colCompanyName = "companyname"
	colIsInactive  = "isinactive"
	colSubsidiary  = "subsidiary"
	colCategory    = "category"
)

func vendorColumns() []string {
	return []string{colInternalID, colEntityID, colCompanyName, colIsInactive, colSubsidiary, colCategory}
}

// PagedRecordExtractor turns a vendor query into mapped result windows.
// Each call is a stateless transform; the extractor holds no state between
// calls beyond its injected collaborators.
type PagedRecordExtractor struct {
	search search.RecordSearch
	logger zerolog.Logger
}

// New creates an extractor over the given record-search port.
func New(rs search.RecordSearch, logger zerolog.Logger) *PagedRecordExtractor {
	return &PagedRecordExtractor{
		search: rs,
		logger: logger,
	}
}

// BuildQuery returns the vendor query: the fixed column projection plus a
// default filter restricting to active records. Overrides are appended
// after the default filter. Pure, no side effects.
func (e *PagedRecordExtractor) BuildQuery(overrides ...search.Filter) search.QuerySpec {
	filters := make([]search.Filter, 0, len(overrides)+1)
	filters = append(filters, search.Filter{Field: colIsInactive, Op: "is", Value: "F"})
	filters = append(filters, overrides...)

	return search.NewQuerySpec(common.VendorRecordType, filters, vendorColumns())
}

// FetchAll retrieves up to MaxWindowSize active vendors and probes one row
// past the cap to report whether more exist.
func (e *PagedRecordExtractor) FetchAll(ctx context.Context) (models.VendorListResult, error) {
	q := e.BuildQuery()

	rows, err := e.search.Search(ctx, q, 0, common.MaxWindowSize)
	if err != nil {
		return models.VendorListResult{}, fmt.Errorf("fetching vendors: %w", err)
	}

	vendors := lo.Map(rows, func(r search.RawRecord, _ int) models.VendorRecord {
		return MapRecord(r)
	})

	hasMore := false
	if len(rows) == common.MaxWindowSize {
		hasMore = e.tryProbeExists(ctx, q, common.MaxWindowSize)
	}

	e.logger.Info().
		Int("count", len(vendors)).
		Bool("has_more", hasMore).
		Msg("Vendor extraction completed")

	return models.VendorListResult{
		Success:      true,
		ExtractedAt:  time.Now().UTC(),
		TotalVendors: len(vendors),
		HasMore:      hasMore,
		Vendors:      vendors,
		Message:      fmt.Sprintf("Extracted %d vendors", len(vendors)),
	}, nil
}

// FetchPage retrieves the window [startIndex, startIndex+pageSize) and
// probes one row past it. Out-of-range paging inputs are normalized first.
func (e *PagedRecordExtractor) FetchPage(ctx context.Context, req models.PageRequest) (models.VendorPageResult, error) {
	start, size := NormalizePage(req)
	q := e.BuildQuery()

	rows, err := e.search.Search(ctx, q, start, start+size)
	if err != nil {
		return models.VendorPageResult{}, fmt.Errorf("fetching vendor page at %d: %w", start, err)
	}

	vendors := lo.Map(rows, func(r search.RawRecord, _ int) models.VendorRecord {
		return MapRecord(r)
	})

	hasMore := false
	if len(rows) == size {
		hasMore = e.tryProbeExists(ctx, q, start+size)
	}

	e.logger.Info().
		Int("start_index", start).
		Int("page_size", size).
		Int("count", len(vendors)).
		Bool("has_more", hasMore).
		Msg("Vendor page extraction completed")

	return models.VendorPageResult{
		Success:       true,
		ExtractedAt:   time.Now().UTC(),
		StartIndex:    start,
		PageSize:      size,
		ReturnedCount: len(vendors),
		HasMore:       hasMore,
		Vendors:       vendors,
		Message:       fmt.Sprintf("Extracted %d vendors starting at index %d", len(vendors), start),
	}, nil
}

// tryProbeExists checks whether a record exists at index. The probe is
// best effort: any fault reads as "no more records" rather than an error.
func (e *PagedRecordExtractor) tryProbeExists(ctx context.Context, q search.QuerySpec, index int) bool {
	result := mo.TupleToResult(e.search.Search(ctx, q, index, index+1))
	if result.IsError() {
		e.logger.Debug().
			Err(result.Error()).
			Int("index", index).
			Msg("Existence probe failed, assuming no more records")
	}
	return len(result.OrElse(nil)) > 0
}

// NormalizePage applies the paging defaults: startIndex < 0 or missing
// becomes 0, pageSize outside 1..MaxWindowSize or missing becomes
// MaxWindowSize.
func NormalizePage(req models.PageRequest) (start, size int) {
	start = 0
	if req.StartIndex != nil && *req.StartIndex > 0 {
		start = *req.StartIndex
	}

	size = common.MaxWindowSize
	if req.PageSize != nil && *req.PageSize > 0 && *req.PageSize <= common.MaxWindowSize {
		size = *req.PageSize
	}

	return start, size
}

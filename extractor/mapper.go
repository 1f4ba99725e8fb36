package extractor

import (
	"fmt"

	"github.com/lumenops/vendor-extract-service/common/models"
	"github.com/lumenops/vendor-extract-service/search"
	"github.com/samber/lo"
)

// MapRecord projects a raw search row into the vendor output shape. It is
// total: any well-formed row maps without error. The display label is the
// first non-empty of company name, entity code and a synthesized
// "Vendor {id}" fallback. Absent reference fields map to nil, never "".
func MapRecord(raw search.RawRecord) models.VendorRecord {
	id := raw.Value(colInternalID)
	entityCode := raw.Value(colEntityID)
	companyName := raw.Value(colCompanyName)

	label, _ := lo.Coalesce(companyName, entityCode, fmt.Sprintf("Vendor %s", id))

	return models.VendorRecord{
		ID:              id,
		EntityCode:      entityCode,
		DisplayLabel:    label,
		CompanyName:     companyName,
		IsInactive:      raw.Value(colIsInactive) == "T",
		SubsidiaryLabel: optional(raw.Text(colSubsidiary)),
		SubsidiaryID:    optional(raw.Value(colSubsidiary)),
		CategoryLabel:   optional(raw.Text(colCategory)),
		CategoryID:      optional(raw.Value(colCategory)),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

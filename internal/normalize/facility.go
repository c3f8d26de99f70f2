package normalize

import (
	"github.com/gyeh/facilitymap/internal/model"
	"github.com/gyeh/facilitymap/internal/rawtable"
)

// ToFacility maps one raw registry row onto the canonical Facility record.
// ok is false when the row lacks a required field (facility code or any
// name); such rows are filtered data, not errors, and contribute nothing.
//
// Optional fields are best-effort: garbage survives, absence becomes "".
func ToFacility(rec rawtable.Record) (f *model.Facility, ok bool) {
	code := rec.Field(facilityCodeAliases...)
	if code == "" {
		return nil, false
	}
	code = ZeroPad(code, 7)

	// Commercial name beats legal name for display.
	name := rec.Field(commercialNameAliases...)
	if name == "" {
		name = rec.Field(legalNameAliases...)
	}
	if name == "" {
		return nil, false
	}
	name = TitleCase(name)

	// 6-digit municipality code; never fabricated when unresolvable.
	muni := rec.Field(municipalityAliases...)
	if muni != "" {
		muni = ZeroPad(muni, 6)
	}

	typeCode := ZeroPad(rec.FieldOr("02", typeCodeAliases...), 2)
	class := model.ClassifyType(typeCode)

	governance := model.GovernanceLabel(rec.FieldOr("M", GovernanceAliases...))

	street := rec.Field(streetAliases...)
	number := rec.Field(numberAliases...)

	return &model.Facility{
		ID:         code,
		Name:       name,
		Tier:       class.Tier,
		TypeLabel:  class.Label,
		Governance: governance,
		RegionCode: muni,
		Address:    ComposeAddress(street, number),
		District:   rec.Field(districtAliases...),
		PostalCode: DigitsOnly(rec.Field(postalAliases...)),
		Phone:      DigitsOnly(rec.Field(phoneAliases...)),
	}, true
}

// ComposeAddress joins street and house number. A number with no street
// stands alone rather than producing ", 100".
func ComposeAddress(street, number string) string {
	switch {
	case street != "" && number != "":
		return street + ", " + number
	case number != "":
		return number
	default:
		return street
	}
}

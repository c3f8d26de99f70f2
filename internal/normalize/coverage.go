package normalize

import "github.com/gyeh/facilitymap/internal/rawtable"

// FieldColumn reports which schema column, if any, one logical output field
// resolves from.
type FieldColumn struct {
	Field  string
	Column string
	Found  bool
}

// SchemaCoverage inspects a table's schema and reports the column each
// logical field would be read from. Dry runs use it to show how much of a
// snapshot vintage the alias lists recognize; an unrecognized required
// field means every row will be skipped, which is a reportable outcome,
// never a hard failure.
func SchemaCoverage(t *rawtable.Table) []FieldColumn {
	specs := []struct {
		name    string
		aliases []string
	}{
		{"facility_code", facilityCodeAliases},
		{"commercial_name", commercialNameAliases},
		{"legal_name", legalNameAliases},
		{"municipality", municipalityAliases},
		{"facility_type", typeCodeAliases},
		{"governance", GovernanceAliases},
		{"deactivation", DeactivationAliases},
		{"street", streetAliases},
		{"number", numberAliases},
		{"district", districtAliases},
		{"postal_code", postalAliases},
		{"phone", phoneAliases},
	}

	out := make([]FieldColumn, 0, len(specs))
	for _, s := range specs {
		col, found := t.Column(s.aliases...)
		out = append(out, FieldColumn{Field: s.name, Column: col, Found: found})
	}
	return out
}

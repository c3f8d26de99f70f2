package generate

import (
	"github.com/gyeh/facilitymap/internal/model"
	"github.com/gyeh/facilitymap/internal/normalize"
	"github.com/gyeh/facilitymap/internal/rawtable"
)

// RegionResult carries one region's normalized facilities and processing
// tallies.
type RegionResult struct {
	Region             string
	Facilities         []*model.Facility
	RowsRead           int
	DroppedAffiliation int
	DroppedInactive    int
	SkippedRows        int
}

// ProcessRegion applies the table-level filters and per-row normalization
// to one region's snapshot.
//
// Both filters resolve their column once per table and compare the raw cell
// value: a row only passes the affiliation filter when the cell is exactly
// a public governance code, while tables that lack the column entirely pass
// every row through.
func ProcessRegion(region string, tbl *rawtable.Table) *RegionResult {
	res := &RegionResult{Region: region, RowsRead: tbl.NumRows()}

	govCol, govFound := tbl.Column(normalize.GovernanceAliases...)
	deactCol, deactFound := tbl.Column(normalize.DeactivationAliases...)

	for i := 0; i < tbl.NumRows(); i++ {
		rec := tbl.Row(i)

		if govFound && !model.PublicGovernance[rec.Get(govCol)] {
			res.DroppedAffiliation++
			continue
		}
		if deactFound && !noDeactivation(rec.Get(deactCol)) {
			res.DroppedInactive++
			continue
		}

		f, ok := normalize.ToFacility(rec)
		if !ok {
			res.SkippedRows++
			continue
		}
		res.Facilities = append(res.Facilities, f)
	}

	return res
}

// noDeactivation reports whether the cell records no deactivation date.
// Active facilities carry one of the registry's zero placeholders.
func noDeactivation(v string) bool {
	switch v {
	case "", "0", "00000000":
		return true
	}
	return false
}

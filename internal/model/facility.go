package model

import "github.com/google/uuid"

// Facility is the canonical per-facility record served to the map application.
// JSON field names are the consumer contract and must remain stable.
type Facility struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Tier       Tier   `json:"tier"`
	TypeLabel  string `json:"facility_type_label"`
	Governance string `json:"governance"`
	RegionCode string `json:"region_code6"`
	Address    string `json:"address"`
	District   string `json:"district"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
}

// ServingRow is a Facility tagged with load metadata, ready for COPY into
// the map_serving.facilities table.
type ServingRow struct {
	LoadBatchID uuid.UUID
	Region      string
	Period      string

	Facility
}

// ServingColumns returns the ordered column names for COPY into
// map_serving.facilities.
func ServingColumns() []string {
	return []string{
		"facility_id",
		"region",
		"period",
		"load_batch_id",
		"name",
		"tier",
		"facility_type_label",
		"governance",
		"region_code6",
		"address",
		"district",
		"postal_code",
		"phone",
	}
}

// CopyValues returns the row values in the same order as ServingColumns(),
// suitable for pgx CopyFromSource.
func (r *ServingRow) CopyValues() []any {
	return []any{
		r.ID,
		r.Region,
		r.Period,
		r.LoadBatchID,
		r.Name,
		string(r.Tier),
		r.TypeLabel,
		r.Governance,
		r.RegionCode,
		r.Address,
		r.District,
		r.PostalCode,
		r.Phone,
	}
}

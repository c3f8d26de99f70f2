package model

// Tier is the coarse service-level classification of a facility.
type Tier string

const (
	TierPrimary   Tier = "primary"
	TierSecondary Tier = "secondary"
	TierTertiary  Tier = "tertiary"
)

// FacilityClass pairs a tier with the display label for one registry
// facility type code.
type FacilityClass struct {
	Tier  Tier
	Label string
}

// GenericClass is the fallback classification for type codes absent from
// facilityTypes. An unmapped code is expected (new codes appear between
// registry vintages) and degrades here rather than erroring.
var GenericClass = FacilityClass{TierPrimary, "Generic Health Unit"}

// facilityTypes maps the registry's 2-digit facility type codes to
// (tier, display label). Derived from the national type-code table.
var facilityTypes = map[string]FacilityClass{
	"01": {TierPrimary, "Health Post"},
	"02": {TierPrimary, "Health Center/Basic Unit"},
	"04": {TierSecondary, "Polyclinic"},
	"05": {TierTertiary, "General Hospital"},
	"06": {TierTertiary, "Specialized Hospital"},
	"07": {TierTertiary, "Day Hospital"},
	"08": {TierSecondary, "General Emergency Room"},
	"15": {TierSecondary, "Mixed Care Unit"},
	"20": {TierSecondary, "Urgent Care Clinic"},
	"21": {TierSecondary, "24h Emergency Care Unit"},
	"22": {TierPrimary, "Independent Practice Office"},
	"32": {TierPrimary, "Specialized Clinic"},
	"36": {TierSecondary, "Specialty Clinic/Center"},
	"39": {TierSecondary, "Diagnostic and Therapy Service"},
	"43": {TierPrimary, "Pharmacy"},
	"50": {TierPrimary, "Health Surveillance Unit"},
	"61": {TierTertiary, "Birth Center"},
	"62": {TierTertiary, "Standalone Day Hospital"},
	"64": {TierSecondary, "Care Regulation Center"},
	"65": {TierSecondary, "Specialized Urgent Care"},
	"67": {TierPrimary, "Public Health Laboratory"},
	"69": {TierSecondary, "Blood Center"},
	"70": {TierPrimary, "Psychosocial Care Center"},
	"71": {TierPrimary, "Family Health Support Center"},
	"72": {TierPrimary, "Indigenous Health Unit"},
	"73": {TierSecondary, "General Emergency Room"},
	"74": {TierSecondary, "Specialized Emergency Room"},
	"75": {TierTertiary, "Inpatient Care Home"},
	"76": {TierSecondary, "Worker Health Reference Center"},
	"77": {TierPrimary, "Home Care"},
	"78": {TierPrimary, "Therapeutic Community"},
	"79": {TierPrimary, "Orthopedic Workshop"},
	"80": {TierSecondary, "Health Laboratory"},
	"81": {TierSecondary, "Teaching Health Center"},
	"82": {TierSecondary, "Mobile Emergency Unit"},
	"83": {TierPrimary, "Community Health Gym"},
	"84": {TierSecondary, "Emergency Dispatch Center"},
	"85": {TierPrimary, "Home Care Service"},
	"86": {TierPrimary, "Psychosocial Care Unit"},
}

// ClassifyType returns the (tier, label) pair for a 2-char facility type
// code, falling back to GenericClass for unknown codes.
func ClassifyType(code string) FacilityClass {
	if c, ok := facilityTypes[code]; ok {
		return c
	}
	return GenericClass
}

// PublicGovernance is the set of governance codes considered affiliated
// with the public health system: M (municipal), E (state), D (dual
// municipal/state management). S (no public management) is excluded.
var PublicGovernance = map[string]bool{
	"M": true,
	"E": true,
	"D": true,
}

// governanceLabels maps governance codes to display labels. Dual-managed
// facilities display as municipal.
var governanceLabels = map[string]string{
	"M": "Municipal",
	"E": "State",
	"D": "Municipal",
}

// GovernanceLabel returns the display label for a governance code.
// Unmapped codes default to "Municipal".
func GovernanceLabel(code string) string {
	if l, ok := governanceLabels[code]; ok {
		return l
	}
	return "Municipal"
}

package model

import "testing"

func TestClassifyType_Known(t *testing.T) {
	c := ClassifyType("02")
	if c.Tier != TierPrimary {
		t.Errorf("tier = %q, want %q", c.Tier, TierPrimary)
	}
	if c.Label != "Health Center/Basic Unit" {
		t.Errorf("label = %q, want Health Center/Basic Unit", c.Label)
	}

	if c := ClassifyType("05"); c.Tier != TierTertiary || c.Label != "General Hospital" {
		t.Errorf("ClassifyType(05) = %+v", c)
	}
}

func TestClassifyType_UnknownDefaultsToGeneric(t *testing.T) {
	for _, code := range []string{"99", "00", "", "XX"} {
		c := ClassifyType(code)
		if c.Tier != TierPrimary {
			t.Errorf("ClassifyType(%q).Tier = %q, want primary", code, c.Tier)
		}
		if c.Label != "Generic Health Unit" {
			t.Errorf("ClassifyType(%q).Label = %q, want Generic Health Unit", code, c.Label)
		}
	}
}

func TestClassifyType_TierAlwaysEnumerated(t *testing.T) {
	valid := map[Tier]bool{TierPrimary: true, TierSecondary: true, TierTertiary: true}
	for code, c := range facilityTypes {
		if !valid[c.Tier] {
			t.Errorf("type %s has tier %q outside the enumeration", code, c.Tier)
		}
		if c.Label == "" {
			t.Errorf("type %s has empty label", code)
		}
	}
}

func TestGovernanceLabel(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"M", "Municipal"},
		{"E", "State"},
		{"D", "Municipal"}, // dual management displays as municipal
		{"S", "Municipal"},
		{"", "Municipal"},
		{"Z", "Municipal"},
	}
	for _, c := range cases {
		if got := GovernanceLabel(c.code); got != c.want {
			t.Errorf("GovernanceLabel(%q) = %q, want %q", c.code, got, c.want)
		}
	}
}

func TestPublicGovernance(t *testing.T) {
	for _, code := range []string{"M", "E", "D"} {
		if !PublicGovernance[code] {
			t.Errorf("code %s should be public-affiliated", code)
		}
	}
	if PublicGovernance["S"] {
		t.Error("code S (no public management) must not be public-affiliated")
	}
}

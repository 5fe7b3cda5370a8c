// ABOUTME: User profile model with display name and weight unit.
// ABOUTME: The weight unit applies profile-wide; stored values are never converted.
package models

// WeightUnit is the profile-wide unit for logged weights.
type WeightUnit string

const (
	UnitKg WeightUnit = "kg"
	UnitLb WeightUnit = "lb"
)

// Profile holds per-user settings gathered at onboarding.
type Profile struct {
	Name       string     `json:"name,omitempty"`
	WeightUnit WeightUnit `json:"weight_unit"`
}

// DefaultProfile returns the profile used before onboarding.
func DefaultProfile() Profile {
	return Profile{WeightUnit: UnitKg}
}

// Unit returns the profile's weight unit, defaulting to kg.
func (p Profile) Unit() WeightUnit {
	if p.WeightUnit == UnitLb {
		return UnitLb
	}
	return UnitKg
}

// ABOUTME: MuscleGroup enum and normalization for exercise classification.
// ABOUTME: Maps free-form group names onto the fixed canonical set of six.
package models

import "strings"

// MuscleGroup is one of the six canonical muscle groups every exercise
// is attributed to for volume distribution.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "Chest"
	MuscleBack      MuscleGroup = "Back"
	MuscleLegs      MuscleGroup = "Legs"
	MuscleShoulders MuscleGroup = "Shoulders"
	MuscleArms      MuscleGroup = "Arms"
	MuscleCore      MuscleGroup = "Core"
)

// AllMuscleGroups returns the canonical groups in display order.
var AllMuscleGroups = []MuscleGroup{
	MuscleChest, MuscleBack, MuscleLegs,
	MuscleShoulders, MuscleArms, MuscleCore,
}

// muscleAliases maps lowercased free-form names to canonical groups.
// Includes the Spanish labels used by older exports.
var muscleAliases = map[string]MuscleGroup{
	"chest":      MuscleChest,
	"pecho":      MuscleChest,
	"pec":        MuscleChest,
	"pecs":       MuscleChest,
	"back":       MuscleBack,
	"espalda":    MuscleBack,
	"lats":       MuscleBack,
	"legs":       MuscleLegs,
	"piernas":    MuscleLegs,
	"quads":      MuscleLegs,
	"hamstrings": MuscleLegs,
	"glutes":     MuscleLegs,
	"calves":     MuscleLegs,
	"shoulders":  MuscleShoulders,
	"hombros":    MuscleShoulders,
	"delts":      MuscleShoulders,
	"arms":       MuscleArms,
	"brazos":     MuscleArms,
	"biceps":     MuscleArms,
	"triceps":    MuscleArms,
	"forearms":   MuscleArms,
	"core":       MuscleCore,
	"abs":        MuscleCore,
	"abdominals": MuscleCore,
}

// NormalizeMuscleGroup maps a free-form group name onto the canonical
// set. Unknown or empty names fall back to Core; attribution must never
// fail, so the function is total.
func NormalizeMuscleGroup(raw string) MuscleGroup {
	if g, ok := muscleAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return g
	}
	return MuscleCore
}

// IsValidMuscleGroup reports whether s is already a canonical group name.
func IsValidMuscleGroup(s string) bool {
	for _, g := range AllMuscleGroups {
		if string(g) == s {
			return true
		}
	}
	return false
}

package inheritance

import (
	"strings"

	"charger/models/constants"
)

const (
	Unknown constants.ModeOfInheritance = iota
	AutosomalDominant
	AutosomalRecessive
	XLinked
)

func ModeToString(mode constants.ModeOfInheritance) string {
	switch mode {
	case AutosomalDominant:
		return "AUTOSOMAL_DOMINANT"
	case AutosomalRecessive:
		return "AUTOSOMAL_RECESSIVE"
	case XLinked:
		return "X_LINKED"
	default:
		return "UNKNOWN"
	}
}

// FromTableValue parses the mode_of_inheritance column of the
// inheritance gene table ("autosomal dominant", "AD", "x-linked", ..).
func FromTableValue(text string) constants.ModeOfInheritance {
	normalized := strings.ToLower(strings.TrimSpace(text))
	normalized = strings.ReplaceAll(normalized, "_", " ")
	normalized = strings.ReplaceAll(normalized, "-", " ")

	switch {
	case normalized == "ad" || strings.Contains(normalized, "dominant"):
		return AutosomalDominant
	case normalized == "ar" || strings.Contains(normalized, "recessive"):
		return AutosomalRecessive
	case normalized == "xl" || strings.Contains(normalized, "x linked"):
		return XLinked
	default:
		return Unknown
	}
}

// LossOfFunctionRelevant reports whether loss of function is a known
// disease mechanism under the given inheritance mode. Haploinsufficiency
// only applies when a single hit suffices.
func LossOfFunctionRelevant(mode constants.ModeOfInheritance) bool {
	return mode == AutosomalDominant || mode == XLinked
}

package zygosity

import (
	"strings"

	"charger/models/constants"
)

const (
	Unknown constants.Zygosity = iota
	// Diploid or higher
	Heterozygous
	HomozygousReference
	HomozygousAlternate

	// Haploid (deliberately below diploid for sequential id'ing purposes)
	Reference
	Alternate
)

func IsKnown(value int) bool {
	return value > int(Unknown) && value <= int(Alternate)
}

func ZygosityToString(zyg constants.Zygosity) string {
	switch zyg {
	// Haploid
	case Reference:
		return "REFERENCE"
	case Alternate:
		return "ALTERNATE"

	// Diploid or higher
	case Heterozygous:
		return "HETEROZYGOUS"
	case HomozygousReference:
		return "HOMOZYGOUS_REFERENCE"
	case HomozygousAlternate:
		return "HOMOZYGOUS_ALTERNATE"
	default:
		return "UNKNOWN"
	}
}

// FromGenotype interprets a raw VCF GT value ("0/1", "1|1", "0", ..).
// Anything with a missing allele ('.') stays Unknown.
func FromGenotype(gt string) constants.Zygosity {
	gt = strings.TrimSpace(gt)
	if gt == "" || strings.Contains(gt, ".") {
		return Unknown
	}

	alleles := strings.FieldsFunc(gt, func(r rune) bool {
		return r == '/' || r == '|'
	})

	switch len(alleles) {
	case 1:
		if alleles[0] == "0" {
			return Reference
		}
		return Alternate
	case 2:
		if alleles[0] == alleles[1] {
			if alleles[0] == "0" {
				return HomozygousReference
			}
			return HomozygousAlternate
		}
		return Heterozygous
	default:
		return Unknown
	}
}

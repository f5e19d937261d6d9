package consequence

import (
	"strings"

	"charger/models/constants"
)

const (
	Unknown        constants.Consequence = ""
	Truncating     constants.Consequence = "TRUNCATING"
	Missense       constants.Consequence = "MISSENSE"
	Splice         constants.Consequence = "SPLICE"
	Synonymous     constants.Consequence = "SYNONYMOUS"
	Noncoding      constants.Consequence = "NONCODING"
	InframeIndel   constants.Consequence = "INFRAME_INDEL"
	StartStopAlter constants.Consequence = "START_STOP_ALTERED"
)

// truncatingTerms are the VEP/SO annotation terms considered
// null (protein truncating) calls
var truncatingTerms = []string{
	"stop_gained",
	"frameshift_variant",
	"splice_acceptor_variant",
	"splice_donor_variant",
	"transcript_ablation",
	"start_lost",
	"stop_lost",
}

var termCategories = map[string]constants.Consequence{
	"missense_variant":                   Missense,
	"inframe_insertion":                  InframeIndel,
	"inframe_deletion":                   InframeIndel,
	"splice_region_variant":              Splice,
	"synonymous_variant":                 Synonymous,
	"stop_retained_variant":              Synonymous,
	"intron_variant":                     Noncoding,
	"upstream_gene_variant":              Noncoding,
	"downstream_gene_variant":            Noncoding,
	"5_prime_utr_variant":                Noncoding,
	"3_prime_utr_variant":                Noncoding,
	"intergenic_variant":                 Noncoding,
	"non_coding_transcript_exon_variant": Noncoding,
}

// FromAnnotation maps a raw annotation term (possibly an '&' separated
// list, most severe first) to a consequence category.
func FromAnnotation(term string) constants.Consequence {
	term = strings.TrimSpace(term)
	if term == "" {
		return Unknown
	}

	// only the leading (most severe) term decides the category
	if ampersand := strings.Index(term, "&"); ampersand != -1 {
		term = term[:ampersand]
	}
	term = strings.ToLower(strings.TrimSpace(term))

	for _, t := range truncatingTerms {
		if t == term {
			return Truncating
		}
	}
	if cat, ok := termCategories[term]; ok {
		return cat
	}
	return Unknown
}

func IsTruncating(c constants.Consequence) bool {
	return c == Truncating
}

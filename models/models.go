package models

import (
	"fmt"

	"charger/models/constants"
)

var VcfHeaders = []string{"chrom", "pos", "id", "ref", "alt", "qual", "filter", "info", "format"}

// VariantRecord is the unit of work: one annotated germline variant
// flowing through the evidence modules. Identity fields come straight
// from the input VCF; the Calls list and the score/classification
// fields are appended by the engine during a run.
type VariantRecord struct {
	Chrom string `json:"chrom"`
	Pos   int    `json:"pos"`
	Id    string `json:"id"`
	Ref   string `json:"ref"`
	Alt   string `json:"alt"`

	GeneSymbol      string                `json:"geneSymbol"`
	Consequence     constants.Consequence `json:"consequence"`
	AlleleFrequency *float64              `json:"alleleFrequency"` // nil when absent from the annotation
	Zygosity        constants.Zygosity    `json:"zygosity"`

	Info []Info `json:"info"`

	Calls []*EvidenceCall `json:"calls"`

	// set by the database-annotation override when it fires for this record
	Overridden bool `json:"overridden"`

	AcmgScore    int `json:"acmgScore"`
	ChargerScore int `json:"chargerScore"`

	AcmgClassification    constants.Classification `json:"acmgClassification"`
	ChargerClassification constants.Classification `json:"chargerClassification"`

	// per-record audit trail (malformed fields, suppressions, ..)
	Traces []string `json:"traces"`
}

type Info struct {
	Id    string `json:"id"`
	Value string `json:"value"`
}

// Key is the exact variant identity used by all reference lookups.
// No fuzzy matching anywhere.
func (v *VariantRecord) Key() string {
	return fmt.Sprintf("%s:%d:%s>%s", v.Chrom, v.Pos, v.Ref, v.Alt)
}

func (v *VariantRecord) AddTrace(format string, args ...interface{}) {
	v.Traces = append(v.Traces, fmt.Sprintf(format, args...))
}

// EvidenceCall is the outcome of evaluating one evidence module against
// one variant. Point values for both schemes are stamped from the
// configured score tables at creation time; a call is never mutated
// afterwards.
type EvidenceCall struct {
	Code   constants.EvidenceCode   `json:"code"`
	Status constants.EvidenceStatus `json:"status"`
	Scheme constants.Scheme         `json:"scheme"`

	AcmgPoints    int `json:"acmgPoints"`
	ChargerPoints int `json:"chargerPoints"`

	// optional detail for the audit trail (skip reason, matched entry, ..)
	Note string `json:"note,omitempty"`
}

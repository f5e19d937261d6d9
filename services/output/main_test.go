package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charger/models"
	cls "charger/models/constants/classification"
	"charger/models/constants/consequence"
	e "charger/models/constants/evidence"
)

func scoredRecord() *models.VariantRecord {
	af := 0.0001
	return &models.VariantRecord{
		Chrom:           "17",
		Pos:             41245466,
		Id:              "rs80357906",
		Ref:             "G",
		Alt:             "A",
		GeneSymbol:      "BRCA1",
		Consequence:     consequence.Truncating,
		AlleleFrequency: &af,
		Info: []models.Info{
			{Id: "GENE", Value: "BRCA1"},
			{Id: "AF", Value: "0.0001"},
		},
		Calls: []*models.EvidenceCall{
			{Code: e.PVS1, Status: e.Met, Scheme: e.SchemeBoth, AcmgPoints: 8, ChargerPoints: 8},
			{Code: e.PS1, Status: e.SkippedMissingResource, Scheme: e.SchemeBoth},
			{Code: e.PSC1, Status: e.NotMet, Scheme: e.SchemeCharger},
		},
		AcmgScore:             8,
		ChargerScore:          8,
		AcmgClassification:    cls.LikelyPathogenic,
		ChargerClassification: cls.LikelyPathogenic,
	}
}

func TestWriteResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, []*models.VariantRecord{scoredRecord()}, false))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	header := strings.Split(lines[0], "\t")
	row := strings.Split(lines[1], "\t")
	require.Equal(t, len(header), len(row))

	byColumn := map[string]string{}
	for i, name := range header {
		byColumn[name] = row[i]
	}

	assert.Equal(t, "17", byColumn["chrom"])
	assert.Equal(t, "41245466", byColumn["pos"])
	assert.Equal(t, "BRCA1", byColumn["gene"])
	assert.Equal(t, "0.0001", byColumn["allele_frequency"])
	assert.Equal(t, "8", byColumn["acmg_score"])
	assert.Equal(t, "LIKELY_PATHOGENIC", byColumn["acmg_classification"])

	// skipped-vs-not-met survives into the evidence columns
	assert.Contains(t, byColumn["acmg_evidence"], "PVS1:MET")
	assert.Contains(t, byColumn["acmg_evidence"], "PS1:SKIPPED_MISSING_RESOURCE")
	assert.Equal(t, "PSC1:NOT_MET", byColumn["charger_evidence"])
}

func TestWriteResultsVcfDetails(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, []*models.VariantRecord{scoredRecord()}, true))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "\tvcf_info"))
	assert.True(t, strings.HasSuffix(lines[1], "\tGENE=BRCA1;AF=0.0001"))
}

func TestWriteResultsAbsentFields(t *testing.T) {
	record := &models.VariantRecord{Chrom: "1", Pos: 5, Ref: "A", Alt: "T"}

	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, []*models.VariantRecord{record}, false))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	row := strings.Split(lines[1], "\t")
	header := strings.Split(lines[0], "\t")
	byColumn := map[string]string{}
	for i, name := range header {
		byColumn[name] = row[i]
	}

	assert.Equal(t, ".", byColumn["id"])
	assert.Equal(t, ".", byColumn["allele_frequency"])
	assert.Equal(t, ".", byColumn["consequence"])
	assert.Equal(t, ".", byColumn["acmg_evidence"])
}

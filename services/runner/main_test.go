package runner

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"charger/models"
	"charger/models/constants"
	cls "charger/models/constants/classification"
	"charger/models/constants/consequence"
	e "charger/models/constants/evidence"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func inheritanceTablePath(t *testing.T) string {
	return writeTempFile(t, "inheritance.tsv",
		"gene\tdisease\tmode_of_inheritance\n"+
			"BRCA1\tbreast cancer\tautosomal dominant\n")
}

// clinvarDbPath builds a single-row ClinVar SQLite table.
func clinvarDbPath(t *testing.T, chrom string, pos int, ref, alt, significance string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clinvar.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec("CREATE TABLE clinvar (chrom TEXT, pos INTEGER, ref TEXT, alt TEXT, clinical_significance TEXT)")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO clinvar VALUES (?, ?, ?, ?, ?)", chrom, pos, ref, alt, significance)
	require.NoError(t, err)

	return path
}

func baseConfig() *models.Config {
	return &models.Config{
		RareThreshold:            0.0005,
		CommonThreshold:          0.005,
		MinPathogenicScore:       9,
		MinLikelyPathogenicScore: 5,
		MaxLikelyBenignScore:     -4,
		MaxBenignScore:           -8,
		Workers:                  2,
	}
}

func truncatingRecord() *models.VariantRecord {
	return &models.VariantRecord{
		Chrom:       "17",
		Pos:         41245466,
		Ref:         "G",
		Alt:         "A",
		GeneSymbol:  "BRCA1",
		Consequence: consequence.Truncating,
	}
}

func commonRecord(af float64) *models.VariantRecord {
	return &models.VariantRecord{
		Chrom:           "17",
		Pos:             41245466,
		Ref:             "G",
		Alt:             "A",
		GeneSymbol:      "BRCA1",
		Consequence:     consequence.Missense,
		AlleleFrequency: &af,
	}
}

func runToScored(t *testing.T, cfg *models.Config, records []*models.VariantRecord) []*models.VariantRecord {
	t.Helper()

	charger := New(cfg)
	require.NoError(t, charger.Setup())
	t.Cleanup(charger.Resources.Close)

	require.NoError(t, charger.UseRecords(records))
	require.NoError(t, charger.RunAcmgModules())
	require.NoError(t, charger.RunChargerModules())
	require.NoError(t, charger.Score())

	results, err := charger.Results()
	require.NoError(t, err)
	assert.Equal(t, Done, charger.State)
	return results
}

func callStatus(t *testing.T, record *models.VariantRecord, code constants.EvidenceCode) constants.EvidenceStatus {
	t.Helper()
	for _, call := range record.Calls {
		if call.Code == code {
			return call.Status
		}
	}
	t.Fatalf("no call for %s", code)
	return 0
}

func TestSetupRejectsBadConfiguration(t *testing.T) {
	t.Run("invalid threshold ordering", func(t *testing.T) {
		cfg := baseConfig()
		cfg.MinPathogenicScore = 0
		assert.Error(t, New(cfg).Setup())
	})

	t.Run("unknown score override code", func(t *testing.T) {
		cfg := baseConfig()
		cfg.ChargerScoreOverrides = map[string]int{"NOPE": 1}
		assert.Error(t, New(cfg).Setup())
	})

	t.Run("disease specific without a disease", func(t *testing.T) {
		cfg := baseConfig()
		cfg.DiseaseSpecific = true
		assert.Error(t, New(cfg).Setup())
	})
}

func TestStateMachineOrdering(t *testing.T) {
	cfg := baseConfig()
	charger := New(cfg)

	assert.Error(t, charger.RunAcmgModules())
	require.NoError(t, charger.Setup())
	assert.Error(t, charger.RunChargerModules())
	assert.Error(t, charger.Score())
	require.NoError(t, charger.RunAcmgModules())

	// each scheme runs exactly once per invocation
	assert.Error(t, charger.RunAcmgModules())
}

// Truncating variant in a loss-of-function gene, no frequency data:
// PVS1 alone reaches the pathogenic tier.
func TestTruncatingLossOfFunctionVariantIsPathogenic(t *testing.T) {
	cfg := baseConfig()
	cfg.InheritanceGeneTablePath = inheritanceTablePath(t)
	cfg.MinPathogenicScore = 8

	results := runToScored(t, cfg, []*models.VariantRecord{truncatingRecord()})
	require.Len(t, results, 1)

	record := results[0]
	assert.Equal(t, e.Met, callStatus(t, record, e.PVS1))
	assert.Equal(t, 8, record.AcmgScore)
	assert.Equal(t, cls.Pathogenic, record.AcmgClassification)
	assert.Equal(t, cls.Pathogenic, record.ChargerClassification)
}

// Common variant: the benign frequency evidence alone reaches the
// benign tier under overridden weight and threshold.
func TestCommonVariantIsBenign(t *testing.T) {
	cfg := baseConfig()
	cfg.CommonThreshold = 0.01
	cfg.MaxLikelyBenignScore = -1
	cfg.MaxBenignScore = -4
	cfg.AcmgScoreOverrides = map[string]int{"BA1": -4}

	results := runToScored(t, cfg, []*models.VariantRecord{commonRecord(0.05)})
	require.Len(t, results, 1)

	record := results[0]
	assert.Equal(t, e.Met, callStatus(t, record, e.BA1))
	assert.Equal(t, -4, record.AcmgScore)
	assert.Equal(t, cls.Benign, record.AcmgClassification)
}

func TestMissingInheritanceTableSkipsPVS1ForEveryRecord(t *testing.T) {
	cfg := baseConfig()
	records := []*models.VariantRecord{
		truncatingRecord(),
		commonRecord(0.05),
	}

	results := runToScored(t, cfg, records)
	for _, record := range results {
		assert.Equal(t, e.SkippedMissingResource, callStatus(t, record, e.PVS1))
	}
}

// The database-annotation override must replace the frequency and
// hotspot evidence, not augment it.
func TestDatabaseOverrideReplacesFrequencyEvidence(t *testing.T) {
	dbPath := clinvarDbPath(t, "17", 41245466, "G", "A", "Likely_pathogenic")

	run := func(override bool) *models.VariantRecord {
		cfg := baseConfig()
		cfg.ClinVarTablePath = dbPath
		cfg.OverrideVariantInfo = override
		results := runToScored(t, cfg, []*models.VariantRecord{commonRecord(0.05)})
		require.Len(t, results, 1)
		return results[0]
	}

	plain := run(false)
	overridden := run(true)

	// without the override the frequency evidence dominates
	assert.Equal(t, e.Met, callStatus(t, plain, e.BA1))
	assert.Equal(t, cls.Benign, plain.AcmgClassification)
	// the concordance module still fires in the extended scheme
	assert.Equal(t, e.Met, callStatus(t, plain, e.PMC1))

	// with the override the frequency/hotspot modules are suppressed..
	assert.Equal(t, e.Suppressed, callStatus(t, overridden, e.BA1))
	assert.Equal(t, e.Suppressed, callStatus(t, overridden, e.BS1))
	assert.Equal(t, e.Suppressed, callStatus(t, overridden, e.PM2))
	assert.True(t, overridden.Overridden)

	// ..and the synthesized call carries the asserted class instead
	var synthesized *models.EvidenceCall
	for _, call := range overridden.Calls {
		if call.Code == e.PMC1 && call.Scheme == e.SchemeBoth {
			synthesized = call
		}
	}
	require.NotNil(t, synthesized)
	assert.Equal(t, e.Met, synthesized.Status)

	assert.NotEqual(t, plain.AcmgClassification, overridden.AcmgClassification)
	assert.NotEqual(t, plain.AcmgScore, overridden.AcmgScore)
}

// Re-running the full chain on identical inputs reproduces identical
// evidence calls and scores.
func TestRunIsIdempotent(t *testing.T) {
	buildRecords := func() []*models.VariantRecord {
		return []*models.VariantRecord{
			truncatingRecord(),
			commonRecord(0.01),
			commonRecord(0.0001),
		}
	}

	makeConfig := func() *models.Config {
		cfg := baseConfig()
		cfg.InheritanceGeneTablePath = writeTempFile(t, "inheritance.tsv",
			"gene\tdisease\tmode_of_inheritance\n"+
				"BRCA1\tbreast cancer\tautosomal dominant\n")
		return cfg
	}

	first := runToScored(t, makeConfig(), buildRecords())
	second := runToScored(t, makeConfig(), buildRecords())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("runs diverged (-first +second):\n%s", diff)
	}
}

func TestResultsPreserveInputOrder(t *testing.T) {
	cfg := baseConfig()

	var records []*models.VariantRecord
	for pos := 1; pos <= 50; pos++ {
		records = append(records, &models.VariantRecord{
			Chrom: "1", Pos: pos, Ref: "A", Alt: "T",
			GeneSymbol:  "GENE1",
			Consequence: consequence.Missense,
		})
	}

	results := runToScored(t, cfg, records)
	require.Len(t, results, 50)
	for i, record := range results {
		assert.Equal(t, i+1, record.Pos)
	}
}

package runner

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"charger/models"
	"charger/models/constants"
	cls "charger/models/constants/classification"
	e "charger/models/constants/evidence"
	"charger/repositories/resources"
	"charger/repositories/vcf"
	"charger/services/evaluation"
	"charger/services/scoring"
)

// Run states, advanced strictly in order over a single invocation.
type State int

const (
	Unconfigured State = iota
	ResourcesLoaded
	ModulesRunAcmg
	ModulesRunCharger
	Scored
	Done
)

type (
	Runner struct {
		Id      uuid.UUID
		Config  *models.Config
		State   State
		Records []*models.VariantRecord

		Resources *resources.ResourceSet

		AcmgScoreTable    map[constants.EvidenceCode]int
		ChargerScoreTable map[constants.EvidenceCode]int
		Thresholds        scoring.Thresholds
	}
)

func New(cfg *models.Config) *Runner {
	return &Runner{
		Id:     uuid.New(),
		Config: cfg,
		State:  Unconfigured,
	}
}

// Setup validates the whole configuration (thresholds, score
// overrides, feature flags), builds the reference resources and loads
// the input records. Any error here is fatal before a single variant
// is touched.
func (r *Runner) Setup() error {
	if err := r.requireState(Unconfigured, "Setup"); err != nil {
		return err
	}

	r.Thresholds = scoring.ThresholdsFromConfig(r.Config)
	if err := r.Thresholds.Validate(); err != nil {
		return err
	}

	if r.Config.DiseaseSpecific && r.Config.Disease == "" {
		return fmt.Errorf("disease specific detection enabled but no disease configured")
	}

	r.AcmgScoreTable = scoring.DefaultAcmgScores()
	if err := scoring.ApplyOverrides(r.AcmgScoreTable, r.Config.AcmgScoreOverrides); err != nil {
		return err
	}
	r.ChargerScoreTable = scoring.DefaultChargerScores()
	if err := scoring.ApplyOverrides(r.ChargerScoreTable, r.Config.ChargerScoreOverrides); err != nil {
		return err
	}

	// an unparseable supplied resource only disables its dependent
	// modules; LoadAll logs it and leaves the handle nil
	r.Resources = resources.LoadAll(r.Config)

	if r.Config.Input != "" {
		fmt.Printf("[%s] - Reading input VCF %s\n", time.Now(), r.Config.Input)
		records, readErr := vcf.ReadAnnotatedVcf(r.Config.Input)
		if readErr != nil {
			return readErr
		}
		r.Records = records
		fmt.Printf("[%s] - Loaded %d variant records\n", time.Now(), len(r.Records))
	}

	r.State = ResourcesLoaded
	return nil
}

// UseRecords substitutes an already-built record sequence for the
// input-derived one (the annotation source interface). Input order is
// preserved through to the results.
func (r *Runner) UseRecords(records []*models.VariantRecord) error {
	if err := r.requireState(ResourcesLoaded, "UseRecords"); err != nil {
		return err
	}
	r.Records = records
	return nil
}

// RunAcmgModules evaluates every standards-body module against every
// record, fanning records out over a bounded worker pool. Records are
// independent units of work and the resources are read-only, so no
// locking is involved.
func (r *Runner) RunAcmgModules() error {
	if err := r.requireState(ResourcesLoaded, "RunAcmgModules"); err != nil {
		return err
	}
	fmt.Printf("[%s] - Run %s: evaluating ACMG modules over %d records\n", time.Now(), r.Id, len(r.Records))

	r.forEachRecord(func(record *models.VariantRecord) {
		r.evaluateAcmg(record)
	})

	r.State = ModulesRunAcmg
	return nil
}

// RunChargerModules evaluates the extended-only modules. The extended
// scheme reuses the already-fired standards-body calls, it does not
// re-derive them.
func (r *Runner) RunChargerModules() error {
	if err := r.requireState(ModulesRunAcmg, "RunChargerModules"); err != nil {
		return err
	}
	fmt.Printf("[%s] - Run %s: evaluating CharGer modules over %d records\n", time.Now(), r.Id, len(r.Records))

	r.forEachRecord(func(record *models.VariantRecord) {
		r.evaluateCharger(record)
	})

	r.State = ModulesRunCharger
	return nil
}

// Score computes both aggregates and both classifications for every
// record.
func (r *Runner) Score() error {
	if err := r.requireState(ModulesRunCharger, "Score"); err != nil {
		return err
	}

	for _, record := range r.Records {
		record.AcmgScore = scoring.AcmgAggregate(record.Calls)
		record.ChargerScore = scoring.ChargerAggregate(record.Calls)
		record.AcmgClassification = scoring.Classify(record.AcmgScore, r.Thresholds)
		record.ChargerClassification = scoring.Classify(record.ChargerScore, r.Thresholds)
	}

	r.State = Scored
	return nil
}

// Results hands the fully classified records to the caller and
// finishes the run. Both classifications are reported side by side;
// reconciling them is the reporting layer's concern.
func (r *Runner) Results() ([]*models.VariantRecord, error) {
	if err := r.requireState(Scored, "Results"); err != nil {
		return nil, err
	}
	r.State = Done
	return r.Records, nil
}

func (r *Runner) requireState(expected State, operation string) error {
	if r.State != expected {
		return fmt.Errorf("%s called in run state %d (want %d)", operation, r.State, expected)
	}
	return nil
}

func (r *Runner) forEachRecord(evaluate func(*models.VariantRecord)) {
	workers := r.Config.Workers
	if workers < 1 {
		workers = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, record := range r.Records {
		record := record
		g.Go(func() error {
			evaluate(record)
			return nil
		})
	}
	// evaluators never return errors; per-record problems become
	// skipped calls and trace entries instead
	g.Wait()
}

func (r *Runner) evaluateAcmg(record *models.VariantRecord) {
	overrideClass, overrideApplies := r.databaseOverrideFor(record)

	for _, module := range evaluation.AcmgModules() {
		if overrideApplies && evaluation.SupersededByOverride(module.Code) {
			record.Calls = append(record.Calls, r.newCall(module.Code, module.Scheme, e.Suppressed, "superseded by database annotation"))
			continue
		}
		status, note := module.Evaluate(record, r.Resources, r.Config)
		record.Calls = append(record.Calls, r.newCall(module.Code, module.Scheme, status, note))
	}

	if overrideApplies {
		code, _ := evaluation.ConcordanceCodeFor(overrideClass)
		note := fmt.Sprintf("database annotation override: %s", cls.ClassificationToString(overrideClass))
		record.Calls = append(record.Calls, r.newCall(code, e.SchemeBoth, e.Met, note))
		record.Overridden = true
		record.AddTrace("frequency and hotspot evidence replaced by database annotation (%s)", cls.ClassificationToString(overrideClass))
	}
}

func (r *Runner) evaluateCharger(record *models.VariantRecord) {
	for _, module := range evaluation.ChargerModules() {
		if record.Overridden {
			// the synthesized override call already carries this
			// record's database concordance, count it once
			record.Calls = append(record.Calls, r.newCall(module.Code, module.Scheme, e.Suppressed, "superseded by database annotation override"))
			continue
		}
		status, note := module.Evaluate(record, r.Resources, r.Config)
		record.Calls = append(record.Calls, r.newCall(module.Code, module.Scheme, status, note))
	}
}

// databaseOverrideFor decides whether the override-variant-info
// feature replaces this record's frequency/hotspot evidence with the
// database's asserted classification.
func (r *Runner) databaseOverrideFor(record *models.VariantRecord) (constants.Classification, bool) {
	if !r.Config.OverrideVariantInfo || r.Resources.ClinVar == nil {
		return cls.Uncertain, false
	}

	class, found, err := r.Resources.ClinVar.Lookup(record.Chrom, record.Pos, record.Ref, record.Alt)
	if err != nil {
		record.AddTrace("database annotation lookup failed: %v", err)
		return cls.Uncertain, false
	}
	if !found {
		return cls.Uncertain, false
	}
	if _, ok := evaluation.ConcordanceCodeFor(class); !ok {
		return cls.Uncertain, false
	}
	return class, true
}

// newCall stamps the configured point values for both schemes onto a
// fresh evidence call; calls are immutable from here on.
func (r *Runner) newCall(code constants.EvidenceCode, scheme constants.Scheme, status constants.EvidenceStatus, note string) *models.EvidenceCall {
	return &models.EvidenceCall{
		Code:          code,
		Status:        status,
		Scheme:        scheme,
		AcmgPoints:    r.AcmgScoreTable[code],
		ChargerPoints: r.ChargerScoreTable[code],
		Note:          note,
	}
}

package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ahmetb/go-linq"

	"charger/models"
	cls "charger/models/constants/classification"
	"charger/models/constants/consequence"
	e "charger/models/constants/evidence"
	z "charger/models/constants/zygosity"
)

// WriteResultsFile writes the classification TSV to the given path,
// or to stdout when the path is empty.
func WriteResultsFile(filePath string, records []*models.VariantRecord, includeVcfDetails bool) error {
	if filePath == "" {
		return WriteResults(os.Stdout, records, includeVcfDetails)
	}

	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error creating %s: %v", filePath, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := WriteResults(w, records, includeVcfDetails); err != nil {
		return err
	}
	return w.Flush()
}

// WriteResults writes one TSV row per record, in input order. Every
// evaluated module appears in the evidence columns with its status, so
// skipped-vs-not-met survives into the output.
func WriteResults(w io.Writer, records []*models.VariantRecord, includeVcfDetails bool) error {
	columns := []string{
		"chrom", "pos", "id", "ref", "alt",
		"gene", "consequence", "zygosity", "allele_frequency",
		"acmg_evidence", "charger_evidence",
		"acmg_score", "charger_score",
		"acmg_classification", "charger_classification",
		"notes",
	}
	if includeVcfDetails {
		columns = append(columns, "vcf_info")
	}
	if _, err := fmt.Fprintln(w, strings.Join(columns, "\t")); err != nil {
		return err
	}

	for _, record := range records {
		af := "."
		if record.AlleleFrequency != nil {
			af = fmt.Sprintf("%g", *record.AlleleFrequency)
		}
		id := record.Id
		if id == "" {
			id = "."
		}
		csq := string(record.Consequence)
		if record.Consequence == consequence.Unknown {
			csq = "."
		}

		fields := []string{
			record.Chrom,
			fmt.Sprint(record.Pos),
			id,
			record.Ref,
			record.Alt,
			record.GeneSymbol,
			csq,
			z.ZygosityToString(record.Zygosity),
			af,
			evidenceSummary(record, false),
			evidenceSummary(record, true),
			fmt.Sprint(record.AcmgScore),
			fmt.Sprint(record.ChargerScore),
			cls.ClassificationToString(record.AcmgClassification),
			cls.ClassificationToString(record.ChargerClassification),
			strings.Join(record.Traces, "; "),
		}
		if includeVcfDetails {
			var infos []string
			for _, info := range record.Info {
				if info.Value == "" {
					infos = append(infos, info.Id)
				} else {
					infos = append(infos, fmt.Sprintf("%s=%s", info.Id, info.Value))
				}
			}
			fields = append(fields, strings.Join(infos, ";"))
		}

		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}

	return nil
}

// evidenceSummary renders the per-call outcomes for one scheme as
// CODE:STATUS pairs.
func evidenceSummary(record *models.VariantRecord, chargerOnly bool) string {
	var pairs []string
	for _, call := range record.Calls {
		if chargerOnly != (call.Scheme == e.SchemeCharger) {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s:%s", call.Code, e.StatusToString(call.Status)))
	}
	if len(pairs) == 0 {
		return "."
	}
	return strings.Join(pairs, ";")
}

// PrintSummary prints tier counts for both schemes at the end of a run.
func PrintSummary(records []*models.VariantRecord) {
	fmt.Printf("Classified %d variants\n", len(records))

	printTierCounts := func(label string, selectTier func(*models.VariantRecord) string) {
		var groups []linq.Group
		linq.From(records).GroupBy(
			func(r interface{}) interface{} { return selectTier(r.(*models.VariantRecord)) },
			func(r interface{}) interface{} { return r },
		).OrderBy(
			func(g interface{}) interface{} { return g.(linq.Group).Key },
		).ToSlice(&groups)

		var counts []string
		for _, group := range groups {
			counts = append(counts, fmt.Sprintf("%s=%d", group.Key, len(group.Group)))
		}
		fmt.Printf("\t%s : %s\n", label, strings.Join(counts, " "))
	}

	printTierCounts("ACMG", func(r *models.VariantRecord) string {
		return cls.ClassificationToString(r.AcmgClassification)
	})
	printTierCounts("CharGer", func(r *models.VariantRecord) string {
		return cls.ClassificationToString(r.ChargerClassification)
	})
}

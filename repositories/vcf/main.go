package vcf

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"charger/models"
	"charger/models/constants/chromosome"
	"charger/models/constants/consequence"
	z "charger/models/constants/zygosity"
	"charger/utils"
)

// ReadAnnotatedVcf loads a plain or gzipped annotated VCF into
// VariantRecords, preserving input order. Lines with an invalid
// chromosome or position are dropped with a notice; malformed
// annotation fields leave the affected attribute absent and add a
// trace entry on the record instead of failing the load.
func ReadAnnotatedVcf(filePath string) ([]*models.VariantRecord, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %v", filePath, err)
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(filePath, ".gz") {
		gr, gzErr := gzip.NewReader(f)
		if gzErr != nil {
			return nil, fmt.Errorf("error opening gzipped %s: %v", filePath, gzErr)
		}
		defer gr.Close()
		reader = gr
	}

	var (
		records           []*models.VariantRecord
		headers           []string
		discoveredHeaders bool
	)

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		// Gather Header row by seeking the CHROM string
		if !discoveredHeaders {
			if strings.HasPrefix(line, "#CHROM") {
				headers = strings.Split(line, "\t")
				discoveredHeaders = true
			}
			continue
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rowComponents := strings.Split(line, "\t")
		for _, record := range parseDataLine(headers, rowComponents) {
			records = append(records, record)
		}
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, fmt.Errorf("error reading %s: %v", filePath, scanErr)
	}
	if !discoveredHeaders {
		return nil, fmt.Errorf("no #CHROM header line found in %s", filePath)
	}

	return records, nil
}

// parseDataLine turns one VCF data row into records, one per
// alternate allele. A nil return means the row was unusable.
func parseDataLine(headers []string, rowComponents []string) []*models.VariantRecord {
	base := &models.VariantRecord{}

	var (
		altField string
		afField  string
		gtValue  string
		formats  []string
	)

	for rowIndex, rowComponent := range rowComponents {
		if rowIndex >= len(headers) {
			break
		}
		key := strings.ToLower(strings.TrimSpace(strings.Replace(headers[rowIndex], "#", "", -1)))
		value := strings.TrimSpace(rowComponent)

		if utils.StringInSlice(key, models.VcfHeaders) {
			switch key {
			case "chrom":
				chrom := chromosome.Normalize(value)
				if !chromosome.IsValidHumanChromosome(chrom) {
					fmt.Printf("Skipping call with invalid chromosome '%s'\n", value)
					return nil
				}
				base.Chrom = chrom
			case "pos":
				pos, err := strconv.Atoi(value)
				if err != nil {
					fmt.Printf("Skipping call with invalid position '%s'\n", value)
					return nil
				}
				base.Pos = pos
			case "id":
				if value != "." {
					base.Id = value
				}
			case "ref":
				base.Ref = value
			case "alt":
				altField = value
			case "info":
				for _, infoSegment := range strings.Split(value, ";") {
					equalitySeparations := strings.SplitN(infoSegment, "=", 2)
					info := models.Info{Id: equalitySeparations[0]}
					if len(equalitySeparations) == 2 {
						info.Value = equalitySeparations[1]
					}
					base.Info = append(base.Info, info)

					switch strings.ToUpper(info.Id) {
					case "GENE", "SYMBOL":
						base.GeneSymbol = info.Value
					case "AF":
						afField = info.Value
					case "CSQ":
						base.Consequence = consequence.FromAnnotation(info.Value)
						if base.Consequence == consequence.Unknown && info.Value != "" {
							base.AddTrace("unrecognized consequence annotation '%s'", info.Value)
						}
					}
				}
			case "format":
				formats = strings.Split(value, ":")
			}
		} else if gtValue == "" && len(formats) > 0 {
			// assume the first non-standard column is a sample;
			// pull its genotype out per the FORMAT ordering
			sampleValues := strings.Split(value, ":")
			for i, f := range formats {
				if f == "GT" && i < len(sampleValues) {
					gtValue = sampleValues[i]
				}
			}
		}
	}

	if base.Chrom == "" || base.Ref == "" || altField == "" || altField == "." {
		return nil
	}
	base.Zygosity = z.FromGenotype(gtValue)

	// fan a multi-allelic row out into one record per alternate allele
	alts := strings.Split(altField, ",")
	afs := strings.Split(afField, ",")

	var records []*models.VariantRecord
	for i, alt := range alts {
		record := cloneBase(base)
		record.Alt = alt

		if afField != "" {
			rawAf := afs[0]
			if i < len(afs) {
				rawAf = afs[i]
			}
			af, err := strconv.ParseFloat(rawAf, 64)
			if err != nil || af < 0 || af > 1 {
				record.AddTrace("malformed allele frequency '%s'", rawAf)
			} else {
				record.AlleleFrequency = &af
			}
		}
		records = append(records, record)
	}
	return records
}

func cloneBase(base *models.VariantRecord) *models.VariantRecord {
	record := *base
	record.Info = append([]models.Info(nil), base.Info...)
	record.Traces = append([]string(nil), base.Traces...)
	return &record
}

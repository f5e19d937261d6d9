package resources

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"charger/models/constants"
	"charger/models/constants/inheritance"
)

// InheritanceEntry is one row of the inheritance gene table.
type InheritanceEntry struct {
	Gene    string
	Disease string
	Mode    constants.ModeOfInheritance
}

// InheritanceTable maps gene symbols onto their known
// (disease, mode of inheritance) entries.
type InheritanceTable struct {
	entries map[string][]InheritanceEntry
}

// LoadInheritanceTable parses a TSV with columns:
// gene, disease, mode_of_inheritance.
func LoadInheritanceTable(filePath string) (*InheritanceTable, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %v", filePath, err)
	}
	defer f.Close()

	table := &InheritanceTable{entries: map[string][]InheritanceEntry{}}

	scanner := bufio.NewScanner(f)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		columns := strings.Split(line, "\t")
		if len(columns) < 3 {
			return nil, fmt.Errorf("%s line %d: expected 3 columns (gene, disease, mode_of_inheritance), got %d", filePath, lineNumber, len(columns))
		}

		gene := strings.TrimSpace(columns[0])
		if lineNumber == 1 && strings.EqualFold(gene, "gene") {
			// header row
			continue
		}

		entry := InheritanceEntry{
			Gene:    gene,
			Disease: strings.TrimSpace(columns[1]),
			Mode:    inheritance.FromTableValue(columns[2]),
		}
		table.entries[gene] = append(table.entries[gene], entry)
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, scanErr
	}

	return table, nil
}

// Entries returns every table entry for the gene, optionally narrowed
// to entries whose disease matches (case-insensitive) when
// diseaseSpecific detection is enabled.
func (it *InheritanceTable) Entries(gene string, diseaseSpecific bool, disease string) []InheritanceEntry {
	all := it.entries[gene]
	if !diseaseSpecific {
		return all
	}

	var matched []InheritanceEntry
	for _, entry := range all {
		if strings.EqualFold(entry.Disease, disease) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// LossOfFunctionGene reports whether any (possibly disease-narrowed)
// entry for the gene marks loss of function as a known mechanism.
func (it *InheritanceTable) LossOfFunctionGene(gene string, diseaseSpecific bool, disease string) bool {
	for _, entry := range it.Entries(gene, diseaseSpecific, disease) {
		if inheritance.LossOfFunctionRelevant(entry.Mode) {
			return true
		}
	}
	return false
}

func (it *InheritanceTable) Size() int {
	return len(it.entries)
}

package utils

import (
	"fmt"
	"strconv"
	"strings"
)

func StringInSlice(a string, list []string) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}
	return false
}

// ParseModuleScoreOverrides parses the console override syntax
// 'MODULE=SCORE MODULE=SCORE ...' into a partial score mapping.
// Code validity is checked later at setup, against the module catalogue.
func ParseModuleScoreOverrides(raw string) (map[string]int, error) {
	overrides := map[string]int{}

	for _, pair := range strings.Fields(raw) {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("malformed module score override %q (expected MODULE=SCORE)", pair)
		}

		score, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("malformed score in override %q: %v", pair, err)
		}
		overrides[strings.ToUpper(parts[0])] = score
	}

	return overrides, nil
}

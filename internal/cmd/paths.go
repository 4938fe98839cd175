package cmd

import (
	"path/filepath"
	"strings"
)

// defaultInput is the ads response file used when no argument is given.
const defaultInput = "company_ads_response_2025-10-02T11-27-48-597Z.json"

// defaultOutputPath derives the report path from the input file name by
// replacing the final extension with a _ranked.txt suffix, in the input's
// directory.
func defaultOutputPath(input string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(input), stem+"_ranked.txt")
}

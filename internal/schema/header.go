package schema

import (
	"strings"

	"lmercier/finpipe/internal/textutils"
)

// Candidate column names for each canonical field, in priority order.
// Matching is exact first across the whole list, then suffix ("column name
// ends with candidate") to tolerate prefixed headers like "posted date" vs
// an export-specific "stmt posted date".
var (
	dateCandidates = []string{
		"date",
		"transaction date",
		"posting date",
		"posted date",
		"date posted",
		"date/time",
	}

	descriptionCandidates = []string{
		"description",
		"transaction details",
		"details",
		"memo",
		"narrative",
		"description 1",
	}

	amountCandidates = []string{
		"amount",
		"transaction amount",
		"cad$",
		"amount ($)",
		"amount (cad)",
		"cad amount",
	}

	debitCandidates  = []string{"debit", "withdrawal", "withdrawals", "debito"}
	creditCandidates = []string{"credit", "deposit", "deposits", "credito"}

	balanceCandidates = []string{
		"balance",
		"account balance",
		"running balance",
		"available balance",
	}

	accountCandidates = []string{"account", "account name", "account type", "product"}
)

// columnMap holds the resolved index of each canonical field in the source
// header row; -1 means not found.
type columnMap struct {
	date        int
	description int
	amount      int
	debit       int
	credit      int
	balance     int
	account     int
}

// mapColumns resolves canonical fields against the normalized header row.
func mapColumns(headers []string) columnMap {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = textutils.NormalizeHeader(h)
	}
	return columnMap{
		date:        findColumn(normalized, dateCandidates),
		description: findColumn(normalized, descriptionCandidates),
		amount:      findColumn(normalized, amountCandidates),
		debit:       findColumn(normalized, debitCandidates),
		credit:      findColumn(normalized, creditCandidates),
		balance:     findColumn(normalized, balanceCandidates),
		account:     findColumn(normalized, accountCandidates),
	}
}

// findColumn returns the index of the first candidate present in the
// headers. All candidates are tried for an exact match before any suffix
// match, so an exact hit on a later candidate beats a suffix hit on an
// earlier one.
func findColumn(headers []string, candidates []string) int {
	for _, candidate := range candidates {
		for i, header := range headers {
			if header == candidate {
				return i
			}
		}
	}
	for _, candidate := range candidates {
		for i, header := range headers {
			if strings.HasSuffix(header, candidate) {
				return i
			}
		}
	}
	return -1
}

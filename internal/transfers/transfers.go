// Package transfers removes matched pairs of opposite-sign transactions
// that represent money moved between the user's own accounts. Left in place
// they would double-count movement as both an expense and an income.
package transfers

import (
	"sort"
	"strings"

	"lmercier/finpipe/internal/dateutils"
	"lmercier/finpipe/internal/logging"
	"lmercier/finpipe/internal/models"
	"lmercier/finpipe/internal/textutils"
)

// DefaultToleranceDays is the maximum date gap between the two legs of a
// transfer pair.
const DefaultToleranceDays = 2

// transferKeywords flag a description as a potential internal transfer.
var transferKeywords = []string{
	"transfer",
	"xfer",
	"between accounts",
	"online banking transfer",
	"customer transfer",
	"etfr",
}

// bareTransferDescriptions are self-transfer labels with no informative
// content. Rows matching them exactly are dropped unconditionally; they
// cannot be meaningfully offset against another category.
var bareTransferDescriptions = map[string]bool{
	"customer transfer cr.": true,
	"customer transfer dr.": true,
}

// candidatePair is one potential positive/negative pairing.
type candidatePair struct {
	posIdx   int
	negIdx   int
	dateDiff int
}

// RemoveInternalTransfers drops matched transfer pairs: equal absolute
// amount (rounded to cents), opposite signs, transfer keywords in both
// descriptions, dated within toleranceDays of each other. Pairs resolve
// greedily in ascending date-difference order and each row is consumed by at
// most one pair. Never errors; input order is preserved for survivors.
func RemoveInternalTransfers(txs []models.Transaction, toleranceDays int, logger logging.Logger) []models.Transaction {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if len(txs) == 0 {
		return txs
	}

	// Pass 1: unconditional drop of bare self-transfer labels.
	working := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if bareTransferDescriptions[textutils.NormalizeDescription(tx.Description)] {
			continue
		}
		working = append(working, tx)
	}

	// Pass 2: flag transfer candidates and partition by sign.
	var posIdxs, negIdxs []int
	for i, tx := range working {
		if !matchesTransferKeyword(tx.Description) {
			continue
		}
		switch {
		case tx.Amount.IsPositive():
			posIdxs = append(posIdxs, i)
		case tx.Amount.IsNegative():
			negIdxs = append(negIdxs, i)
		}
	}
	if len(posIdxs) == 0 || len(negIdxs) == 0 {
		return working
	}

	// Pass 3: candidate pairs on equal absolute cents within tolerance,
	// enumerated positives-in-order cross negatives-in-order so the stable
	// sort below keeps enumeration order as the tie-break.
	var pairs []candidatePair
	for _, p := range posIdxs {
		for _, n := range negIdxs {
			if !working[p].AbsCents().Equal(working[n].AbsCents()) {
				continue
			}
			diff := dateutils.DaysBetween(working[p].Date.Time, working[n].Date.Time)
			if diff > toleranceDays {
				continue
			}
			pairs = append(pairs, candidatePair{posIdx: p, negIdx: n, dateDiff: diff})
		}
	}
	if len(pairs) == 0 {
		return working
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].dateDiff < pairs[j].dateDiff
	})

	// Pass 4: greedy resolution, tightest date match first, each row
	// claimed at most once.
	usedPos := make(map[int]bool)
	usedNeg := make(map[int]bool)
	drop := make(map[int]bool)
	for _, pair := range pairs {
		if usedPos[pair.posIdx] || usedNeg[pair.negIdx] {
			continue
		}
		usedPos[pair.posIdx] = true
		usedNeg[pair.negIdx] = true
		drop[pair.posIdx] = true
		drop[pair.negIdx] = true
	}

	out := make([]models.Transaction, 0, len(working)-len(drop))
	for i, tx := range working {
		if !drop[i] {
			out = append(out, tx)
		}
	}

	logger.WithFields(
		logging.Field{Key: "pairs_removed", Value: len(drop) / 2},
		logging.Field{Key: "rows_in", Value: len(txs)},
		logging.Field{Key: "rows_out", Value: len(out)},
	).Debug("Removed internal transfers")

	return out
}

func matchesTransferKeyword(description string) bool {
	lowered := strings.ToLower(description)
	for _, keyword := range transferKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

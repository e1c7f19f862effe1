package account

import (
	"sort"

	"github.com/shopspring/decimal"
)

// SortEntries orders entries ascending by timestamp, then by store sequence.
func SortEntries(entries []StatementEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].Timestamp.Before(entries[j].Timestamp)
		}
		return entries[i].Sequence < entries[j].Sequence
	})
}

// Replay checks that sorted entries form an unbroken trail starting from opening:
// each entry's ResultingBalance must equal the running sum of amounts. It returns the
// closing balance and the index of the first inconsistent entry, or -1.
func Replay(opening decimal.Decimal, entries []StatementEntry) (decimal.Decimal, int) {
	running := opening
	for i, e := range entries {
		running = running.Add(e.Amount)
		if !running.Equal(e.ResultingBalance) {
			return running, i
		}
	}
	return running, -1
}

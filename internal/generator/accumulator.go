// =============================================================================
// XML Report Generator - Summary Accumulator
// =============================================================================
//
// Running numeric totals keyed by summary target, updated inline as group
// members stream past the emitter and read back only when the trailing
// summary items are written. One Accumulator lives exactly as long as one
// document generation; nothing persists across runs.
//
// The target set is enumerated in types.SummaryBindings. A field id without
// a binding contributes nowhere; a bound field whose value does not parse as
// an integer is silently skipped, not an error — blanks and free-text values
// flow through the same emitter path as amounts.
//
// =============================================================================

package generator

import (
	"strconv"

	"github.com/ginjaninja78/xml-report-generator/internal/types"
)

// Accumulator holds the running totals for one document generation.
// Single-threaded: one generation pass, one mutator.
type Accumulator struct {
	totals map[types.SummaryTarget]int64
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		totals: make(map[types.SummaryTarget]int64, len(types.SummaryBindings)),
	}
}

// Observe feeds one resolved field value into the total its field id is
// bound to. Unbound ids and non-integer values are ignored.
func (a *Accumulator) Observe(fieldID, value string) {
	target, bound := types.SummaryBindings[fieldID]
	if !bound {
		return
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		// Not an integer; excluded from the total.
		return
	}

	a.totals[target] += n
}

// Total returns the running total for a target, or zero for a target that
// never received a contribution.
func (a *Accumulator) Total(target types.SummaryTarget) int64 {
	return a.totals[target]
}

// =============================================================================
// XML Report Generator - Document Orchestrator
// =============================================================================
//
// This module drives one complete document generation as a strict forward
// state machine:
//
//   Header -> AsOf -> Entity preamble -> Standalone items
//     -> Business Contact groups -> Service Provider groups
//     -> Schedule 2 groups (cross-reference source)
//     -> Valuation Technique groups (derived from recorded tokens)
//     -> Schedule 3 groups -> Summary items -> Close
//
// Each state is a contiguous run of writer calls; instances of different
// families never interleave. The document is produced once, forward-only —
// there is no in-memory tree. Summary values are exact sums of the
// per-instance contributions accumulated while the groups streamed out.
//
// FAILURE:
//   If the sink rejects a write, generation aborts at the next section
//   boundary check. The partial output already written is the caller's to
//   discard; nothing here renames or deletes files.
//
// =============================================================================

package generator

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ginjaninja78/xml-report-generator/internal/catalog"
	"github.com/ginjaninja78/xml-report-generator/internal/types"
	"github.com/ginjaninja78/xml-report-generator/internal/xmlwriter"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Header holds the fixed fileDescription values. Zero fields fall back to
// the production defaults.
type Header struct {
	DataTypeIndicator string `yaml:"data_type_indicator"`
	RequestType       string `yaml:"request_type"`
	ReceivingSite     string `yaml:"receiving_site"`
	SeriesName        string `yaml:"series_name"`
	ReportingForm     string `yaml:"reporting_form"`
}

// Options configures one document generation.
type Options struct {
	// Repeat counts per group family. All must be non-negative.
	BusinessCount      int
	ServiceCount       int
	ScheduleTwoCount   int
	ScheduleThreeCount int

	// Policy selects cross-reference token production: PolicyAlternating
	// (the default) or PolicyUnique.
	Policy string

	// Seed fixes every random draw of the run.
	Seed int64

	// Now is the clock for header timestamps and date tokens. Nil means
	// the real clock; tests inject a fixed one.
	Now func() time.Time

	// Header overrides the fixed fileDescription values.
	Header Header
}

// applyHeaderDefaults fills unset header fields with the production values.
func applyHeaderDefaults(h *Header) {
	if h.DataTypeIndicator == "" {
		h.DataTypeIndicator = "Production"
	}
	if h.RequestType == "" {
		h.RequestType = "Scheduler"
	}
	if h.ReceivingSite == "" {
		h.ReceivingSite = "New York"
	}
	if h.SeriesName == "" {
		h.SeriesName = "SHCA"
	}
	if h.ReportingForm == "" {
		h.ReportingForm = "SHCA"
	}
}

// =============================================================================
// GENERATOR
// =============================================================================

// Generator produces one document. Build one per run with New; it owns its
// randomness source, accumulator, and token set, so separate Generators are
// safe to run from separate goroutines.
type Generator struct {
	opts   Options
	cat    *catalog.Catalog
	w      *xmlwriter.Writer
	acc    *Accumulator
	tokens *TokenSet
	policy Policy
	now    func() time.Time
}

// New creates a Generator writing to the given sink.
//
// RETURNS:
//   - The generator, or an error for negative counts, an unknown policy, or
//     an inconsistent field rule table.
func New(sink io.Writer, opts Options) (*Generator, error) {
	for name, count := range map[string]int{
		"business":  opts.BusinessCount,
		"service":   opts.ServiceCount,
		"schedule2": opts.ScheduleTwoCount,
		"schedule3": opts.ScheduleThreeCount,
	} {
		if count < 0 {
			return nil, fmt.Errorf("%s group count must be non-negative, got %d", name, count)
		}
	}

	applyHeaderDefaults(&opts.Header)

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	cat, err := catalog.New(catalog.NewSource(opts.Seed, now))
	if err != nil {
		return nil, fmt.Errorf("invalid field catalog: %w", err)
	}

	policy, err := NewPolicy(opts.Policy, cat)
	if err != nil {
		return nil, err
	}

	return &Generator{
		opts:   opts,
		cat:    cat,
		w:      xmlwriter.New(sink),
		acc:    NewAccumulator(),
		tokens: NewTokenSet(),
		policy: policy,
		now:    now,
	}, nil
}

// Run generates the complete document. It returns the first sink error or
// policy error encountered; on error the partial output is left as-is.
func (g *Generator) Run() error {
	g.w.Declaration()
	g.w.OpenTag(types.RootElement)

	g.writeFileDescription()
	if err := g.checkSink("file description"); err != nil {
		return err
	}

	// asofDate wraps financialData; exactly one of each per document.
	asOf := catalog.DateToken{Layout: catalog.LayoutYYYYMMDD, MaxAgeDays: 365}
	g.w.OpenTag(types.AsOfElement, xmlwriter.Attr{
		Name:  types.AsOfDateAttribute,
		Value: asOf.Generate(g.cat.Source()),
	})
	g.w.OpenTag(types.FinancialDataElement)
	g.w.OpenTag(types.EntityElement)

	g.writeEntityPreamble()
	g.writeStandaloneItems()
	if err := g.checkSink("entity preamble"); err != nil {
		return err
	}

	for seq := 1; seq <= g.opts.BusinessCount; seq++ {
		g.emitGroup(types.BusinessContact, seq, nil)
	}
	for seq := 1; seq <= g.opts.ServiceCount; seq++ {
		g.emitGroup(types.ServiceProvider, seq, nil)
	}
	if err := g.checkSink("contact groups"); err != nil {
		return err
	}

	if err := g.writeScheduleTwo(); err != nil {
		return err
	}
	g.writeValuationTechniques()
	if err := g.checkSink("valuation technique groups"); err != nil {
		return err
	}

	for seq := 1; seq <= g.opts.ScheduleThreeCount; seq++ {
		g.emitGroup(types.ScheduleThree, seq, nil)
	}
	if err := g.checkSink("schedule 3 groups"); err != nil {
		return err
	}

	g.writeSummaryItems()

	g.w.CloseTag(types.EntityElement)
	g.w.CloseTag(types.FinancialDataElement)
	g.w.CloseTag(types.AsOfElement)
	g.w.CloseTag(types.RootElement)

	if err := g.w.Flush(); err != nil {
		return fmt.Errorf("flushing document: %w", err)
	}
	return nil
}

// =============================================================================
// DOCUMENT SECTIONS
// =============================================================================

// writeFileDescription writes the fixed header block.
func (g *Generator) writeFileDescription() {
	now := g.now().UTC()

	g.w.OpenTag(types.FileDescriptionElement)
	g.w.TextLeaf("createDate", now.Format("20060102"))
	g.w.TextLeaf("createTime", now.Format("150405"))
	g.w.TextLeaf("dataTypeIndicator", g.opts.Header.DataTypeIndicator)
	g.w.TextLeaf("requestType", g.opts.Header.RequestType)
	g.w.TextLeaf("receivingSite", g.opts.Header.ReceivingSite)
	g.w.TextLeaf("seriesName", g.opts.Header.SeriesName)
	g.w.TextLeaf("reportingForm", g.opts.Header.ReportingForm)
	g.w.CloseTag(types.FileDescriptionElement)
}

// writeEntityPreamble writes the fixed leading fields of the reporting
// entity record.
func (g *Generator) writeEntityPreamble() {
	identifier := catalog.NumericRange{Min: 1, Max: 9_999_999_999}

	g.w.TextLeaf("reportingEntityIdentifier", identifier.Generate(g.cat.Source()))
	g.w.TextLeaf("transferType", "Initial")
	g.w.TextLeaf("sendingSiteReportKey", "STAR Internal Key")
	g.w.TextLeaf("processingDistrict", "02")
	g.w.TextLeaf("confidentiality", "None", xmlwriter.Attr{Name: "status", Value: "1"})
	g.w.TextLeaf("estimation", "None")
}

// writeStandaloneItems writes the entity-level report items that belong to
// no group, in fixed order.
func (g *Generator) writeStandaloneItems() {
	for _, fieldID := range types.StandaloneItems {
		g.emitItem(fieldID, g.cat.Resolve(fieldID, 0, nil), false)
	}
}

// writeScheduleTwo emits the cross-reference source family. Every instance
// gets its unit field overridden with the token the policy produced, and the
// token set records each token for the derived family.
func (g *Generator) writeScheduleTwo() error {
	for seq := 1; seq <= g.opts.ScheduleTwoCount; seq++ {
		token, err := g.policy.TokenFor(seq, g.tokens)
		if err != nil {
			return fmt.Errorf("schedule 2 instance %d: %w", seq, err)
		}

		g.emitGroup(types.ScheduleTwo, seq, map[string]string{
			types.UnitFieldID: token,
		})
	}

	return g.checkSink("schedule 2 groups")
}

// writeValuationTechniques emits the derived family: one instance per token
// the policy selects, keyed by the token itself rather than a counter.
func (g *Generator) writeValuationTechniques() {
	for _, token := range g.policy.DerivedTokens(g.tokens) {
		g.emitGroup(types.ValuationTechnique, 0, map[string]string{
			types.UnitFieldID: token,
		})
	}
}

// writeSummaryItems writes the trailing summary items from the accumulator,
// the family instance counts, and the fixed literals.
func (g *Generator) writeSummaryItems() {
	counts := map[string]int{
		types.ScheduleTwo.Ref:   g.opts.ScheduleTwoCount,
		types.ScheduleThree.Ref: g.opts.ScheduleThreeCount,
	}

	for _, item := range types.SummaryItems {
		var value string
		switch {
		case item.CountOf != "":
			value = strconv.Itoa(counts[item.CountOf])
		case item.Target != "":
			value = strconv.FormatInt(g.acc.Total(item.Target), 10)
		default:
			value = item.Literal
		}

		g.emitItem(item.FieldID, value, false)
	}
}

// checkSink aborts generation as soon as the sink has rejected a write.
func (g *Generator) checkSink(section string) error {
	if err := g.w.Err(); err != nil {
		return fmt.Errorf("writing %s: %w", section, err)
	}
	return nil
}

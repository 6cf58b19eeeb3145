package report

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"timecard-verify/internal/domain"
)

// Dimension is one comparison dimension's line in the summary table.
// Summary is nil when verification was skipped for the run.
type Dimension struct {
	Label   string
	Summary *domain.Summary
}

// Builder renders the migration coverage report: the verification summary
// for each comparison dimension plus the static function mapping document.
type Builder struct {
	Mapping     *MappingDoc
	Period      domain.Period
	Dimensions  []Dimension
	GeneratedAt time.Time
}

// Render produces the full markdown document. Mapping sections are
// emitted in sorted file order so output is stable between runs.
func (b *Builder) Render() string {
	var w strings.Builder

	w.WriteString("# Legacy → Ported Coverage Report\n\n")
	fmt.Fprintf(&w, "Generated: %s\n", b.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&w, "Target period: %s\n\n", b.Period)

	b.renderSummary(&w)
	b.renderForwardMapping(&w)
	b.renderReverseMapping(&w)
	b.renderTables(&w)
	b.renderLegend(&w)

	return w.String()
}

// WriteFile renders the report and writes it to path.
func (b *Builder) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(b.Render()), 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

func (b *Builder) renderSummary(w *strings.Builder) {
	w.WriteString("## Verification Summary\n\n")
	w.WriteString("| Dimension | Match | Mismatch | Reference only | Candidate only |\n")
	w.WriteString("|-----------|-------|----------|----------------|----------------|\n")
	for _, dim := range b.Dimensions {
		if dim.Summary == nil {
			fmt.Fprintf(w, "| %s | - | - | - | - |\n", dim.Label)
			continue
		}
		s := dim.Summary
		fmt.Fprintf(w, "| %s | %d | %d | %d | %d |\n",
			dim.Label, s.Match, s.Mismatch, s.ReferenceOnly, s.CandidateOnly)
	}
	w.WriteString("\n")
}

func (b *Builder) renderForwardMapping(w *strings.Builder) {
	w.WriteString("---\n\n## Legacy → Ported Function Mapping\n\n")
	for _, file := range sortedKeys(b.Mapping.LegacyToPorted) {
		funcs := b.Mapping.LegacyToPorted[file]
		fmt.Fprintf(w, "### %s\n\n", file)
		w.WriteString("| Legacy function | Ported function | File | Status | Note |\n")
		w.WriteString("|-----------------|-----------------|------|--------|------|\n")
		for _, name := range sortedKeys(funcs) {
			m := funcs[name]
			ported := m.Ported
			if ported == "" {
				ported = "-"
			}
			target := m.File
			if target == "" {
				target = "-"
			}
			fmt.Fprintf(w, "| `%s()` | `%s` | %s | %s | %s |\n",
				name, ported, target, m.Status.Icon(), m.Note)
		}
		w.WriteString("\n")
	}
}

func (b *Builder) renderReverseMapping(w *strings.Builder) {
	w.WriteString("---\n\n## Ported → Legacy Function Mapping\n\n")
	for _, file := range sortedKeys(b.Mapping.PortedToLegacy) {
		funcs := b.Mapping.PortedToLegacy[file]
		fmt.Fprintf(w, "### %s\n\n", file)
		w.WriteString("| Ported function | Legacy function | Status |\n")
		w.WriteString("|-----------------|-----------------|--------|\n")
		for _, name := range sortedKeys(funcs) {
			m := funcs[name]
			legacy := m.Legacy
			if legacy == "" {
				legacy = "-"
			}
			fmt.Fprintf(w, "| `%s()` | `%s` | %s |\n", name, legacy, m.Status.Icon())
		}
		w.WriteString("\n")
	}
}

func (b *Builder) renderTables(w *strings.Builder) {
	w.WriteString("---\n\n## Table References\n\n")
	w.WriteString("| Table | Legacy | Ported |\n")
	w.WriteString("|-------|--------|--------|\n")
	for _, table := range sortedKeys(b.Mapping.Tables) {
		refs := b.Mapping.Tables[table]
		fmt.Fprintf(w, "| %s | %s | %s |\n", table, checkmark(refs.Legacy), checkmark(refs.Ported))
	}
	w.WriteString("\n")
}

func (b *Builder) renderLegend(w *strings.Builder) {
	w.WriteString("---\n\n## Legend\n\n")
	w.WriteString("- ✅ verified identical\n")
	w.WriteString("- ⚠️ differences found\n")
	w.WriteString("- ❌ not yet ported\n")
	w.WriteString("- `-` out of scope\n")
}

func checkmark(set bool) string {
	if set {
		return "✓"
	}
	return ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

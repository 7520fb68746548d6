// Package analysis folds the decoded datasets into the view-ready
// aggregates and cross-references EU substances against US regulations.
package analysis

import (
	"strings"

	"github.com/additivelabs/additive-atlas/internal/model"
)

// Index is the US regulation lookup: entries keyed by CAS number with
// last-write-wins semantics, plus the original document order so name scans
// stay deterministic.
type Index struct {
	byCAS   map[string]model.UsRegulationEntry
	entries []model.UsRegulationEntry
}

// NewIndex builds the lookup from entries in document order. Later entries
// sharing a CAS number overwrite earlier ones; that is not an error.
func NewIndex(entries []model.UsRegulationEntry) *Index {
	idx := &Index{
		byCAS:   make(map[string]model.UsRegulationEntry, len(entries)),
		entries: entries,
	}
	for _, e := range entries {
		idx.byCAS[e.CASNumber] = e
	}
	return idx
}

// Lookup returns the entry for a CAS number, if present.
func (x *Index) Lookup(cas string) (model.UsRegulationEntry, bool) {
	e, ok := x.byCAS[cas]
	return e, ok
}

// Unique returns one entry per CAS number, in order of first appearance,
// each carrying the winning (last-written) value.
func (x *Index) Unique() []model.UsRegulationEntry {
	seen := make(map[string]bool, len(x.byCAS))
	unique := make([]model.UsRegulationEntry, 0, len(x.byCAS))
	for _, e := range x.entries {
		if seen[e.CASNumber] {
			continue
		}
		seen[e.CASNumber] = true
		unique = append(unique, x.byCAS[e.CASNumber])
	}
	return unique
}

// Len returns the number of distinct CAS numbers in the index.
func (x *Index) Len() int {
	return len(x.byCAS)
}

// Resolve determines a substance's US status for the high-risk substances
// table: exact CAS lookup, then a case-insensitive exact name scan, else
// Not Listed.
func (x *Index) Resolve(cas, name string) model.RegStatus {
	if e, ok := x.byCAS[cas]; ok {
		return e.Status
	}
	if name != "" {
		for _, e := range x.entries {
			if strings.EqualFold(e.SubstanceName, name) {
				return e.Status
			}
		}
	}
	return model.StatusNotListed
}

// ResolveLoose determines a substance's US status for the per-food-category
// breakdowns: exact CAS lookup, then a case-insensitive bidirectional
// substring scan. This is deliberately looser than Resolve; the two rules
// serve different precision needs and are kept separate on purpose.
func (x *Index) ResolveLoose(cas, name string) model.RegStatus {
	if e, ok := x.byCAS[cas]; ok {
		return e.Status
	}
	if name != "" {
		lower := strings.ToLower(name)
		for _, e := range x.entries {
			entryLower := strings.ToLower(e.SubstanceName)
			if strings.Contains(entryLower, lower) || strings.Contains(lower, entryLower) {
				return e.Status
			}
		}
	}
	return model.StatusNotListed
}

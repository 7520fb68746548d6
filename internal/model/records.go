package model

import "fmt"

// ComparisonRecord is one row of the US/EU comparison document.
type ComparisonRecord struct {
	Category  string // one of the Category* constants
	Name      string
	CASNumber string
	Details   string
}

// Validate ensures the record carries a known category and a substance name.
func (r *ComparisonRecord) Validate() error {
	switch r.Category {
	case CategoryBannedBoth, CategoryBannedEUOnly, CategoryHighRiskEU:
	default:
		return fmt.Errorf("unknown comparison category %q", r.Category)
	}
	if r.Name == "" {
		return fmt.Errorf("comparison record missing substance name")
	}
	return nil
}

// HighRiskRestriction is one row of the EU high-risk document: a usage limit
// for a substance within a single food category.
type HighRiskRestriction struct {
	SubstanceName string
	FoodCategory  string
	MaxLevel      float64 // mg/kg or mg/kg/l; 0 when the source value is unparsable
	RawDetail     string
}

// UsRegulationEntry is one qualifying row of the US indirect-additives
// document, keyed by CAS number.
type UsRegulationEntry struct {
	CASNumber     string    `json:"casNumber"`
	SubstanceName string    `json:"substanceName"`
	Status        RegStatus `json:"status"`
}

// Validate ensures the entry has the fields the cross-referencer relies on.
func (e *UsRegulationEntry) Validate() error {
	if e.CASNumber == "" {
		return fmt.Errorf("US regulation entry missing CAS number")
	}
	if e.SubstanceName == "" {
		return fmt.Errorf("US regulation entry missing substance name")
	}
	if e.Status != StatusAllowed && e.Status != StatusProhibited {
		return fmt.Errorf("US regulation entry has invalid status %q", e.Status)
	}
	return nil
}

// Package model defines the core types shared across the application.
package model

// RegStatus describes how a substance is treated by US regulations.
type RegStatus string

// US regulatory statuses.
const (
	StatusAllowed    RegStatus = "Allowed"
	StatusProhibited RegStatus = "Prohibited"
	StatusNotListed  RegStatus = "Not Listed"
)

// Comparison document category vocabulary. The comparison dataset tags every
// record with exactly one of these.
const (
	CategoryBannedBoth   = "Banned in both US and EU"
	CategoryBannedEUOnly = "Banned in EU only"
	CategoryHighRiskEU   = "High risk in EU"
)

// Tally group tags.
const (
	GroupEU = "EU"
	GroupUS = "US"
)

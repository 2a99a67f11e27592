package models

import "strings"

// DealCatalogEntry maps one business problem to its recommended deal types
// and the rationale behind them. Static reference data.
type DealCatalogEntry struct {
	BusinessProblem string   `json:"business_problem"`
	DealTypes       []string `json:"deal_types"`
	Rationale       string   `json:"rationale"`
}

// DealCatalog is the full deal bank, shared read-only across analysis runs.
type DealCatalog []DealCatalogEntry

// Lookup returns the catalog entry for a business problem, or false when the
// deal bank has no match.
func (c DealCatalog) Lookup(businessProblem string) (DealCatalogEntry, bool) {
	for _, entry := range c {
		if entry.BusinessProblem == businessProblem {
			return entry, true
		}
	}
	return DealCatalogEntry{}, false
}

// ParseDealTypes splits the deal bank's semicolon-separated deal type field
// into a cleaned list.
func ParseDealTypes(s string) []string {
	if s == "" {
		return nil
	}
	var deals []string
	for _, part := range strings.Split(s, ";") {
		if deal := strings.TrimSpace(part); deal != "" {
			deals = append(deals, deal)
		}
	}
	return deals
}

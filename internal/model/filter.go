package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// StatusFilter is the explicit status selection for listing queries.
// Leaving the status unspecified is not the same as asking for everything:
// the default hides passive listings.
type StatusFilter int

const (
	// StatusFilterDefault applies the public visibility policy (ACTIVE only).
	StatusFilterDefault StatusFilter = iota
	// StatusFilterActive matches ACTIVE listings.
	StatusFilterActive
	// StatusFilterPassive matches PASSIVE listings.
	StatusFilterPassive
	// StatusFilterAll matches listings regardless of status.
	StatusFilterAll
)

// ParseStatusFilter maps the status query parameter to a StatusFilter.
// An empty value selects the default visibility policy; "ALL" is the
// admin dashboard's explicit request to see everything.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch s {
	case "":
		return StatusFilterDefault, nil
	case string(PropertyStatusActive):
		return StatusFilterActive, nil
	case string(PropertyStatusPassive):
		return StatusFilterPassive, nil
	case "ALL":
		return StatusFilterAll, nil
	default:
		return StatusFilterDefault, fmt.Errorf("unknown status %q", s)
	}
}

// ListFilter holds the optional listing query constraints.
// All supplied constraints are combined with AND.
type ListFilter struct {
	Type     *PropertyType
	Status   StatusFilter
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

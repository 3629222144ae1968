package models

// TransactionFilters selects records for one window and, optionally, one canonical type.
// TypeLabels lists every raw label that maps onto Type; when empty the canonical name is used.
type TransactionFilters struct {
	Window     TimeWindow
	Type       *TransactionType
	TypeLabels []string
}

// HasTypeFilter reports whether the query is narrowed to one canonical type.
func (f TransactionFilters) HasTypeFilter() bool {
	return f.Type != nil
}

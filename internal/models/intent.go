package models

// Intent is the structured payload returned by intent extraction.
type Intent struct {
	Name   string       `json:"intent" validate:"omitempty,eq=summary"`
	Params IntentParams `json:"params"`
}

// IntentParams carries the raw range token and optional type label. Neither is trusted:
// the range token is checked by the window resolver and the label by the type normalizer.
type IntentParams struct {
	DateRange RangeToken `json:"date_range" validate:"omitempty,max=32"`
	Type      string     `json:"type,omitempty" validate:"omitempty,max=32,type_label"`
}

// RangeOrDefault returns the requested token, or the default when none was given.
func (p IntentParams) RangeOrDefault() RangeToken {
	if p.DateRange == "" {
		return DefaultRangeToken
	}
	return p.DateRange
}

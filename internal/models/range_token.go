package models

// RangeToken is the symbolic time-window selector produced by intent extraction.
type RangeToken string

const (
	RangeCurrentMonth  RangeToken = "current_month"
	RangePreviousMonth RangeToken = "previous_month"
	RangeLast7Days     RangeToken = "last_7_days"
	RangeLast30Days    RangeToken = "last_30_days"
)

// DefaultRangeToken is used when the question names no period.
const DefaultRangeToken = RangeCurrentMonth

// RangeTokens returns the supported tokens in display order.
func RangeTokens() []RangeToken {
	return []RangeToken{RangeCurrentMonth, RangePreviousMonth, RangeLast7Days, RangeLast30Days}
}

// IsValid reports whether t is one of the supported tokens.
func (t RangeToken) IsValid() bool {
	switch t {
	case RangeCurrentMonth, RangePreviousMonth, RangeLast7Days, RangeLast30Days:
		return true
	default:
		return false
	}
}

func (t RangeToken) String() string {
	return string(t)
}

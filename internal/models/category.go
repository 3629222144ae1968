package models

import "strings"

// Ledger categories. Category is descriptive only and never affects aggregation.
const (
	CategorySalary         = "salary"
	CategoryFreelance      = "freelance"
	CategoryHousing        = "housing"
	CategoryUtilities      = "utilities"
	CategoryGroceries      = "groceries"
	CategoryDining         = "dining"
	CategoryTransportation = "transportation"
	CategoryShopping       = "shopping"
	CategoryEntertainment  = "entertainment"
	CategoryOther          = "other"
)

// AllCategories returns all known categories
func AllCategories() []string {
	return []string{
		CategorySalary,
		CategoryFreelance,
		CategoryHousing,
		CategoryUtilities,
		CategoryGroceries,
		CategoryDining,
		CategoryTransportation,
		CategoryShopping,
		CategoryEntertainment,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is known, ignoring case
func IsValidCategory(category string) bool {
	category = strings.ToLower(strings.TrimSpace(category))
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

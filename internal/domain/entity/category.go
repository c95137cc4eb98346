package entity

import "strings"

// CategoryAll is the filter value that disables category filtering.
const CategoryAll = "all"

// Categories lists the offer and business categories in display order.
var Categories = []string{
	"Food & Dining",
	"Fitness & Health",
	"Shopping",
	"Entertainment",
	"Services",
	"Beauty & Spa",
	"Automotive",
	"Education",
	"Healthcare",
	"Fashion",
	"Electronics",
	"Travel & Tourism",
	"Real Estate",
	"Other",
}

// IsValidCategory reports whether category is one of Categories (exact match).
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}

	return false
}

// NormalizeCategoryFilter maps "" and "all" to the empty filter.
func NormalizeCategoryFilter(filter string) string {
	filter = strings.TrimSpace(filter)
	if strings.EqualFold(filter, CategoryAll) {
		return ""
	}

	return filter
}

// MatchesCategory applies a category filter; an empty or "all" filter matches everything.
func MatchesCategory(category, filter string) bool {
	filter = NormalizeCategoryFilter(filter)
	if filter == "" {
		return true
	}

	return category == filter
}

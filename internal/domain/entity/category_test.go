package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategories(t *testing.T) {
	assert.Len(t, Categories, 14)
	assert.True(t, IsValidCategory("Food & Dining"))
	assert.True(t, IsValidCategory("Other"))
	assert.False(t, IsValidCategory("food & dining"))
	assert.False(t, IsValidCategory(""))
}

func TestMatchesCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		filter   string
		want     bool
	}{
		{name: "empty filter", category: "Shopping", filter: "", want: true},
		{name: "all filter", category: "Shopping", filter: "all", want: true},
		{name: "All filter", category: "Shopping", filter: "All", want: true},
		{name: "exact match", category: "Shopping", filter: "Shopping", want: true},
		{name: "different category", category: "Shopping", filter: "Fashion", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesCategory(tt.category, tt.filter))
		})
	}
}

package catalogservice

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListServices(t *testing.T) {
	service := New(DefaultListings())

	tests := []struct {
		name          string
		category      string
		expectedNames []string
	}{
		{
			name:     "No filter",
			category: "",
			expectedNames: []string{
				"House Cleaning", "Plumbing Repair", "Tech Support",
				"Mobile Mechanic", "Locksmith", "Home Lighting Installation",
			},
		},
		{
			name:     "All keyword",
			category: AllCategories,
			expectedNames: []string{
				"House Cleaning", "Plumbing Repair", "Tech Support",
				"Mobile Mechanic", "Locksmith", "Home Lighting Installation",
			},
		},
		{
			name:          "Maintenance only",
			category:      "Maintenance",
			expectedNames: []string{"Plumbing Repair", "Locksmith", "Home Lighting Installation"},
		},
		{
			name:          "Unknown category",
			category:      "Gardening",
			expectedNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listings, err := service.ListServices(context.Background(), tt.category)
			require.NoError(t, err)

			names := make([]string, 0, len(listings))
			for _, l := range listings {
				names = append(names, l.Name)
			}
			assert.Equal(t, tt.expectedNames, names)
		})
	}
}

func TestGetService(t *testing.T) {
	service := New(DefaultListings())

	listing, err := service.GetService(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "House Cleaning", listing.Name)
	assert.True(t, listing.Price.Equal(decimal.NewFromInt(50)))

	_, err = service.GetService(context.Background(), 999)
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestGetService_ReturnsCopy(t *testing.T) {
	service := New(DefaultListings())

	listing, err := service.GetService(context.Background(), 1)
	require.NoError(t, err)
	listing.Price = decimal.NewFromInt(1)

	again, err := service.GetService(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, again.Price.Equal(decimal.NewFromInt(50)))
}

func TestCategories(t *testing.T) {
	service := New(DefaultListings())

	categories, err := service.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Auto", "Home", "Maintenance", "Tech"}, categories)
}

func TestDefaultListings_PositivePrices(t *testing.T) {
	ids := make(map[int]bool)
	for _, l := range DefaultListings() {
		assert.True(t, l.Price.IsPositive(), l.Name)
		assert.False(t, ids[l.ID], "duplicate id %d", l.ID)
		ids[l.ID] = true
	}
}

package catalogservice

import (
	"context"
	"errors"
	"sort"

	"github.com/GlebRadaev/serviceconnect/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AllCategories disables the category filter.
const AllCategories = "All"

var ErrListingNotFound = errors.New("service not found")

type Service struct {
	listings []domain.ServiceListing
}

func New(listings []domain.ServiceListing) *Service {
	cp := make([]domain.ServiceListing, len(listings))
	copy(cp, listings)
	return &Service{
		listings: cp,
	}
}

func DefaultListings() []domain.ServiceListing {
	return []domain.ServiceListing{
		{ID: 1, Name: "House Cleaning", Category: "Home", Price: decimal.NewFromInt(50), Description: "Deep cleaning for living room, kitchen, and bath.", Icon: "🧹"},
		{ID: 2, Name: "Plumbing Repair", Category: "Maintenance", Price: decimal.NewFromInt(80), Description: "Fix leaks and unclog drains.", Icon: "🔧"},
		{ID: 3, Name: "Tech Support", Category: "Tech", Price: decimal.NewFromInt(60), Description: "Remote PC/Mac troubleshooting.", Icon: "🖥️"},
		{ID: 20, Name: "Mobile Mechanic", Category: "Auto", Price: decimal.NewFromInt(90), Description: "Oil change and battery replacement at home.", Icon: "🛠️"},
		{ID: 23, Name: "Locksmith", Category: "Maintenance", Price: decimal.NewFromInt(60), Description: "Emergency lockout or lock replacement.", Icon: "🔐"},
		{ID: 40, Name: "Home Lighting Installation", Category: "Maintenance", Price: decimal.NewFromInt(80), Description: "Install ceiling lights and lamps.", Icon: "💡"},
	}
}

func (s *Service) ListServices(ctx context.Context, category string) ([]domain.ServiceListing, error) {
	result := make([]domain.ServiceListing, 0, len(s.listings))
	for _, listing := range s.listings {
		if category == "" || category == AllCategories || listing.Category == category {
			result = append(result, listing)
		}
	}
	return result, nil
}

func (s *Service) GetService(ctx context.Context, id int) (*domain.ServiceListing, error) {
	for _, listing := range s.listings {
		if listing.ID == id {
			l := listing
			return &l, nil
		}
	}
	zap.L().Info("service listing not found", zap.Int("service_id", id))
	return nil, ErrListingNotFound
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, listing := range s.listings {
		if _, ok := seen[listing.Category]; ok {
			continue
		}
		seen[listing.Category] = struct{}{}
		categories = append(categories, listing.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

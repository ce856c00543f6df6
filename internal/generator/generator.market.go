package generator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/itsatony/agrisynth/internal/models"
	"github.com/itsatony/agrisynth/internal/params"
)

// GenerateProducts returns count listings of vendors drawn with replacement
func (g *Generator) GenerateProducts(vendors []models.User, count int) ([]models.Product, error) {
	if err := validateCount("count", count); err != nil {
		return nil, err
	}
	if err := requireParents("vendors", len(vendors), count); err != nil {
		return nil, err
	}

	now := g.now()
	products := make([]models.Product, 0, count)
	for i := 0; i < count; i++ {
		vendor := pick(g, vendors)
		category := pick(g, models.ProductCategories)
		profile := params.CategoryProfile(category)
		name := pick(g, profile.Names)
		created := g.since(vendor.CreatedAt, now)

		products = append(products, models.Product{
			ID:          g.ids.NewID(PrefixProduct),
			Name:        name,
			Description: fmt.Sprintf("%s from %s, %s. %s supplied by %s.", name, vendor.City, vendor.Province, category, vendor.Name),
			Price:       decimal.NewFromFloat(g.floatBetween(profile.MinPrice, profile.MaxPrice)).Round(2),
			Quantity:    g.intBetween(1, 500),
			VendorID:    vendor.ID,
			Category:    category,
			ImageURL:    placeholderImage(strings.ToLower(string(category))),
			Currency:    models.CurrencyCode,
			CreatedAt:   created,
			UpdatedAt:   created,
		})
	}
	return products, nil
}

// GenerateOrders returns count orders of random buyers for random products.
// TotalPrice is price x quantity rounded to two decimals.
func (g *Generator) GenerateOrders(buyers []models.User, products []models.Product, count int) ([]models.Order, error) {
	if err := validateCount("count", count); err != nil {
		return nil, err
	}
	if err := requireParents("buyers", len(buyers), count); err != nil {
		return nil, err
	}
	if err := requireParents("products", len(products), count); err != nil {
		return nil, err
	}

	now := g.now()
	orders := make([]models.Order, 0, count)
	for i := 0; i < count; i++ {
		buyer := pick(g, buyers)
		product := pick(g, products)
		quantity := g.orderQuantity()
		created := g.since(product.CreatedAt, now)

		orders = append(orders, models.Order{
			ID:         g.ids.NewID(PrefixOrder),
			BuyerID:    buyer.ID,
			ProductID:  product.ID,
			Quantity:   quantity,
			TotalPrice: models.OrderTotal(product.Price, quantity),
			Status:     pick(g, models.OrderStatuses),
			Currency:   models.CurrencyCode,
			CreatedAt:  created,
			UpdatedAt:  created,
		})
	}
	return orders, nil
}

package shopify

import (
	"strconv"

	"github.com/elinacho/lumiskin-backend/internal/app/model"
)

// NormalizeProduct flattens a raw Storefront product node into the internal
// product shape. The first variant is the representative price/availability
// source; the first image becomes the primary image while the full ordered
// list is retained. Partial input never fails, it just yields zero defaults.
func NormalizeProduct(node ProductNode) model.Product {
	p := model.Product{
		ID:          node.ID,
		Source:      model.SourceShopify,
		Name:        node.Title,
		Description: node.Description,
		Category:    node.ProductType,
		Handle:      node.Handle,
		Vendor:      node.Vendor,
		ProductType: node.ProductType,
		Tags:        node.Tags,
		ShopifyID:   node.ID,
	}

	for _, edge := range node.Images.Edges {
		p.Images = append(p.Images, edge.Node.URL)
	}
	if len(p.Images) > 0 {
		p.Image = p.Images[0]
	}

	if len(node.Variants.Edges) > 0 {
		variant := node.Variants.Edges[0].Node
		p.Price = parseMoney(variant.Price)
		p.InStock = variant.AvailableForSale
		if variant.CompareAtPrice != nil {
			compareAt := parseMoney(*variant.CompareAtPrice)
			p.CompareAtPrice = &compareAt
		}
	} else {
		// No variants at all: fall back to the price range minimum.
		p.Price = parseMoney(node.PriceRange.MinVariantPrice)
	}

	p.EnsureDefaults()
	return p
}

func normalizeProducts(edges []ProductEdge) []model.Product {
	products := make([]model.Product, 0, len(edges))
	for _, edge := range edges {
		products = append(products, NormalizeProduct(edge.Node))
	}
	return products
}

// NormalizeCollection flattens a raw collection node.
func NormalizeCollection(node CollectionNode) Collection {
	c := Collection{
		ID:          node.ID,
		Title:       node.Title,
		Handle:      node.Handle,
		Description: node.Description,
	}
	if node.Image != nil {
		c.ImageURL = node.Image.URL
	}
	return c
}

// parseMoney converts the Storefront string amount to a numeric Money value.
// Malformed amounts parse to zero rather than failing.
func parseMoney(m MoneyV2) model.Money {
	amount, err := strconv.ParseFloat(m.Amount, 64)
	if err != nil {
		amount = 0
	}
	return model.Money{
		Amount:       amount,
		CurrencyCode: m.CurrencyCode,
	}
}

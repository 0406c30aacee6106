package shopify

import "github.com/elinacho/lumiskin-backend/internal/app/model"

// Raw Storefront API response shapes. The GraphQL schema nests everything in
// edges/nodes; NormalizeProduct flattens them into model.Product.

// MoneyV2 is the Storefront money object. Amount arrives as a string.
type MoneyV2 struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type ImageNode struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
}

type ImageEdge struct {
	Node ImageNode `json:"node"`
}

type ImageConnection struct {
	Edges []ImageEdge `json:"edges"`
}

type VariantNode struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	AvailableForSale bool     `json:"availableForSale"`
	Price            MoneyV2  `json:"price"`
	CompareAtPrice   *MoneyV2 `json:"compareAtPrice"`
}

type VariantEdge struct {
	Node VariantNode `json:"node"`
}

type VariantConnection struct {
	Edges []VariantEdge `json:"edges"`
}

type PriceRange struct {
	MinVariantPrice MoneyV2 `json:"minVariantPrice"`
}

type ProductNode struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Handle      string            `json:"handle"`
	Description string            `json:"description"`
	Vendor      string            `json:"vendor"`
	ProductType string            `json:"productType"`
	Tags        []string          `json:"tags"`
	PriceRange  PriceRange        `json:"priceRange"`
	Images      ImageConnection   `json:"images"`
	Variants    VariantConnection `json:"variants"`
}

type ProductEdge struct {
	Node ProductNode `json:"node"`
}

type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type ProductConnection struct {
	Edges    []ProductEdge `json:"edges"`
	PageInfo PageInfo      `json:"pageInfo"`
}

type CollectionNode struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Handle      string     `json:"handle"`
	Description string     `json:"description"`
	Image       *ImageNode `json:"image"`
}

type CollectionEdge struct {
	Node CollectionNode `json:"node"`
}

type CollectionConnection struct {
	Edges    []CollectionEdge `json:"edges"`
	PageInfo PageInfo         `json:"pageInfo"`
}

// Collection is the flattened shape handed to callers.
type Collection struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Handle      string `json:"handle"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// ProductPage is one page of normalized products. Callers page forward by
// re-invoking with After set to EndCursor.
type ProductPage struct {
	Products    []model.Product `json:"products"`
	HasNextPage bool            `json:"has_next_page"`
	EndCursor   string          `json:"end_cursor"`
}

type CollectionPage struct {
	Collections []Collection `json:"collections"`
	HasNextPage bool         `json:"has_next_page"`
	EndCursor   string       `json:"end_cursor"`
}

// SortKey values accepted by the products query.
type SortKey string

const (
	SortKeyTitle       SortKey = "TITLE"
	SortKeyPrice       SortKey = "PRICE"
	SortKeyBestSelling SortKey = "BEST_SELLING"
	SortKeyCreatedAt   SortKey = "CREATED_AT"
	SortKeyRelevance   SortKey = "RELEVANCE"
)

// ListOptions controls list queries. Zero values mean "API defaults".
type ListOptions struct {
	First   int
	After   string
	Query   string
	SortKey SortKey
	Reverse bool
}

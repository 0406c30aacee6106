package model

// ProductSource tags where a product record originated. Consumers switch on
// this discriminant instead of probing optional Shopify fields.
type ProductSource string

const (
	SourceLocal   ProductSource = "local"
	SourceShopify ProductSource = "shopify"
)

// Money is the single internal price representation. Formatting happens at the
// presentation boundary, never here.
type Money struct {
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currency_code"`
}

type KeyIngredient struct {
	Name        string `json:"name"`
	Percentage  string `json:"percentage,omitempty"`
	Function    string `json:"function"`
	Description string `json:"description"`
}

type Product struct {
	ID             string          `json:"id"`
	Source         ProductSource   `json:"source"`
	Name           string          `json:"name"`
	Price          Money           `json:"price"`
	CompareAtPrice *Money          `json:"compare_at_price,omitempty"`
	Category       string          `json:"category"`
	Image          string          `json:"image"`
	Images         []string        `json:"images"`
	Description    string          `json:"description"`
	Benefits       []string        `json:"benefits"`
	SkinTypes      []string        `json:"skin_types"`
	KeyIngredients []KeyIngredient `json:"key_ingredients"`
	AllIngredients string          `json:"all_ingredients"`
	HowToUse       []string        `json:"how_to_use"`
	Warnings       []string        `json:"warnings"`
	InStock        bool            `json:"in_stock"`
	Size           string          `json:"size"`

	// Shopify-origin fields. Zero-valued for local products.
	Handle      string   `json:"handle,omitempty"`
	Vendor      string   `json:"vendor,omitempty"`
	ProductType string   `json:"product_type,omitempty"`
	Tags        []string `json:"tags"`
	ShopifyID   string   `json:"shopify_id,omitempty"`
}

// EnsureDefaults replaces nil collections with empty ones so consumers stay
// branch-free.
func (p *Product) EnsureDefaults() {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Benefits == nil {
		p.Benefits = []string{}
	}
	if p.SkinTypes == nil {
		p.SkinTypes = []string{}
	}
	if p.KeyIngredients == nil {
		p.KeyIngredients = []KeyIngredient{}
	}
	if p.HowToUse == nil {
		p.HowToUse = []string{}
	}
	if p.Warnings == nil {
		p.Warnings = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

// IsShopify reports whether the record originated from the Storefront API.
func (p *Product) IsShopify() bool {
	return p.Source == SourceShopify
}

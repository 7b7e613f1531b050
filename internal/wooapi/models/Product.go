package models

type Product struct {
	ID           int            `json:"id,omitempty"`
	Name         string         `json:"name,omitempty"`
	Slug         string         `json:"slug,omitempty"`
	Permalink    string         `json:"permalink,omitempty"`
	DateCreated  string         `json:"date_created,omitempty"`
	DateModified string         `json:"date_modified,omitempty"`
	Type         string         `json:"type,omitempty"`
	Status       string         `json:"status,omitempty"`
	Sku          string         `json:"sku,omitempty"`
	Price        string         `json:"price,omitempty"`
	RegularPrice string         `json:"regular_price,omitempty"`
	SalePrice    string         `json:"sale_price,omitempty"`
	OnSale       bool           `json:"on_sale,omitempty"`
	Purchasable  bool           `json:"purchasable,omitempty"`
	ParentId     int            `json:"parent_id,omitempty"`
	Categories   []*Categories  `json:"categories,omitempty"`
	Images       []ProductImage `json:"images,omitempty"`
	Variations   []int          `json:"variations,omitempty"`
	MenuOrder    int            `json:"menu_order,omitempty"`
	PriceHtml    string         `json:"price_html,omitempty"`
	MetaData     []MetaData     `json:"meta_data,omitempty"`
	StockStatus  string         `json:"stock_status,omitempty"`
	HasOptions   bool           `json:"has_options,omitempty"`
	Links        *Links         `json:"_links,omitempty"`
}

// ProductVariation is an item of products/{id}/variations
type ProductVariation struct {
	ID           int                  `json:"id,omitempty"`
	Sku          string               `json:"sku,omitempty"`
	Price        string               `json:"price,omitempty"`
	RegularPrice string               `json:"regular_price,omitempty"`
	SalePrice    string               `json:"sale_price,omitempty"`
	OnSale       bool                 `json:"on_sale,omitempty"`
	Status       string               `json:"status,omitempty"`
	MenuOrder    int                  `json:"menu_order,omitempty"`
	Attributes   []VariationAttribute `json:"attributes,omitempty"`
	MetaData     []MetaData           `json:"meta_data,omitempty"`
}

type VariationAttribute struct {
	Id     int    `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Option string `json:"option,omitempty"`
}

// ProductUpdate is the body of a price update. Both prices are always sent,
// an empty sale price removes the sale.
type ProductUpdate struct {
	RegularPrice string `json:"regular_price"`
	SalePrice    string `json:"sale_price"`
}

type ProductImage struct {
	Id   int    `json:"id,omitempty"`
	Src  string `json:"src,omitempty"`
	Name string `json:"name,omitempty"`
	Alt  string `json:"alt,omitempty"`
}

type Categories struct {
	Id   int    `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

type MetaData struct {
	Id    int         `json:"id,omitempty"`
	Key   string      `json:"key,omitempty"`
	Value interface{} `json:"value,omitempty"`
}

type Links struct {
	Self []struct {
		Href string `json:"href,omitempty"`
	} `json:"self,omitempty"`
	Collection []struct {
		Href string `json:"href,omitempty"`
	} `json:"collection,omitempty"`
	Up []struct {
		Href string `json:"href,omitempty"`
	} `json:"up,omitempty"`
}

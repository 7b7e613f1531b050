package bulkprice

import (
	"WooMasterKit/internal/price"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	KindSimple    = "simple"
	KindVariable  = "variable"
	KindVariation = "variation"
)

var ErrProductNotFound = errors.New("product not found")

// Product is a product or a variation as far as prices go. Prices keep the
// platform's string form, an unset sale price is "".
type Product struct {
	ID           int
	ParentID     int
	Name         string
	Kind         string
	RegularPrice string
	SalePrice    string
}

func (p *Product) Price(f price.Field) string {
	if f == price.Sale {
		return p.SalePrice
	}
	return p.RegularPrice
}

func (p *Product) SetPrice(f price.Field, v string) {
	if f == price.Sale {
		p.SalePrice = v
	} else {
		p.RegularPrice = v
	}
}

// Store is the product repository of the commerce platform.
//
// Find returns ErrProductNotFound (possibly wrapped) for unknown ids.
// Variations returns the variations of a variable product in platform order.
// Save persists a product or a variation.
type Store interface {
	Find(id int) (*Product, error)
	Variations(p *Product) ([]*Product, error)
	Save(p *Product) error
}

type ChangeRecord struct {
	ProductID   int             `json:"product_id"`
	VariationID int             `json:"variation_id,omitempty"`
	Field       price.Field     `json:"field"`
	Old         decimal.Decimal `json:"old"`
	New         decimal.Decimal `json:"new"`
}

// ItemID is the id of the record that was written.
func (r ChangeRecord) ItemID() int {
	if r.VariationID != 0 {
		return r.VariationID
	}
	return r.ProductID
}

type ProductReport struct {
	ProductID int            `json:"product_id"`
	Name      string         `json:"name"`
	Kind      string         `json:"kind"`
	Records   []ChangeRecord `json:"records"`
	// SaveErrors counts persistence calls that failed for this product.
	SaveErrors int `json:"save_errors,omitempty"`
}

type Report struct {
	ID         string           `json:"id"`
	CreatedAt  time.Time        `json:"created_at"`
	Currency   string           `json:"currency"`
	ChangeType price.ChangeType `json:"change_type"`
	Amount     decimal.Decimal  `json:"amount"`
	Round      bool             `json:"round"`
	Fields     []price.Field    `json:"fields"`
	Products   []ProductReport  `json:"products"`
	Skipped    []string         `json:"skipped"`
}

func (r *Report) Display(d decimal.Decimal) string {
	return price.Display(r.Currency, d)
}

func (r *Report) Records() int {
	n := 0
	for _, p := range r.Products {
		n += len(p.Records)
	}
	return n
}

func (r *Report) SaveErrors() int {
	n := 0
	for _, p := range r.Products {
		n += p.SaveErrors
	}
	return n
}

var ErrReportNotFound = errors.New("report not found")

// ReportStore keeps finished reports between the form post and the redirect
// target that renders them.
type ReportStore interface {
	Put(r *Report) error
	Get(id string) (*Report, error)
}

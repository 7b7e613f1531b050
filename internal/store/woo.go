// Package store binds the bulk price change to the WooCommerce REST API.
package store

import (
	"WooMasterKit/internal/bulkprice"
	"WooMasterKit/internal/wooapi"
	"WooMasterKit/internal/wooapi/models"
	"WooMasterKit/pkg/logging"
	"html"

	"github.com/pkg/errors"
)

// SearchLimit is the page size of the product picker.
const SearchLimit = 10

type SearchResult struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

type WooStore struct {
	api wooapi.WOOAPI
}

func NewWooStore(api wooapi.WOOAPI) *WooStore {
	return &WooStore{api: api}
}

func (s *WooStore) Find(id int) (*bulkprice.Product, error) {
	p, err := s.api.ProductGet(id)
	if err != nil {
		if wooErr, ok := errors.Cause(err).(*models.ErrorWoo); ok && wooErr.NotFound() {
			return nil, errors.Wrapf(bulkprice.ErrProductNotFound, "id %d", id)
		}
		return nil, errors.Wrapf(err, "failed ProductGet(%d)", id)
	}

	kind := p.Type
	if kind == "" {
		kind = bulkprice.KindSimple
	}
	return &bulkprice.Product{
		ID:           p.ID,
		ParentID:     p.ParentId,
		Name:         html.UnescapeString(p.Name),
		Kind:         kind,
		RegularPrice: p.RegularPrice,
		SalePrice:    p.SalePrice,
	}, nil
}

func (s *WooStore) Variations(p *bulkprice.Product) ([]*bulkprice.Product, error) {
	variations, err := s.api.ProductVariationListAll(p.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed ProductVariationListAll(%d)", p.ID)
	}

	out := make([]*bulkprice.Product, 0, len(variations))
	for _, v := range variations {
		out = append(out, &bulkprice.Product{
			ID:           v.ID,
			ParentID:     p.ID,
			Name:         p.Name,
			Kind:         bulkprice.KindVariation,
			RegularPrice: v.RegularPrice,
			SalePrice:    v.SalePrice,
		})
	}
	return out, nil
}

func (s *WooStore) Save(p *bulkprice.Product) error {
	logger := logging.GetLogger()
	u := &models.ProductUpdate{
		RegularPrice: p.RegularPrice,
		SalePrice:    p.SalePrice,
	}

	if p.Kind == bulkprice.KindVariation {
		logger.Debugf("Save:>variation ID=%d of product ID=%d", p.ID, p.ParentID)
		if _, err := s.api.ProductVariationUpdate(p.ParentID, p.ID, u); err != nil {
			return errors.Wrapf(err, "failed ProductVariationUpdate(%d, %d)", p.ParentID, p.ID)
		}
		return nil
	}

	logger.Debugf("Save:>product ID=%d", p.ID)
	if _, err := s.api.ProductUpdate(p.ID, u); err != nil {
		return errors.Wrapf(err, "failed ProductUpdate(%d)", p.ID)
	}
	return nil
}

// Search returns up to SearchLimit products matching term, shaped for the
// product picker.
func (s *WooStore) Search(term string) ([]SearchResult, error) {
	products, err := s.api.ProductSearch(term, SearchLimit)
	if err != nil {
		return nil, errors.Wrapf(err, "failed ProductSearch(%q)", term)
	}

	results := make([]SearchResult, 0, len(products))
	for _, p := range products {
		if len(results) == SearchLimit {
			break
		}
		results = append(results, SearchResult{ID: p.ID, Text: html.UnescapeString(p.Name)})
	}
	return results, nil
}

package bulkprice

import (
	"WooMasterKit/internal/price"
	"WooMasterKit/pkg/logging"
)

// applyFields rewrites the requested price fields of p in memory and returns
// one record per field. Regular is always handled before Sale.
func applyFields(p *Product, req *PriceChangeRequest, productID, variationID int) []ChangeRecord {
	var records []ChangeRecord
	for _, f := range price.Fields {
		if !req.HasField(f) {
			continue
		}
		old := price.Parse(p.Price(f))
		updated := price.Calculate(old, req.ChangeType, req.Amount, req.Round)
		p.SetPrice(f, price.Format(updated))
		records = append(records, ChangeRecord{
			ProductID:   productID,
			VariationID: variationID,
			Field:       f,
			Old:         old,
			New:         updated,
		})
	}
	return records
}

// updateSimple changes the product's own prices and saves it once.
func (s *Service) updateSimple(p *Product, req *PriceChangeRequest, report *ProductReport) {
	logger := logging.GetLogger()
	logger.Debugf("updateSimple:>Product ID=%d", p.ID)

	report.Records = append(report.Records, applyFields(p, req, p.ID, 0)...)

	if err := s.store.Save(p); err != nil {
		report.SaveErrors++
		logger.Errorf("failed Save() product ID=%d, error: %v", p.ID, err)
	}
}

// updateVariable changes every variation of p and saves each one on its own.
// The parent product is never saved.
func (s *Service) updateVariable(p *Product, req *PriceChangeRequest, report *ProductReport) {
	logger := logging.GetLogger()
	logger.Debugf("updateVariable:>Product ID=%d", p.ID)

	variations, err := s.store.Variations(p)
	if err != nil {
		logger.Errorf("failed Variations() product ID=%d, error: %v", p.ID, err)
		return
	}
	logger.Debugf("updateVariable:>Variations: %d", len(variations))

	for _, v := range variations {
		report.Records = append(report.Records, applyFields(v, req, p.ID, v.ID)...)

		if err := s.store.Save(v); err != nil {
			report.SaveErrors++
			logger.Errorf("failed Save() variation ID=%d of product ID=%d, error: %v", v.ID, p.ID, err)
		}
	}
}

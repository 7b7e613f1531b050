package bulkprice

import (
	"WooMasterKit/pkg/logging"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Service struct {
	store    Store
	currency string
	now      func() time.Time
}

func NewService(store Store, currency string) *Service {
	return &Service{
		store:    store,
		currency: currency,
		now:      time.Now,
	}
}

// Run applies req to every submitted product in order. Unknown and empty ids
// are skipped, a failed save does not stop the loop, nothing is rolled back.
func (s *Service) Run(req *PriceChangeRequest) *Report {
	logger := logging.GetLogger()
	logger.Info("Start Run")
	defer logger.Info("End Run")

	report := &Report{
		ID:         uuid.NewString(),
		CreatedAt:  s.now(),
		Currency:   s.currency,
		ChangeType: req.ChangeType,
		Amount:     req.Amount,
		Round:      req.Round,
		Fields:     req.Fields,
	}

	logger.Infof("Change: %s %s, round: %t, fields: %v, products: %d",
		req.ChangeType, req.Amount, req.Round, req.Fields, len(req.ProductIDs))

	for _, rawID := range req.ProductIDs {
		if rawID == "" {
			continue
		}

		p, err := s.find(rawID)
		if err != nil {
			logger.Debugf("Skip product %q: %v", rawID, err)
			report.Skipped = append(report.Skipped, rawID)
			continue
		}

		productReport := ProductReport{
			ProductID: p.ID,
			Name:      p.Name,
			Kind:      p.Kind,
		}

		switch p.Kind {
		case KindVariable:
			s.updateVariable(p, req, &productReport)
		default:
			s.updateSimple(p, req, &productReport)
		}

		logger.Infof("Product ID=%d (%s): %d changes", p.ID, p.Kind, len(productReport.Records))
		report.Products = append(report.Products, productReport)
	}

	return report
}

func (s *Service) find(rawID string) (*Product, error) {
	id, err := strconv.Atoi(rawID)
	if err != nil || id <= 0 {
		return nil, errors.Wrapf(ErrProductNotFound, "id %q", rawID)
	}

	p, err := s.store.Find(id)
	if err != nil {
		if errors.Cause(err) != ErrProductNotFound {
			logging.GetLogger().Errorf("failed Find(%d), error: %v", id, err)
		}
		return nil, err
	}
	if p == nil {
		return nil, errors.Wrapf(ErrProductNotFound, "id %d", id)
	}
	return p, nil
}

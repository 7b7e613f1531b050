package bulkprice

import (
	"WooMasterKit/internal/price"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Form field names of the bulk change page.
const (
	FormChangeType = "price_change_type"
	FormAmount     = "price_amount"
	FormRound      = "round_price"
	FormPriceType  = "price_type[]"
	FormProducts   = "product_select[]"
)

var (
	ErrEmptyRequest      = errors.New("change type or product selection is empty")
	ErrInvalidChangeType = errors.New("invalid price change type")
	ErrInvalidAmount     = errors.New("invalid price amount")
	ErrInvalidPriceType  = errors.New("invalid price type")
)

type PriceChangeRequest struct {
	ChangeType price.ChangeType
	Amount     decimal.Decimal
	Round      bool
	Fields     []price.Field
	// ProductIDs are the submitted identifiers, trimmed, in submission order.
	// Empty and unknown ids are kept and skipped while processing.
	ProductIDs []string
}

func (r *PriceChangeRequest) HasField(f price.Field) bool {
	for _, v := range r.Fields {
		if v == f {
			return true
		}
	}
	return false
}

// ParseRequest builds a request from the submitted form. ErrEmptyRequest means
// the submission should be dropped silently, every other error means the form
// was malformed.
func ParseRequest(form url.Values) (*PriceChangeRequest, error) {
	changeType := strings.TrimSpace(form.Get(FormChangeType))
	products := formList(form, FormProducts)
	if changeType == "" || len(products) == 0 {
		return nil, ErrEmptyRequest
	}

	req := new(PriceChangeRequest)

	ct, ok := price.ParseChangeType(changeType)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidChangeType, "%q", changeType)
	}
	req.ChangeType = ct

	amount := strings.TrimSpace(form.Get(FormAmount))
	if amount == "" {
		req.Amount = decimal.Zero
	} else {
		// plain decimal notation only, exponent forms can encode huge values
		if strings.ContainsAny(amount, "eE") {
			return nil, errors.Wrapf(ErrInvalidAmount, "%q", amount)
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidAmount, "%q", amount)
		}
		if d.IsNegative() {
			return nil, errors.Wrapf(ErrInvalidAmount, "%q is negative", amount)
		}
		req.Amount = d
	}

	_, req.Round = form[FormRound]

	seen := make(map[price.Field]bool)
	for _, v := range formList(form, FormPriceType) {
		f, ok := price.ParseField(v)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidPriceType, "%q", v)
		}
		seen[f] = true
	}
	for _, f := range price.Fields {
		if seen[f] {
			req.Fields = append(req.Fields, f)
		}
	}

	for _, id := range products {
		req.ProductIDs = append(req.ProductIDs, strings.TrimSpace(id))
	}

	return req, nil
}

// formList reads an array field posted either as "name[]" or as "name".
func formList(form url.Values, key string) []string {
	if v, ok := form[key]; ok {
		return v
	}
	return form[strings.TrimSuffix(key, "[]")]
}

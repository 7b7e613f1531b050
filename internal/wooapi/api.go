package wooapi

import (
	"WooMasterKit/internal/wc-api-go/client"
	"WooMasterKit/internal/wc-api-go/options"
	"WooMasterKit/internal/wooapi/models"
	optionsWoo "WooMasterKit/internal/wooapi/options"
	"WooMasterKit/pkg/logging"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const variationsPerPage = 100

type WOOAPI interface {
	ProductGet(ID int) (*models.Product, error)
	ProductList(opts ...optionsWoo.Option) ([]*models.Product, error)
	ProductSearch(term string, limit int) ([]*models.Product, error)
	ProductUpdate(ID int, u *models.ProductUpdate) (*models.Product, error)

	ProductVariationList(productID int, opts ...optionsWoo.Option) ([]*models.ProductVariation, error)
	ProductVariationListAll(productID int) ([]*models.ProductVariation, error)
	ProductVariationUpdate(productID, variationID int, u *models.ProductUpdate) (*models.ProductVariation, error)
}

type wooapi struct {
	url         string
	api         client.Client
	rps         int
	mu          sync.Mutex
	requestTime time.Time
}

// CheckRPS sleeps until the next request fits into the configured rate.
func (w *wooapi) CheckRPS() {
	logger := logging.GetLogger()

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.rps <= 0 {
		return
	}

	TimeNow := time.Now()
	TimeDiff := TimeNow.Sub(w.requestTime)
	TimeRPS := time.Second / time.Duration(w.rps)

	if TimeDiff <= TimeRPS {
		timeSleep := w.requestTime.Add(TimeRPS).Sub(TimeNow)
		logger.Debugf("Over RPS, timeSleep: %s", timeSleep)
		time.Sleep(timeSleep)
	}
	w.requestTime = time.Now()
}

// do sends one request and decodes the body into out on okStatus, or into
// *models.ErrorWoo otherwise.
func (w *wooapi) do(method, endpoint string, params url.Values, body interface{}, okStatus int, out interface{}) error {
	logger := logging.GetLogger()
	logger.Debugf("%s %s %v", method, endpoint, params)

	w.CheckRPS()

	var r *http.Response
	var err error
	switch method {
	case http.MethodGet:
		r, err = w.api.Get(endpoint, params)
	case http.MethodPut:
		r, err = w.api.Put(endpoint, body)
	case http.MethodPost:
		r, err = w.api.Post(endpoint, params, body)
	default:
		return errors.Errorf("unsupported method %s", method)
	}
	if err != nil {
		return errors.Wrapf(err, "failed request to Woo Api, endpoint:%s", endpoint)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logger.Errorf("failed Body.Close()")
		}
	}(r.Body)

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.Wrapf(err, "failed io.ReadAll(r.Body), endpoint:%s", endpoint)
	}
	logger.Debug(string(bodyBytes))

	if r.StatusCode != okStatus {
		ErrorWoo := new(models.ErrorWoo)
		if err := json.Unmarshal(bodyBytes, ErrorWoo); err != nil {
			return errors.Wrapf(err, "failed json.Unmarshal() of error response, status:%d, endpoint:%s", r.StatusCode, endpoint)
		}
		if ErrorWoo.Data.Status == 0 {
			ErrorWoo.Data.Status = r.StatusCode
		}
		return ErrorWoo
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return errors.Wrapf(err, "failed json.Unmarshal(), endpoint:%s", endpoint)
	}
	return nil
}

func params(opts []optionsWoo.Option) url.Values {
	values := url.Values{}
	for _, field := range opts {
		Option := new(optionsWoo.OptionStruct)
		field(Option)
		values.Add(Option.Key, Option.Value)
	}
	return values
}

func (w *wooapi) ProductGet(ID int) (*models.Product, error) {
	logger := logging.GetLogger()
	logger.Debug("ProductGet:>Start")
	defer logger.Debug("ProductGet:>End")

	product := new(models.Product)
	if err := w.do(http.MethodGet, fmt.Sprintf("products/%d", ID), nil, nil, http.StatusOK, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (w *wooapi) ProductList(opts ...optionsWoo.Option) ([]*models.Product, error) {
	logger := logging.GetLogger()
	logger.Debug("ProductList:>Start")
	defer logger.Debug("ProductList:>End")

	var products []*models.Product
	if err := w.do(http.MethodGet, "products", params(opts), nil, http.StatusOK, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (w *wooapi) ProductSearch(term string, limit int) ([]*models.Product, error) {
	logger := logging.GetLogger()
	logger.Debug("ProductSearch:>Start")
	defer logger.Debug("ProductSearch:>End")

	products, err := w.ProductList(optionsWoo.Search(term), optionsWoo.PerPage(limit))
	if err != nil {
		return nil, errors.Wrapf(err, "failed ProductList(search:%q)", term)
	}
	return products, nil
}

func (w *wooapi) ProductUpdate(ID int, u *models.ProductUpdate) (*models.Product, error) {
	logger := logging.GetLogger()
	logger.Debug("ProductUpdate:>Start")
	defer logger.Debug("ProductUpdate:>End")

	if ID == 0 {
		return nil, errors.New("product ID is not set")
	}

	product := new(models.Product)
	if err := w.do(http.MethodPut, fmt.Sprintf("products/%d", ID), nil, u, http.StatusOK, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (w *wooapi) ProductVariationList(productID int, opts ...optionsWoo.Option) ([]*models.ProductVariation, error) {
	logger := logging.GetLogger()
	logger.Debug("ProductVariationList:>Start")
	defer logger.Debug("ProductVariationList:>End")

	var variations []*models.ProductVariation
	endpoint := fmt.Sprintf("products/%d/variations", productID)
	if err := w.do(http.MethodGet, endpoint, params(opts), nil, http.StatusOK, &variations); err != nil {
		return nil, err
	}
	return variations, nil
}

func (w *wooapi) ProductVariationListAll(productID int) ([]*models.ProductVariation, error) {
	logger := logging.GetLogger()
	logger.Debug("ProductVariationListAll:>Start")
	defer logger.Debug("ProductVariationListAll:>End")

	var variations []*models.ProductVariation
	for i := 1; ; i++ {
		page, err := w.ProductVariationList(productID,
			optionsWoo.PerPage(variationsPerPage),
			optionsWoo.Page(i),
			optionsWoo.OrderBy("menu_order"),
			optionsWoo.Order("asc"))
		if err != nil {
			return nil, errors.Wrapf(err, "failed ProductVariationList, ProductID:%d, Page:%d", productID, i)
		}

		variations = append(variations, page...)
		logger.Debugf("Page load:%d", i)
		if len(page) < variationsPerPage {
			break
		}
	}

	return variations, nil
}

func (w *wooapi) ProductVariationUpdate(productID, variationID int, u *models.ProductUpdate) (*models.ProductVariation, error) {
	logger := logging.GetLogger()
	logger.Debug("ProductVariationUpdate:>Start")
	defer logger.Debug("ProductVariationUpdate:>End")

	if productID == 0 || variationID == 0 {
		return nil, errors.New("product or variation ID is not set")
	}

	variation := new(models.ProductVariation)
	endpoint := fmt.Sprintf("products/%d/variations/%d", productID, variationID)
	if err := w.do(http.MethodPut, endpoint, nil, u, http.StatusOK, variation); err != nil {
		return nil, err
	}
	return variation, nil
}

// NewAPI creates the client of the wc/v3 REST API.
func NewAPI(url, key, secret string, rps int, timeout time.Duration, queryStringAuth bool) WOOAPI {
	factory := client.Factory{}

	api := factory.NewClient(options.Basic{
		URL:    url,
		Key:    key,
		Secret: secret,
		Options: options.Advanced{
			WPAPI:           true,
			WPAPIPrefix:     "/wp-json/",
			Version:         "wc/v3",
			QueryStringAuth: queryStringAuth,
			Timeout:         timeout,
		},
	})

	return &wooapi{
		url: url,
		api: api,
		rps: rps,
	}
}

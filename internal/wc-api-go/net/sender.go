package net // import "WooMasterKit/internal/wc-api-go/net"

import (
	"bytes"
	"encoding/json"
	"net/http"

	"WooMasterKit/internal/wc-api-go/request"

	"github.com/pkg/errors"
)

// Sender provides HTTP Requests
type Sender struct {
	requestEnricher RequestEnricher
	urlBuilder      URLBuilder
	httpClient      Client
	requestCreator  RequestCreator
}

// Send method sends requests to WooCommerce API
func (s *Sender) Send(req request.Request) (resp *http.Response, err error) {
	r, err := s.prepareRequest(req)
	if err != nil {
		return nil, err
	}
	return s.httpClient.Do(r)
}

func (s *Sender) prepareRequest(req request.Request) (*http.Request, error) {
	URL := s.urlBuilder.GetURL(req)

	var reqBody []byte
	if req.Body != nil && (req.Method == http.MethodPost || req.Method == http.MethodPut) {
		var err error
		reqBody, err = json.Marshal(req.Body)
		if err != nil {
			return nil, errors.Wrapf(err, "failed json.Marshal() body of %s %s", req.Method, req.Endpoint)
		}
	}

	r, err := s.requestCreator.NewRequest(req.Method, URL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, errors.Wrapf(err, "failed NewRequest(%s, %s)", req.Method, URL)
	}
	if s.requestEnricher != nil {
		s.requestEnricher.EnrichRequest(r, URL)
	}
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Accept", "application/json")
	return r, nil
}

// SetRequestEnricher ...
func (s *Sender) SetRequestEnricher(a RequestEnricher) {
	s.requestEnricher = a
}

// SetURLBuilder ...
func (s *Sender) SetURLBuilder(urlBuilder URLBuilder) {
	s.urlBuilder = urlBuilder
}

// SetHTTPClient ...
func (s *Sender) SetHTTPClient(c Client) {
	s.httpClient = c
}

// SetRequestCreator ...
func (s *Sender) SetRequestCreator(rc RequestCreator) {
	s.requestCreator = rc
}

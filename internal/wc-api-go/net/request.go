package net // import "WooMasterKit/internal/wc-api-go/net"

import (
	"io"
	"net/http"
)

// RequestEnricher adds Basic Authentication settings in Request in case of Basic Authentication
type RequestEnricher interface {
	EnrichRequest(r *http.Request, URL string)
}

// Client performs HTTP requests, *http.Client satisfies it
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestCreator makes *http.Request
type RequestCreator interface {
	NewRequest(method, url string, body io.Reader) (*http.Request, error)
}

// HTTPRequestCreator uses http.NewRequest
type HTTPRequestCreator struct{}

// NewRequest ...
func (c HTTPRequestCreator) NewRequest(method, url string, body io.Reader) (*http.Request, error) {
	return http.NewRequest(method, url, body)
}

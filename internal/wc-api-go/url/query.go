package url // import "WooMasterKit/internal/wc-api-go/url"

import (
	"WooMasterKit/internal/wc-api-go/auth"
	"WooMasterKit/internal/wc-api-go/options"
	"WooMasterKit/internal/wc-api-go/request"
	"net/url"
)

// QueryEnricher uses package auth to enrich existing query parameters with Authentication Based ones
type QueryEnricher interface {
	GetEnrichedQuery(url string, query url.Values, req request.Request) url.Values
}

// AuthQueryEnricher delegates to BasicAuthentication
type AuthQueryEnricher struct {
	Auth    *auth.BasicAuthentication
	Options options.Basic
}

// GetEnrichedQuery ...
func (a *AuthQueryEnricher) GetEnrichedQuery(u string, query url.Values, req request.Request) url.Values {
	return a.Auth.GetEnrichedQuery(query, a.Options)
}

package auth // import "WooMasterKit/internal/wc-api-go/auth"

import (
	"WooMasterKit/internal/wc-api-go/options"
	"net/http"
	"net/url"
)

// BasicAuthentication passes the key pair either in the query string or in
// the Authorization header
type BasicAuthentication struct {
	Options options.Basic
}

// GetEnrichedQuery adds consumer_key/consumer_secret when QueryStringAuth is on
func (b *BasicAuthentication) GetEnrichedQuery(p url.Values, o options.Basic) url.Values {
	if p == nil {
		p = url.Values{}
	}
	if o.Options.QueryStringAuth {
		p.Set("consumer_key", o.Key)
		p.Set("consumer_secret", o.Secret)
	}
	return p
}

// EnrichRequest sets the Authorization header when QueryStringAuth is off
func (b *BasicAuthentication) EnrichRequest(r *http.Request, URL string) {
	if !b.Options.Options.QueryStringAuth {
		r.SetBasicAuth(b.Options.Key, b.Options.Secret)
	}
}

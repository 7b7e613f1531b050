package url

import (
	"WooMasterKit/internal/wc-api-go/options"
	"WooMasterKit/internal/wc-api-go/request"
	"net/url"
	"strings"
)

// Builder makes the absolute URL of a request
type Builder struct {
	options       options.Basic
	queryEnricher QueryEnricher
}

// NewBuilder ...
func NewBuilder(o options.Basic, qe QueryEnricher) *Builder {
	return &Builder{options: o, queryEnricher: qe}
}

// GetURL joins store URL, API prefix, version and endpoint and appends the query
func (b *Builder) GetURL(req request.Request) string {
	base := strings.TrimRight(b.options.URL, "/")
	prefix := "/wc-api/"
	if b.options.Options.WPAPI {
		prefix = b.options.Options.WPAPIPrefix
	}
	prefix = "/" + strings.Trim(prefix, "/") + "/"
	version := strings.Trim(b.options.Options.Version, "/")

	u := base + prefix + version + "/" + strings.TrimLeft(req.Endpoint, "/")

	values := url.Values{}
	for k, v := range req.Values {
		values[k] = append([]string(nil), v...)
	}
	if b.queryEnricher != nil {
		values = b.queryEnricher.GetEnrichedQuery(u, values, req)
	}
	if len(values) > 0 {
		u += "?" + values.Encode()
	}
	return u
}

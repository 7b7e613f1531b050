package request // import "WooMasterKit/internal/wc-api-go/request"

import (
	"net/url"
)

// Request describes one call to the WooCommerce REST API
type Request struct {
	Method   string
	Endpoint string
	Values   url.Values
	Body     interface{}
}

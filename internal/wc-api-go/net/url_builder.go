package net // import "WooMasterKit/internal/wc-api-go/net"

import (
	"WooMasterKit/internal/wc-api-go/request"
)

// URLBuilder interface
type URLBuilder interface {
	GetURL(req request.Request) string
}

package options // import "WooMasterKit/internal/wc-api-go/options"

import "time"

// Basic holds the store URL and the REST API key pair
type Basic struct {
	URL     string
	Key     string
	Secret  string
	Options Advanced
}

// Advanced holds optional settings of the client
type Advanced struct {
	WPAPI           bool
	WPAPIPrefix     string
	Version         string
	QueryStringAuth bool
	Timeout         time.Duration
}

package client // import "WooMasterKit/internal/wc-api-go/client"

import (
	"WooMasterKit/internal/wc-api-go/auth"
	"WooMasterKit/internal/wc-api-go/net"
	"WooMasterKit/internal/wc-api-go/options"
	"WooMasterKit/internal/wc-api-go/url"
	"net/http"
)

// Factory assembles a Client with a real HTTP sender
type Factory struct {
	HTTPClient net.Client
}

// NewClient ...
func (f Factory) NewClient(o options.Basic) Client {
	authentication := &auth.BasicAuthentication{Options: o}

	httpClient := f.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.Options.Timeout}
	}

	sender := new(net.Sender)
	sender.SetRequestEnricher(authentication)
	sender.SetURLBuilder(url.NewBuilder(o, &url.AuthQueryEnricher{Auth: authentication, Options: o}))
	sender.SetHTTPClient(httpClient)
	sender.SetRequestCreator(net.HTTPRequestCreator{})

	return New(sender)
}

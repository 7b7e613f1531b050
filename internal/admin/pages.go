package admin

import (
	"WooMasterKit/internal/bulkprice"
	"WooMasterKit/internal/price"
	"html/template"
	"io"

	"github.com/pkg/errors"
)

// Settings is what the Settings page shows of the running configuration.
type Settings struct {
	StoreURL     string
	Currency     string
	RPS          int
	ReportDriver string
	Notify       bool
	Version      string
}

type PageData struct {
	Page *Page

	// bulk change price
	Nonce       string
	SearchNonce string
	Success     bool
	Report      *bulkprice.Report
	// ReportMissing is set when the success redirect names a report that
	// is no longer stored.
	ReportMissing bool

	// go pro
	LicenseNonce string
	LicenseKey   string
	LicenseSaved bool

	Settings Settings
}

func (d *PageData) Menu() []*Page {
	return Submenu(SlugTop)
}

func (d *PageData) ChangeTypes() []price.ChangeType {
	return []price.ChangeType{price.Increase, price.Decrease, price.Exact}
}

func (d *PageData) Fields() []price.Field {
	return price.Fields
}

func (d *PageData) SearchURL() string {
	return SearchPath
}

var funcs = template.FuncMap{
	"report": func(r *bulkprice.Report) (template.HTML, error) {
		return r.HTML()
	},
}

var templates = template.Must(template.New("layout").Funcs(funcs).Parse(layoutTemplate))

func init() {
	for name, body := range pageTemplates {
		template.Must(templates.New(name).Parse(body))
	}
}

// Render writes the full admin page for data.Page.
func Render(w io.Writer, data *PageData) error {
	if data.Page == nil {
		return errors.New("admin page is nil")
	}
	if err := templates.ExecuteTemplate(w, "layout", data); err != nil {
		return errors.Wrapf(err, "failed render page %s", data.Page.Slug)
	}
	return nil
}

// RenderError writes a bare error page, used for failed security checks.
func RenderError(w io.Writer, message string) error {
	if err := templates.ExecuteTemplate(w, "error", message); err != nil {
		return errors.Wrap(err, "failed render error page")
	}
	return nil
}

const layoutTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Page.PageTitle}} &lsaquo; Woo MasterKit</title>
</head>
<body class="wp-admin">
<ul id="adminmenu" class="woo-masterkit-menu">
{{- range .Menu}}
<li{{if eq .Slug $.Page.Slug}} class="current"{{end}}><a href="{{.URL}}">{{.MenuTitle}}</a></li>
{{- end}}
</ul>
<div class="wrap" id="{{.Page.Slug}}">
{{- if eq .Page.View "home"}}{{template "home" .}}
{{- else if eq .Page.View "bulk"}}{{template "bulk" .}}
{{- else if eq .Page.View "gopro"}}{{template "gopro" .}}
{{- else if eq .Page.View "settings"}}{{template "settings" .}}
{{- end}}
</div>
</body>
</html>
`

var pageTemplates = map[string]string{
	"home": `<h1>Woo MasterKit</h1>
<p>Tools for WooCommerce store owners.</p>
<ul>
<li><a href="` + PagePrefix + SlugBulkChangePrice + `">Bulk Change Price</a></li>
</ul>`,

	"bulk": `<h1>Bulk Change Price</h1>
{{- if .Success}}
<div class="notice notice-success"><p>Prices updated.</p></div>
{{- if .Report}}{{report .Report}}{{else if .ReportMissing}}<p class="report-missing">The change report has expired.</p>{{end}}
{{- end}}
<form method="post" action="{{.Page.URL}}" id="woo_masterkit_bulk_change_price">
<input type="hidden" name="_wpnonce" value="{{.Nonce}}">
<p>
<label for="price_change_type">Change type</label>
<select name="price_change_type" id="price_change_type">
<option value="">Select</option>
{{- range .ChangeTypes}}
<option value="{{.}}">{{.}}</option>
{{- end}}
</select>
</p>
<p>
<label for="price_amount">Amount</label>
<input type="number" step="any" min="0" name="price_amount" id="price_amount">
</p>
<p>
<label><input type="checkbox" name="round_price" value="1"> Round price</label>
</p>
<p>
{{- range .Fields}}
<label><input type="checkbox" name="price_type[]" value="{{.}}"> {{.Label}}</label>
{{- end}}
</p>
<p>
<select name="product_select[]" id="woo_masterkit_product_select" multiple data-ajax-url="{{.SearchURL}}" data-nonce="{{.SearchNonce}}"></select>
</p>
<p><input type="submit" class="button button-primary" value="Change prices"></p>
</form>`,

	"gopro": `<h1>Go Pro</h1>
{{- if .LicenseSaved}}
<div class="notice notice-success"><p>License key saved.</p></div>
{{- end}}
<form method="post" action="{{.Page.URL}}">
<input type="hidden" name="_wpnonce" value="{{.LicenseNonce}}">
<label for="woo_masterkit_license_key">Enter your license key:</label><br>
<input type="text" id="woo_masterkit_license_key" name="woo_masterkit_license_key" value="{{.LicenseKey}}"><br><br>
<input type="submit" value="Submit Key">
<a href="" class="button button-primary">Purchase Key</a>
</form>`,

	"settings": `<h1>Settings</h1>
<table class="form-table">
<tr><th>Store URL</th><td class="store-url">{{.Settings.StoreURL}}</td></tr>
<tr><th>Currency</th><td class="currency">{{.Settings.Currency}}</td></tr>
<tr><th>Requests per second</th><td class="rps">{{.Settings.RPS}}</td></tr>
<tr><th>Report storage</th><td class="report-driver">{{.Settings.ReportDriver}}</td></tr>
<tr><th>Telegram notifications</th><td class="notify">{{if .Settings.Notify}}on{{else}}off{{end}}</td></tr>
<tr><th>Version</th><td class="version">{{.Settings.Version}}</td></tr>
</table>`,

	"error": `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Error</title></head>
<body id="error-page"><div class="wp-die-message">{{.}}</div></body>
</html>
`,
}

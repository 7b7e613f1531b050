package bulkprice

import (
	"bytes"
	"html/template"
	"io"

	"github.com/pkg/errors"
)

var reportTemplate = template.Must(template.New("report").Parse(`<div class="woo-masterkit-report" data-report-id="{{.ID}}">
{{- range .Products}}
<table class="widefat striped woo-masterkit-report-product" data-product-id="{{.ProductID}}">
<thead>
<tr><th colspan="4">#{{.ProductID}} {{.Name}} ({{.Kind}})</th></tr>
<tr><th>ID</th><th>Field</th><th>Old</th><th>New</th></tr>
</thead>
<tbody>
{{- range .Records}}
<tr class="change" data-item-id="{{.ItemID}}" data-field="{{.Field}}"><td>{{if .VariationID}}Variation #{{.VariationID}}{{else}}#{{.ProductID}}{{end}}</td><td>{{.Field.Label}}</td><td class="old">{{$.Display .Old}}</td><td class="new">{{$.Display .New}}</td></tr>
{{- else}}
<tr class="empty"><td colspan="4">Empty</td></tr>
{{- end}}
</tbody>
</table>
{{- end}}
{{- if .Skipped}}
<p class="skipped">Skipped: {{range $i, $id := .Skipped}}{{if $i}}, {{end}}{{$id}}{{end}}</p>
{{- end}}
</div>
`))

// WriteHTML renders the change log of r.
func (r *Report) WriteHTML(w io.Writer) error {
	if err := reportTemplate.Execute(w, r); err != nil {
		return errors.Wrap(err, "failed reportTemplate.Execute")
	}
	return nil
}

func (r *Report) HTML() (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.WriteHTML(&buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

package report

import (
	"html/template"
	"strings"

	"mood-report/internal/domain"
)

const bodyTemplateText = `<html><body>
<h3 style="text-align:center;">Global Market Mood</h3>
<p style="text-align:center;color:gray;font-size:12px">{{.Date.Format "2006-01-02"}}</p>
{{range .Cards}}<div style="margin-bottom:15px; padding:12px; background:#f8f9fa; border-radius:8px; border:1px solid #ddd;">
{{if .Stats}}<div style="display:flex; justify-content:space-between; align-items:center; border-bottom:1px solid #eee; padding-bottom:5px; margin-bottom:5px;">
<span style="font-weight:bold; font-size:15px;">{{.MarketLabel}} <span style="color:gray;font-size:11px;">via {{.SourceLabel}}</span></span>
<span style="font-weight:bold; font-size:22px; color:{{classColor .Stats.Classification}}">{{.Stats.CurrentValue}}</span>
</div>
{{if .GreedAlert}}<p style="color:#dc3545;font-size:12px;margin:4px 0;">greed streak: {{.Stats.High30}} of the last 30 days above {{.Thresholds.High}}</p>
{{end}}<table style="width:100%; font-size:12px; text-align:center; border-collapse:collapse;">
<tr style="background:#eee;"><th>window</th><th>&lt;{{.Thresholds.Low}} (panic)</th><th>&gt;{{.Thresholds.High}} (greed)</th></tr>
<tr><td>30d</td><td><b>{{.Stats.Low30}}</b> days</td><td><b>{{.Stats.High30}}</b> days</td></tr>
<tr><td>60d</td><td><b>{{.Stats.Low60}}</b> days</td><td><b>{{.Stats.High60}}</b> days</td></tr>
</table>
{{else}}<div style="font-weight:bold; font-size:15px;">{{.MarketLabel}}</div>
<div style="color:gray; font-size:12px;">data unavailable</div>
{{end}}</div>
{{end}}<p style="font-size:12px; color:gray; text-align:center;">
<span style="color:#28a745">low = opportunity</span> | <span style="color:#dc3545">high = risk</span>
</p>
</body></html>`

var bodyTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"classColor": classColor,
}).Parse(bodyTemplateText))

func classColor(c domain.Classification) string {
	switch c {
	case domain.ClassPanic:
		return "#28a745"
	case domain.ClassGreed:
		return "#dc3545"
	default:
		return "black"
	}
}

// RenderHTML produces the report body handed to HTML delivery channels.
func RenderHTML(r *domain.Report) (string, error) {
	var sb strings.Builder
	if err := bodyTemplate.Execute(&sb, r); err != nil {
		return "", err
	}
	return sb.String(), nil
}

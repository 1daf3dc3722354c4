package notify

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

var severityColors = map[domain.Severity]string{
	domain.SeverityCritical: "#c0392b",
	domain.SeverityHigh:     "#e67e22",
	domain.SeverityMedium:   "#f1c40f",
	domain.SeverityLow:      "#2ecc71",
}

// alertEmail renders the HTML body of an escalation email.
func alertEmail(p *AlertPayload) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		color, ok := severityColors[p.Severity]
		if !ok {
			color = "#7f8c8d"
		}
		rows := [][2]string{
			{"Device", p.DeviceID},
			{"Metric", p.MetricName},
			{"Value", domain.FormatValue(p.MetricValue)},
			{"Threshold", domain.FormatValue(p.Threshold)},
			{"Triggered", p.TriggeredAt.UTC().Format(time.RFC1123)},
			{"Policy", fmt.Sprintf("%s (step %d)", p.PolicyName, p.Step+1)},
			{"Roles", strings.Join(p.Roles, ", ")},
		}

		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html><body style="font-family:sans-serif">`)
		fmt.Fprintf(&b, `<h2 style="color:%s">%s alert</h2>`,
			color, templ.EscapeString(strings.ToUpper(string(p.Severity))))
		fmt.Fprintf(&b, `<p>%s</p>`, templ.EscapeString(p.Message))
		b.WriteString(`<table cellpadding="4">`)
		for _, row := range rows {
			fmt.Fprintf(&b, `<tr><th align="left">%s</th><td>%s</td></tr>`,
				templ.EscapeString(row[0]), templ.EscapeString(row[1]))
		}
		b.WriteString(`</table>`)
		fmt.Fprintf(&b, `<p style="color:#7f8c8d">Alert %s</p>`, templ.EscapeString(p.AlertID))
		b.WriteString(`</body></html>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

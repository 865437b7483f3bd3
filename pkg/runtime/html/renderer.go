package html

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"math"

	"github.com/de-tools/wellness-atlas/pkg/format"
	"github.com/de-tools/wellness-atlas/pkg/models/domain"
)

//go:embed report.html.tmpl
var reportTemplate string

var tmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"date":     format.Date,
	"dateTime": format.DateTime,
	"days":     format.Days,
	"year":     func(r *domain.Report) int { return r.Header.GeneratedAt.Year() },
	"width":    barWidth,
	"isKind":   func(b domain.ReportBlock, kind string) bool { return string(b.Kind) == kind },
}).Parse(reportTemplate))

// barWidth is the share of max as a whole percentage in [0,100].
func barWidth(value, max float64) int {
	if max <= 0 {
		return 0
	}
	return int(math.Round(math.Min(math.Max(value/max, 0), 1) * 100))
}

// Renderer turns a report document into a standalone, printable HTML page.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(w io.Writer, report *domain.Report) error {
	if err := tmpl.Execute(w, report); err != nil {
		return fmt.Errorf("failed to render html report: %w", err)
	}
	return nil
}

func (r *Renderer) RenderBytes(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

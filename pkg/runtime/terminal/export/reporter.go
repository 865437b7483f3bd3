package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/de-tools/wellness-atlas/pkg/format"
	"github.com/de-tools/wellness-atlas/pkg/models/domain"
)

type TableConfig struct {
	MaxColumnWidth int
	BarWidth       int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		MaxColumnWidth: 40,
		BarWidth:       30,
	}
}

// Reporter prints a report document as fixed-width tables
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

const reportTemplate = `{{.Title}}
{{underline .Title "="}}
Generated: {{date .Header.GeneratedAt}}
{{- if .Header.UserName}}
User: {{.Header.UserName}}{{with .Header.UserEmail}} ({{.}}){{end}}
{{- end}}
{{- with .Header.Period}}
Period: {{date .Start}} - {{date .End}} ({{days .Duration}})
{{- else}}
Period: No mood entries recorded
{{- end}}
{{range .Sections}}
=== {{.Title}} ===
{{range .Blocks}}{{renderBlock .}}{{end}}{{end}}`

func (c *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"date":      format.Date,
		"days":      format.Days,
		"underline": func(s, ch string) string { return strings.Repeat(ch, utf8.RuneCountInString(s)) },
		"renderBlock":    c.block,
	}

	t, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, report)
}

func (c *Reporter) block(b domain.ReportBlock) string {
	var sb strings.Builder
	switch b.Kind {
	case domain.BlockCards:
		rows := make([][]string, 0, len(b.Cards))
		for _, card := range b.Cards {
			rows = append(rows, []string{card.Label, card.Value})
		}
		c.table(&sb, nil, rows)
	case domain.BlockTable:
		if b.Table.Title != "" {
			sb.WriteString(b.Table.Title + "\n")
		}
		if len(b.Table.Rows) == 0 {
			sb.WriteString("  No data recorded.\n")
			break
		}
		c.table(&sb, b.Table.Columns, b.Table.Rows)
	case domain.BlockSeries:
		sb.WriteString(b.Series.Title + "\n")
		if len(b.Series.Points) == 0 {
			sb.WriteString("  No data recorded.\n")
			break
		}
		for _, p := range b.Series.Points {
			fill := 0
			if b.Series.Max > 0 {
				fill = int(min(max(p.Value/b.Series.Max, 0), 1) * float64(c.config.BarWidth))
			}
			fmt.Fprintf(&sb, "  %-8s %s%s %v\n", p.Label,
				strings.Repeat("#", fill), strings.Repeat(".", c.config.BarWidth-fill), p.Value)
		}
	case domain.BlockStreak:
		sb.WriteString(b.Streak.Title + "\n  ")
		for _, d := range b.Streak.Days {
			if d.Present {
				sb.WriteString("■")
			} else {
				sb.WriteString("·")
			}
		}
		sb.WriteString("\n")
	case domain.BlockInsights:
		for _, insight := range b.Insights {
			sb.WriteString("- " + insight + "\n")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

func (c *Reporter) table(sb *strings.Builder, columns []string, rows [][]string) {
	n := len(columns)
	for _, row := range rows {
		n = max(n, len(row))
	}
	widths := make([]int, n)
	measure := func(row []string) {
		for i, cell := range row {
			widths[i] = min(max(widths[i], utf8.RuneCountInString(cell)), c.config.MaxColumnWidth)
		}
	}
	measure(columns)
	for _, row := range rows {
		measure(row)
	}

	separator := func() {
		sb.WriteString("+")
		for _, w := range widths {
			sb.WriteString(strings.Repeat("-", w+2) + "+")
		}
		sb.WriteString("\n")
	}
	formatRow := func(row []string) {
		sb.WriteString("|")
		for i, w := range widths {
			cell := ""
			if i < len(row) {
				cell = truncate(row[i], w)
			}
			sb.WriteString(" " + cell + strings.Repeat(" ", w-utf8.RuneCountInString(cell)) + " |")
		}
		sb.WriteString("\n")
	}

	separator()
	if len(columns) > 0 {
		formatRow(columns)
		separator()
	}
	for _, row := range rows {
		formatRow(row)
	}
	separator()
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-1]) + "…"
}

package artifacts

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/adapters"
	"github.com/de-tools/wellness-atlas/pkg/runtime/html"
	"github.com/de-tools/wellness-atlas/pkg/services/report"
	"github.com/rs/zerolog"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
	FormatText Format = "txt"
	FormatJSON Format = "json"
)

var AllFormats = []Format{FormatCSV, FormatHTML, FormatText, FormatJSON}

var contentTypes = map[Format]string{
	FormatCSV:  "text/csv; charset=utf-8",
	FormatHTML: "text/html; charset=utf-8",
	FormatText: "text/plain; charset=utf-8",
	FormatJSON: "application/json",
}

func (f Format) ContentType() string {
	return contentTypes[f]
}

// ParseFormats reads a comma separated format list. Empty input selects every format.
func ParseFormats(list string) ([]Format, error) {
	if strings.TrimSpace(list) == "" {
		return slices.Clone(AllFormats), nil
	}
	var formats []Format
	for _, part := range strings.Split(list, ",") {
		f := Format(strings.ToLower(strings.TrimSpace(part)))
		if _, ok := contentTypes[f]; !ok {
			return nil, fmt.Errorf("unsupported format %q", part)
		}
		if !slices.Contains(formats, f) {
			formats = append(formats, f)
		}
	}
	return formats, nil
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Name is the artifact file name for a user and generation day, e.g. alice-20261014.csv.
func Name(userID string, day time.Time, f Format) string {
	user := strings.Trim(unsafeName.ReplaceAllString(userID, "_"), "._")
	if user == "" {
		user = "user"
	}
	return fmt.Sprintf("%s-%s.%s", user, day.Format("20060102"), f)
}

// Render produces the body of one artifact format.
func Render(a *report.Artifacts, f Format) ([]byte, error) {
	switch f {
	case FormatCSV:
		return []byte(a.CSV), nil
	case FormatText:
		return []byte(a.Summary), nil
	case FormatHTML:
		return html.NewRenderer().RenderBytes(&a.Document)
	case FormatJSON:
		body, err := json.MarshalIndent(adapters.MapReportDomainToApi(a.Document), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal report: %w", err)
		}
		return body, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", f)
	}
}

// Publish writes the requested formats to the sink and returns their locations in
// format order. It stops at the first failure.
func Publish(ctx context.Context, sink Sink, a *report.Artifacts, formats []Format) ([]string, error) {
	logger := zerolog.Ctx(ctx)
	locations := make([]string, 0, len(formats))
	for _, f := range formats {
		body, err := Render(a, f)
		if err != nil {
			return locations, err
		}
		name := Name(a.Profile.ID, a.GeneratedAt, f)
		location, err := sink.Put(ctx, name, f.ContentType(), body)
		if err != nil {
			return locations, err
		}
		logger.Info().Str("artifact", location).Int("bytes", len(body)).Msg("artifact published")
		locations = append(locations, location)
	}
	return locations, nil
}

package detail

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	dErrors "freshgo/pkg/domain-errors"
)

// Pagination defaults and the per-page cap shared by orders and readings.
const (
	DefaultLimit = 50
	MaxLimit     = 100
	DefaultPage  = 1
)

// Filters narrows a client detail. Limit is both the order page size and the
// per-sensor reading cap.
type Filters struct {
	SensorID string
	FoodType string
	From     string
	To       string
	Status   string
	Limit    int
	Page     int
}

// dateLayouts are the time formats accepted for from/to. Telemetry stores
// naive timestamps, so zone-less forms are accepted alongside RFC 3339.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseFilters reads filters from a query string. Both the English and the
// Spanish parameter names are accepted (foodType|tipoAlimento,
// status|estado, limit|pageSize). Malformed limit and page fall back to
// their defaults; malformed dates are rejected.
func ParseFilters(q url.Values) (Filters, error) {
	f := Filters{
		SensorID: strings.TrimSpace(q.Get("sensorId")),
		FoodType: strings.TrimSpace(firstParam(q, "foodType", "tipoAlimento")),
		From:     strings.TrimSpace(q.Get("from")),
		To:       strings.TrimSpace(q.Get("to")),
		Status:   strings.TrimSpace(firstParam(q, "status", "estado")),
		Limit:    parsePositive(firstParam(q, "limit", "pageSize")),
		Page:     parsePositive(q.Get("page")),
	}

	var from, to time.Time
	var err error
	if f.From != "" {
		if from, err = parseDate(f.From); err != nil {
			return Filters{}, dErrors.New(dErrors.CodeBadRequest, "invalid 'from' date: "+f.From)
		}
	}
	if f.To != "" {
		if to, err = parseDate(f.To); err != nil {
			return Filters{}, dErrors.New(dErrors.CodeBadRequest, "invalid 'to' date: "+f.To)
		}
	}
	if f.From != "" && f.To != "" && from.After(to) {
		return Filters{}, dErrors.New(dErrors.CodeBadRequest, "'from' must not be after 'to'")
	}
	return f.Normalized(), nil
}

// Normalized applies the limit and page defaults and the limit cap.
func (f Filters) Normalized() Filters {
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	return f
}

// LogAttrs lists the filters that are set as slog key/value pairs.
func (f Filters) LogAttrs() []any {
	attrs := []any{"limit", f.Limit, "page", f.Page}
	for _, kv := range [][2]string{
		{"sensor_id", f.SensorID},
		{"food_type", f.FoodType},
		{"from", f.From},
		{"to", f.To},
		{"status", f.Status},
	} {
		if kv[1] != "" {
			attrs = append(attrs, kv[0], kv[1])
		}
	}
	return attrs
}

func firstParam(q url.Values, names ...string) string {
	for _, n := range names {
		if v := q.Get(n); v != "" {
			return v
		}
	}
	return ""
}

// parsePositive returns 0 for anything that is not a positive integer.
func parsePositive(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 0
	}
	return n
}

func parseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// Package schema validates assembled documents against embedded JSON
// schemas and reports field-level diagnostics.
package schema

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ClientDetail is the ref of the unified client detail schema.
const ClientDetail = "client-detail"

//go:embed schemas/*.json
var embedded embed.FS

// FieldError is one schema violation.
type FieldError struct {
	Field   string         `json:"field"`
	Message string         `json:"message"`
	Keyword string         `json:"keyword"`
	Params  map[string]any `json:"params,omitempty"`
}

// Result is the outcome of one validation.
type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors"`
}

// Validator holds schemas compiled at construction. A schema that fails to
// compile is remembered and reported on every validation against it.
type Validator struct {
	compiled map[string]*gojsonschema.Schema
	broken   map[string]error
	logger   *slog.Logger
}

// New compiles the embedded schemas.
func New(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	sources := map[string][]byte{}
	entries, err := fs.ReadDir(embedded, "schemas")
	if err != nil {
		logger.Error("reading embedded schemas", "error", err)
	}
	for _, e := range entries {
		b, err := embedded.ReadFile(path.Join("schemas", e.Name()))
		if err != nil {
			logger.Error("reading embedded schema", "file", e.Name(), "error", err)
			continue
		}
		sources[strings.TrimSuffix(e.Name(), ".json")] = b
	}
	return NewFromSources(sources, logger)
}

// NewFromSources compiles schemas keyed by ref.
func NewFromSources(sources map[string][]byte, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	v := &Validator{
		compiled: make(map[string]*gojsonschema.Schema, len(sources)),
		broken:   make(map[string]error),
		logger:   logger,
	}
	for ref, src := range sources {
		s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(src))
		if err != nil {
			logger.Error("schema failed to compile", "ref", ref, "error", err)
			v.broken[ref] = err
			continue
		}
		v.compiled[ref] = s
	}
	return v
}

// Validate checks doc against the schema named ref. It never panics and
// never mutates doc; internal failures become a single "internal" error.
func (v *Validator) Validate(doc any, ref string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.Error("schema validation panicked", "ref", ref, "panic", r)
			res = internalFailure(fmt.Errorf("%v", r))
		}
	}()

	s, ok := v.compiled[ref]
	if !ok {
		if err, isBroken := v.broken[ref]; isBroken {
			return internalFailure(err)
		}
		return internalFailure(fmt.Errorf("unknown schema %q", ref))
	}

	out, err := s.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		v.logger.Error("schema validation failed to run", "ref", ref, "error", err)
		return internalFailure(err)
	}
	if out.Valid() {
		return Result{Valid: true, Errors: []FieldError{}}
	}

	errs := make([]FieldError, 0, len(out.Errors()))
	for _, re := range out.Errors() {
		errs = append(errs, toFieldError(re))
	}
	return Result{Valid: false, Errors: errs}
}

func internalFailure(err error) Result {
	return Result{
		Valid: false,
		Errors: []FieldError{{
			Field:   "(root)",
			Message: "Internal validation error",
			Keyword: "internal",
			Params:  map[string]any{"error": err.Error()},
		}},
	}
}

func toFieldError(re gojsonschema.ResultError) FieldError {
	field := re.Field()
	details := re.Details()
	params := make(map[string]any, len(details))
	for k, val := range details {
		if k == "field" || k == "context" {
			continue
		}
		params[k] = val
	}

	fe := FieldError{Field: field, Params: params}
	switch re.Type() {
	case "required":
		fe.Keyword = "required"
		fe.Message = fmt.Sprintf("Missing required field: %v", details["property"])
	case "invalid_type":
		fe.Keyword = "type"
		fe.Message = fmt.Sprintf("Field %s should be %v", field, details["expected"])
	case "format":
		fe.Keyword = "format"
		fe.Message = fmt.Sprintf("Field %s should match format %v", field, details["format"])
	case "enum":
		fe.Keyword = "enum"
		fe.Message = fmt.Sprintf("Field %s should be one of: %s", field, allowedValues(details["allowed"]))
	case "string_gte":
		fe.Keyword = "minLength"
		fe.Message = fmt.Sprintf("Field %s should have at least %v characters", field, details["min"])
	case "string_lte":
		fe.Keyword = "maxLength"
		fe.Message = fmt.Sprintf("Field %s should have at most %v characters", field, details["max"])
	case "number_gte":
		fe.Keyword = "minimum"
		fe.Message = fmt.Sprintf("Field %s should be >= %v", field, details["min"])
	case "number_lte":
		fe.Keyword = "maximum"
		fe.Message = fmt.Sprintf("Field %s should be <= %v", field, details["max"])
	case "pattern":
		fe.Keyword = "pattern"
		fe.Message = fmt.Sprintf("Field %s should match pattern %v", field, details["pattern"])
	default:
		fe.Keyword = re.Type()
		fe.Message = fmt.Sprintf("%s: %s", field, re.Description())
	}
	return fe
}

// allowedValues renders gojsonschema's enum detail, a comma separated list
// of JSON literals, as plain words.
func allowedValues(v any) string {
	s, ok := v.(string)
	if !ok {
		return fmt.Sprint(v)
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.Trim(strings.TrimSpace(p), `"`)
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}

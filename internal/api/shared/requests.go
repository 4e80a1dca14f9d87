package shared

import (
	"net/http"
	"net/url"
	"strconv"
)

// QueryParams binds typed values out of a request's query string while
// collecting per-field errors, so a handler can report every invalid
// parameter in a single validation response.
type QueryParams struct {
	values url.Values
	errors []FieldError
}

// ParseQuery wraps the request's query string for typed extraction.
func ParseQuery(r *http.Request) *QueryParams {
	return &QueryParams{values: r.URL.Query()}
}

// Float extracts a required float parameter. A missing or unparsable value
// records a field error and returns zero.
func (q *QueryParams) Float(name string) float64 {
	raw, ok := q.require(name)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		q.errors = append(q.errors, FieldError{Field: name, Message: "must be a number"})
		return 0
	}
	return v
}

// Int extracts a required integer parameter. A missing or unparsable value
// records a field error and returns zero.
func (q *QueryParams) Int(name string) int {
	raw, ok := q.require(name)
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		q.errors = append(q.errors, FieldError{Field: name, Message: "must be an integer"})
		return 0
	}
	return v
}

// String extracts a required string parameter. A missing or empty value
// records a field error.
func (q *QueryParams) String(name string) string {
	raw, ok := q.require(name)
	if !ok {
		return ""
	}
	return raw
}

// Errors returns the field errors collected so far, or nil when every
// extracted parameter was valid.
func (q *QueryParams) Errors() []FieldError {
	return q.errors
}

func (q *QueryParams) require(name string) (string, bool) {
	if !q.values.Has(name) || q.values.Get(name) == "" {
		q.errors = append(q.errors, FieldError{Field: name, Message: "is required"})
		return "", false
	}
	return q.values.Get(name), true
}

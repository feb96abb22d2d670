package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/biit/biit-api/errs"
)

// StoreTimeout bounds every store call a handler makes
const StoreTimeout = 10 * time.Second

// Source is where a handler reads its declared fields from
type Source int

const (
	// Query reads fields from the url query string
	Query Source = iota
	// Body reads fields from the json request body
	Body
)

func (s Source) String() string {
	if s == Body {
		return "body"
	}
	return "query"
}

// Request wraps the incoming http request with its decoded inputs
type Request struct {
	*http.Request
	query url.Values
	body  map[string]interface{}
}

// NewRequest parses the query string and, for Body sources, the json body
func NewRequest(r *http.Request, src Source) (*Request, error) {
	req := &Request{
		Request: r,
		query:   r.URL.Query(),
		body:    map[string]interface{}{},
	}
	if src != Body || r.Body == nil {
		return req, nil
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errs.BadRequest("failed to read request body")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return req, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&req.body); err != nil {
		return nil, errs.BadRequest("failed to decode request body")
	}
	return req, nil
}

// Value returns the raw value of a field
func (r *Request) Value(src Source, name string) (interface{}, bool) {
	if src == Body {
		v, ok := r.body[name]
		return v, ok
	}
	if _, ok := r.query[name]; !ok {
		return nil, false
	}
	return r.query.Get(name), true
}

// Has reports whether the field is present and not empty
func (r *Request) Has(src Source, name string) bool {
	v, ok := r.Value(src, name)
	if !ok || v == nil {
		return false
	}
	if s, isString := v.(string); isString {
		return s != ""
	}
	return true
}

// String returns the field as a string, or "" when absent
func (r *Request) String(src Source, name string) string {
	v, ok := r.Value(src, name)
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// Strings returns a list field. A json array of strings and a comma separated
// string are both accepted.
func (r *Request) Strings(src Source, name string) ([]string, error) {
	v, ok := r.Value(src, name)
	if !ok || v == nil {
		return []string{}, nil
	}
	switch t := v.(type) {
	case string:
		return splitList(t), nil
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, isString := item.(string)
			if !isString {
				return nil, errs.BadRequest(fmt.Sprintf("%s must be a list of strings", name))
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, errs.BadRequest(fmt.Sprintf("%s must be a list of strings", name))
	}
}

// Int returns an integer field
func (r *Request) Int(src Source, name string) (int, error) {
	s := r.String(src, name)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.BadRequest(fmt.Sprintf("%s must be an integer, got %q", name, s))
	}
	return n, nil
}

// Object returns a json object field. Query values hold the object as a json
// encoded string.
func (r *Request) Object(src Source, name string) (map[string]interface{}, error) {
	v, ok := r.Value(src, name)
	if !ok || v == nil {
		return nil, errs.MissingField(name)
	}
	if m, isMap := v.(map[string]interface{}); isMap {
		return m, nil
	}
	s, isString := v.(string)
	if !isString {
		return nil, errs.BadRequest(fmt.Sprintf("%s must be a json object", name))
	}
	out := map[string]interface{}{}
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return nil, errs.BadRequest(fmt.Sprintf("%s must be a json object", name))
	}
	return out, nil
}

// Var returns a mux path variable
func (r *Request) Var(name string) string {
	return mux.Vars(r.Request)[name]
}

// StoreContext derives the context handlers pass to the store
func (r *Request) StoreContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), StoreTimeout)
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package signature

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Field names with a fixed meaning in every request
const (
	FieldSign      = "sign"
	FieldVersion   = "ver"
	FieldToken     = "token"
	FieldTimestamp = "timestamp"
)

// Request is the flat key/value payload of one RPC call. Values are strings,
// numbers, booleans or nil.
type Request map[string]interface{}

// ParseRequest decodes a JSON body into a Request. Numbers are kept as
// json.Number. An empty body or a JSON null yields a nil Request, which
// ValidateRequest reports as MissingPayload. Nested objects and arrays are
// rejected.
func ParseRequest(body []byte) (Request, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, PayloadError{Message: err.Error()}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, PayloadError{Message: "trailing data after JSON object"}
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, PayloadError{Message: fmt.Sprintf("expected a JSON object, got %T", raw)}
	}

	for key, value := range obj {
		switch value.(type) {
		case nil, string, bool, json.Number:
		default:
			return nil, PayloadError{Field: key, Message: "nested values are not supported"}
		}
	}

	return Request(obj), nil
}

// Has reports whether key is present with a non-empty value
func (r Request) Has(key string) bool {
	_, ok := FormatValue(r[key])
	return ok
}

// Clone returns a shallow copy of the request
func (r Request) Clone() Request {
	if r == nil {
		return nil
	}
	out := make(Request, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

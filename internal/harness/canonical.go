package harness

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/text/unicode/norm"
)

// canonicalJSON sorts object keys and leaves <, > and & unescaped.
var canonicalJSON = jsoniter.Config{
	SortMapKeys: true,
	EscapeHTML:  false,
}.Froze()

// MarshalCanonical renders v as deterministic JSON: object keys sorted,
// strings NFC-normalized, numbers in their shortest form and no HTML
// escaping. Structs are first reduced to their JSON object form, so a struct
// and a map with the same fields marshal identically.
func MarshalCanonical(v any) ([]byte, error) {
	raw, err := canonicalJSON.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	var generic any
	dec := canonicalJSON.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("reparse: %w", err)
	}

	out, err := canonicalJSON.Marshal(normalize(generic))
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	return out, nil
}

// CanonicalEqual reports whether a and b have the same canonical form.
func CanonicalEqual(a, b any) (bool, error) {
	ca, err := MarshalCanonical(a)
	if err != nil {
		return false, err
	}
	cb, err := MarshalCanonical(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(ca, cb), nil
}

func normalize(v any) any {
	switch val := v.(type) {
	case string:
		return norm.NFC.String(val)
	case []any:
		for i, elem := range val {
			val[i] = normalize(elem)
		}
		return val
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[norm.NFC.String(k)] = normalize(elem)
		}
		return out
	default:
		return v
	}
}

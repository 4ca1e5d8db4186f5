package idmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/iudanet/coffeeshop/internal/models"
)

// RewritePath substitutes temporary ids in the path segments of path
func RewritePath(path string, mappings map[string]string) string {
	p, query := models.SplitQuery(path)

	segments := strings.Split(p, "/")
	for i, seg := range segments {
		id, err := url.PathUnescape(seg)
		if err != nil || !models.IsTempID(id) {
			continue
		}
		if permanent, ok := mappings[id]; ok {
			segments[i] = url.PathEscape(permanent)
		}
	}

	out := strings.Join(segments, "/")
	if query != "" {
		out += "?" + query
	}
	return out
}

// RewritePayload substitutes temporary ids appearing as JSON string values
// anywhere in payload. Числовые id сервера записываются числом.
func RewritePayload(payload json.RawMessage, mappings map[string]string) (json.RawMessage, error) {
	if len(payload) == 0 || len(mappings) == 0 {
		return payload, nil
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}

	doc, changed := rewriteValue(doc, mappings)
	if !changed {
		return payload, nil
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return data, nil
}

func rewriteValue(v any, mappings map[string]string) (any, bool) {
	switch val := v.(type) {
	case string:
		if !models.IsTempID(val) {
			return val, false
		}
		permanent, ok := mappings[val]
		if !ok {
			return val, false
		}
		if n := json.Number(permanent); isNumeric(permanent) {
			return n, true
		}
		return permanent, true
	case map[string]any:
		changed := false
		for k, item := range val {
			nv, c := rewriteValue(item, mappings)
			val[k] = nv
			changed = changed || c
		}
		return val, changed
	case []any:
		changed := false
		for i, item := range val {
			nv, c := rewriteValue(item, mappings)
			val[i] = nv
			changed = changed || c
		}
		return val, changed
	default:
		return v, false
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

package models

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// marshalWithExtras encodes known (a struct) and appends the extra keys in
// sorted order. Extras that collide with a known key are skipped.
func marshalWithExtras(known interface{}, extras map[string]json.RawMessage, knownKeys map[string]bool) ([]byte, error) {
	body, err := encodeNoEscape(known)
	if err != nil {
		return nil, err
	}
	if len(extras) == 0 {
		return body, nil
	}

	keys := make([]string, 0, len(extras))
	for k := range extras {
		if !knownKeys[k] {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return body, nil
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.Write(body[:len(body)-1])
	empty := len(bytes.TrimSpace(body)) == 2
	for i, k := range keys {
		name, err := encodeNoEscape(k)
		if err != nil {
			return nil, err
		}
		if i > 0 || !empty {
			buf.WriteByte(',')
		}
		buf.Write(name)
		buf.WriteByte(':')
		v := extras[k]
		if len(v) == 0 {
			v = json.RawMessage("null")
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// splitExtras returns the keys of a JSON object that are not in knownKeys.
func splitExtras(data []byte, knownKeys map[string]bool) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for k := range all {
		if knownKeys[k] {
			delete(all, k)
		}
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

func encodeNoEscape(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// HotwordList accepts a JSON array of strings or a single comma-separated
// string. Non-string array items are ignored.
type HotwordList []string

// UnmarshalJSON implements json.Unmarshaler.
func (h *HotwordList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*h = nil
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*h = SplitHotwords(s)
		return nil
	}
	var raw []interface{}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}
	out := make(HotwordList, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	*h = out
	return nil
}

// SplitHotwords splits a comma-separated list, trimming and lower-casing each
// token and dropping empty ones.
func SplitHotwords(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

package agent

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extractJSON isolates the first JSON value in a judge response. Models
// routinely wrap JSON in prose or code fences even in JSON mode, so the
// parser scans for the outermost object or array instead of trusting the
// whole response.
func extractJSON(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return text
	}

	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return text
	}

	var end int
	if text[start] == '{' {
		end = strings.LastIndexByte(text, '}')
	} else {
		end = strings.LastIndexByte(text, ']')
	}
	if end <= start {
		return text[start:]
	}
	return text[start : end+1]
}

// decodeJSON extracts and unmarshals the first JSON value in raw.
func decodeJSON(raw string, v any) error {
	text := extractJSON(raw)
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// stringList tolerates models answering a list field with a bare string.
type stringList []string

func (s *stringList) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" {
		*s = nil
		return nil
	}
	if strings.HasPrefix(text, "\"") {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*s = stringList{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = stringList(list)
	return nil
}

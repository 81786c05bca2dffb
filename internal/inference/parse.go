package inference

import (
	"encoding/json"
	"fmt"
	"sort"
)

// parseGenerated extracts the generated text from a model response whose shape
// is not contractually fixed: a single object or a list of objects keyed by the
// task-specific field (summary_text, translation_text) or generated_text, with
// progressively weaker fallbacks. Non-JSON bodies are returned as-is, matching
// models that reply with raw text.
func parseGenerated(body []byte, preferred string) string {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return string(body)
	}
	return textFromValue(data, preferred)
}

func textFromValue(data any, preferred string) string {
	switch v := data.(type) {
	case []any:
		if len(v) == 0 {
			return fmt.Sprintf("%v", v)
		}
		return textFromValue(v[0], preferred)
	case map[string]any:
		for _, key := range []string{preferred, "generated_text"} {
			if s, ok := v[key].(string); ok {
				return s
			}
		}
		if s, ok := firstStringField(v); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// parseTranslated is the strict variant used for translation responses: when
// no string payload can be found the chunk is considered untranslatable and
// the whole translation aborts, so there is no stringify fallback here.
func parseTranslated(body []byte) (string, bool) {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return string(body), len(body) > 0
	}
	return stringFromValue(data)
}

func stringFromValue(data any) (string, bool) {
	switch v := data.(type) {
	case []any:
		if len(v) == 0 {
			return "", false
		}
		return stringFromValue(v[0])
	case map[string]any:
		for _, key := range []string{"translation_text", "generated_text"} {
			if s, ok := v[key].(string); ok && s != "" {
				return s, true
			}
		}
		if s, ok := firstStringField(v); ok && s != "" {
			return s, true
		}
		return "", false
	case string:
		return v, v != ""
	default:
		return "", false
	}
}

// firstStringField walks keys in sorted order so the fallback is deterministic.
func firstStringField(m map[string]any) (string, bool) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			return s, true
		}
	}
	return "", false
}

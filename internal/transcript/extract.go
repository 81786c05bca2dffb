package transcript

import (
	"reflect"
	"strings"
)

// segmentFromItem pulls (start, duration, text) out of a single timed record.
// Records arrive either as generic maps or as provider-defined values exposing
// text through a field or a zero-argument method; both are accepted, mirroring
// the attribute probing the provider's shifting shapes require. Records with
// empty text are dropped.
func segmentFromItem(item any) (Segment, bool) {
	switch v := item.(type) {
	case Segment:
		return v, strings.TrimSpace(v.Text) != ""
	case *Segment:
		if v == nil {
			return Segment{}, false
		}
		return *v, strings.TrimSpace(v.Text) != ""
	case map[string]any:
		text, ok := v["text"].(string)
		if !ok || strings.TrimSpace(text) == "" {
			return Segment{}, false
		}
		return Segment{
			Start:    toFloat(v["start"]),
			Duration: toFloat(v["duration"]),
			Text:     text,
		}, true
	}

	text, ok := stringAttr(item, "Text")
	if !ok || strings.TrimSpace(text) == "" {
		return Segment{}, false
	}
	start, _ := floatAttr(item, "Start")
	duration, _ := floatAttr(item, "Duration")
	return Segment{Start: start, Duration: duration, Text: text}, true
}

// languageOf reports a value's language code if it exposes one.
func languageOf(v any) string {
	if lc, ok := v.(LanguageCoded); ok {
		return lc.LanguageCode()
	}
	if m, ok := v.(map[string]any); ok {
		if s, ok := m["language_code"].(string); ok {
			return s
		}
		if s, ok := m["language"].(string); ok {
			return s
		}
		return ""
	}
	if s, ok := stringAttr(v, "LanguageCode"); ok {
		return s
	}
	if s, ok := stringAttr(v, "Language"); ok {
		return s
	}
	return ""
}

// asSlice flattens any slice or array value into []any.
func asSlice(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// stringAttr resolves name as an exported struct field or a zero-argument
// method returning a string.
func stringAttr(item any, name string) (string, bool) {
	rv := reflect.ValueOf(item)
	if !rv.IsValid() {
		return "", false
	}
	if m := rv.MethodByName(name); m.IsValid() && m.Type().NumIn() == 0 && m.Type().NumOut() >= 1 {
		if out := m.Call(nil)[0]; out.Kind() == reflect.String {
			return out.String(), true
		}
	}
	rv = reflect.Indirect(rv)
	if rv.Kind() == reflect.Struct {
		if f := rv.FieldByName(name); f.IsValid() && f.Kind() == reflect.String {
			return f.String(), true
		}
	}
	return "", false
}

// floatAttr resolves name as a numeric struct field or getter.
func floatAttr(item any, name string) (float64, bool) {
	rv := reflect.ValueOf(item)
	if !rv.IsValid() {
		return 0, false
	}
	if m := rv.MethodByName(name); m.IsValid() && m.Type().NumIn() == 0 && m.Type().NumOut() >= 1 {
		if f, ok := floatValue(m.Call(nil)[0]); ok {
			return f, true
		}
	}
	rv = reflect.Indirect(rv)
	if rv.Kind() == reflect.Struct {
		if f := rv.FieldByName(name); f.IsValid() {
			return floatValue(f)
		}
	}
	return 0, false
}

func floatValue(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	}
	return 0, false
}

// toFloat converts the numeric representations seen in decoded JSON maps.
func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

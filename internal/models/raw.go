package models

import (
	"fmt"
	"strconv"
)

// RawArticle is one article object exactly as it appears in the input
// document. Crawler generations disagree on key names and value types, so
// access goes through prioritized lookups that treat missing keys as
// defaults instead of errors.
type RawArticle map[string]any

// StringField returns the stringified value for key, or "" when absent.
func (a RawArticle) StringField(key string) string {
	v, ok := a[key]
	if !ok {
		return ""
	}
	return Stringify(v)
}

// FirstPresent returns the stringified value of the first key that exists
// in the article, even if its value is empty.
func (a RawArticle) FirstPresent(keys ...string) string {
	for _, key := range keys {
		if v, ok := a[key]; ok {
			return Stringify(v)
		}
	}

	return ""
}

// FirstTruthy returns the raw value of the first key whose value is truthy,
// or nil when none is.
func (a RawArticle) FirstTruthy(keys ...string) any {
	for _, key := range keys {
		if v, ok := a[key]; ok && Truthy(v) {
			return v
		}
	}

	return nil
}

// TruthyField reports whether key exists and holds a truthy value.
func (a RawArticle) TruthyField(key string) bool {
	v, ok := a[key]

	return ok && Truthy(v)
}

// Messages returns the article's reply list. Absent or malformed entries
// contribute nothing.
func (a RawArticle) Messages() []RawArticle {
	list, ok := a["messages"].([]any)
	if !ok {
		return nil
	}

	msgs := make([]RawArticle, 0, len(list))

	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			msgs = append(msgs, RawArticle(m))
		}
	}

	return msgs
}

// Truthy reports whether a decoded JSON value is truthy: non-empty strings,
// non-zero numbers, true booleans, and non-empty collections.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

// Stringify renders a decoded JSON value as a plain string. Integral
// numbers render without a decimal point so numeric article IDs keep their
// original appearance.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}

		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

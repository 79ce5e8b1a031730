package normalizer

import (
	"time"
)

// isoLayout is the canonical output form for creation times.
const isoLayout = "2006-01-02T15:04:05"

// dateLayouts are tried in order against string timestamps. The last entry
// covers the ctime-style form some crawlers copy verbatim from the forum.
var dateLayouts = []string{
	"2006/01/02 15:04",
	"2006-01-02 15:04",
	"2006/01/02",
	"2006-01-02",
	"Mon Jan _2 15:04:05 2006",
}

// NormalizeDatetime coerces common timestamp shapes to local-time ISO-8601.
// Numeric values are treated as epoch seconds. Strings are tried against
// each known layout; a string that matches none is returned unchanged so no
// information is lost. Falsy or unusable input yields "".
func NormalizeDatetime(value any) string {
	switch v := value.(type) {
	case float64:
		if v == 0 {
			return ""
		}

		sec := int64(v)
		nsec := int64((v - float64(sec)) * float64(time.Second))

		return time.Unix(sec, nsec).Format(isoLayout)

	case int:
		if v == 0 {
			return ""
		}

		return time.Unix(int64(v), 0).Format(isoLayout)

	case int64:
		if v == 0 {
			return ""
		}

		return time.Unix(v, 0).Format(isoLayout)

	case string:
		if v == "" {
			return ""
		}

		for _, layout := range dateLayouts {
			if ts, err := time.Parse(layout, v); err == nil {
				return ts.Format(isoLayout)
			}
		}

		return v

	default:
		return ""
	}
}

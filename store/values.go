package store

import "time"

// TimeLayout is a fixed-width RFC3339 form so that encoded timestamps sort
// lexicographically in chronological order, the same trick the padded badger
// keys rely on.
const TimeLayout = "2006-01-02T15:04:05.000000000Z0700"

func EncodeTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

func DecodeTime(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

func (r Record) ID() string {
	return r.String("id")
}

func (r Record) String(field string) string {
	if s, ok := r[field].(string); ok {
		return s
	}
	return ""
}

// StringSlice tolerates both []string (fresh records) and []any
// (records read back through JSON).
func (r Record) StringSlice(field string) []string {
	switch v := r[field].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func (r Record) Time(field string) time.Time {
	switch v := r[field].(type) {
	case time.Time:
		return v
	case string:
		if t, err := DecodeTime(v); err == nil {
			return t
		}
	}
	return time.Time{}
}

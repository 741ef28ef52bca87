package store

import (
	"sort"
	"strings"
)

// matches reports whether a record satisfies every filter of the query.
func matches(rec Record, where []Filter) bool {
	for _, f := range where {
		switch f.Op {
		case OpEq:
			if !valueEqual(rec[f.Field], f.Value) {
				return false
			}
		case OpContains:
			if !sliceContains(rec, f.Field, f.Value) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// applyQuery filters, sorts and limits records already in insertion order.
// A descending ordering is the exact mirror of the ascending one: full ties
// keep insertion order under Asc and reverse it under Desc, so a reversed
// Desc page always restores insertion order.
func applyQuery(recs []Record, q Query) []Record {
	type positioned struct {
		rec Record
		pos int
	}
	kept := make([]positioned, 0, len(recs))
	for i, rec := range recs {
		if matches(rec, q.Where) {
			kept = append(kept, positioned{rec: rec, pos: i})
		}
	}
	if len(q.OrderBy) > 0 {
		sort.Slice(kept, func(i, j int) bool {
			for _, o := range q.OrderBy {
				c := compareValues(kept[i].rec[o.Field], kept[j].rec[o.Field])
				if c == 0 {
					continue
				}
				if o.Desc {
					return c > 0
				}
				return c < 0
			}
			if q.OrderBy[0].Desc {
				return kept[i].pos > kept[j].pos
			}
			return kept[i].pos < kept[j].pos
		})
	}
	if q.Limit > 0 && len(kept) > q.Limit {
		kept = kept[:q.Limit]
	}
	out := make([]Record, len(kept))
	for i, p := range kept {
		out[i] = p.rec
	}
	return out
}

func valueEqual(got, want any) bool {
	if ws, ok := asStringSlice(want); ok {
		gs, ok := asStringSlice(got)
		if !ok || len(gs) != len(ws) {
			return false
		}
		for i := range gs {
			if gs[i] != ws[i] {
				return false
			}
		}
		return true
	}
	switch w := want.(type) {
	case string:
		g, ok := got.(string)
		return ok && g == w
	case bool:
		g, ok := got.(bool)
		return ok && g == w
	default:
		gf, gok := asFloat(got)
		wf, wok := asFloat(want)
		return gok && wok && gf == wf
	}
}

func sliceContains(rec Record, field string, value any) bool {
	want, ok := value.(string)
	if !ok {
		return false
	}
	for _, s := range rec.StringSlice(field) {
		if s == want {
			return true
		}
	}
	return false
}

func asStringSlice(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		return s, true
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			str, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	}
	return nil, false
}

// compareValues orders scalars of the same JSON kind. Encoded timestamps
// compare correctly as strings thanks to TimeLayout.
func compareValues(a, b any) int {
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case bv:
				return -1
			default:
				return 1
			}
		}
	default:
		af, aok := asFloat(a)
		bf, bok := asFloat(b)
		if aok && bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	return 0
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

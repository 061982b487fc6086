package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// IndexList is an ordered list of array positions used by replace and delete
// directives.
type IndexList []int

// ArrayDirectives carries the positional patch directives for one array
// field. HasReplace distinguishes "no replace directive supplied" from "an
// empty one": append is the fallback only when no directive was supplied at
// all.
type ArrayDirectives struct {
	Replace    IndexList
	HasReplace bool
	Delete     IndexList
}

// WithReplace returns directives with a replace index list.
func WithReplace(idx IndexList) ArrayDirectives {
	return ArrayDirectives{Replace: idx, HasReplace: true}
}

// WithDelete returns directives with a delete index list.
func WithDelete(idx IndexList) ArrayDirectives {
	return ArrayDirectives{Delete: idx}
}

// DecodeIndexes parses an index directive leniently. Form-encoded requests
// deliver directives as strings ("2", "[0,2]"); JSON requests deliver numbers
// or arrays. Unparseable input degrades to "treat as a single raw index";
// non-numeric input yields an empty list. It never returns an error:
// out-of-range values are dropped later by Reconcile.
func DecodeIndexes(raw any) IndexList {
	switch v := raw.(type) {
	case nil:
		return nil
	case int:
		return IndexList{v}
	case int64:
		return IndexList{int(v)}
	case float64:
		return IndexList{int(v)}
	case []int:
		return IndexList(v)
	case IndexList:
		return v
	case []any:
		out := make(IndexList, 0, len(v))
		for _, e := range v {
			out = append(out, DecodeIndexes(e)...)
		}
		return out
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		var arr []int
		if err := json.Unmarshal([]byte(s), &arr); err == nil {
			return IndexList(arr)
		}
		if n, err := strconv.Atoi(s); err == nil {
			return IndexList{n}
		}
		return nil
	default:
		return nil
	}
}

// Reconcile applies positional patch directives to an ordered list and
// returns the new list. The input slices are never mutated.
//
// Replace and delete indices both refer to the layout of current: they are
// resolved against a shared, stable index space before either mutates it, so
// index shifting from one operation cannot invalidate the other. The order
// is fixed:
//
//  1. in-range delete indices are collected into a set (duplicates and
//     out-of-range values are dropped, never an error),
//  2. replace pairs incoming[i] with Replace[i]; a slot marked for deletion
//     is not overwritten (deletion wins), a replace index with no paired
//     incoming element is a no-op,
//  3. marked slots are removed,
//  4. incoming is appended to the end only when no replace directive was
//     supplied at all and incoming is non-empty.
func Reconcile[T any](current, incoming []T, d ArrayDirectives) []T {
	work := make([]T, len(current))
	copy(work, current)

	deleted := make(map[int]struct{}, len(d.Delete))
	for _, idx := range d.Delete {
		if idx >= 0 && idx < len(work) {
			deleted[idx] = struct{}{}
		}
	}

	if d.HasReplace && len(incoming) > 0 {
		for i, idx := range d.Replace {
			if i >= len(incoming) {
				break
			}
			if idx < 0 || idx >= len(work) {
				continue
			}
			if _, gone := deleted[idx]; gone {
				continue
			}
			work[idx] = incoming[i]
		}
	}

	if len(deleted) > 0 {
		kept := make([]T, 0, len(work)-len(deleted))
		for i, el := range work {
			if _, gone := deleted[i]; !gone {
				kept = append(kept, el)
			}
		}
		work = kept
	}

	if !d.HasReplace && len(incoming) > 0 {
		work = append(work, incoming...)
	}

	return work
}

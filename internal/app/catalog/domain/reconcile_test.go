package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcile_Append(t *testing.T) {
	t.Run("no directives appends to the end", func(t *testing.T) {
		got := Reconcile([]string{"a", "b"}, []string{"c", "d"}, ArrayDirectives{})

		assert.Equal(t, []string{"a", "b", "c", "d"}, got)
	})

	t.Run("append law holds for empty current", func(t *testing.T) {
		got := Reconcile(nil, []string{"x"}, ArrayDirectives{})

		assert.Equal(t, []string{"x"}, got)
	})

	t.Run("empty incoming returns current unchanged", func(t *testing.T) {
		got := Reconcile([]string{"a", "b"}, nil, ArrayDirectives{})

		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("present but empty replace directive suppresses append", func(t *testing.T) {
		got := Reconcile([]string{"a"}, []string{"b"}, WithReplace(nil))

		assert.Equal(t, []string{"a"}, got)
	})
}

func TestReconcile_Replace(t *testing.T) {
	t.Run("overwrites the targeted slot", func(t *testing.T) {
		got := Reconcile([]string{"a", "b", "c"}, []string{"X"}, WithReplace(IndexList{1}))

		assert.Equal(t, []string{"a", "X", "c"}, got)
	})

	t.Run("pairs indices with incoming positionally", func(t *testing.T) {
		got := Reconcile([]string{"a", "b", "c"}, []string{"X", "Y"}, WithReplace(IndexList{0, 2}))

		assert.Equal(t, []string{"X", "b", "Y"}, got)
	})

	t.Run("out-of-range index is dropped, never extends the array", func(t *testing.T) {
		got := Reconcile([]string{"a"}, []string{"X"}, WithReplace(IndexList{5}))

		assert.Equal(t, []string{"a"}, got)
	})

	t.Run("index with no paired incoming element is a no-op", func(t *testing.T) {
		got := Reconcile([]string{"a", "b"}, []string{"X"}, WithReplace(IndexList{0, 1}))

		assert.Equal(t, []string{"X", "b"}, got)
	})

	t.Run("does not mutate current", func(t *testing.T) {
		current := []string{"a", "b"}
		Reconcile(current, []string{"X"}, WithReplace(IndexList{0}))

		assert.Equal(t, []string{"a", "b"}, current)
	})
}

func TestReconcile_Delete(t *testing.T) {
	t.Run("removes exactly the targeted element keeping order", func(t *testing.T) {
		got := Reconcile([]string{"a", "b", "c"}, nil, WithDelete(IndexList{1}))

		assert.Equal(t, []string{"a", "c"}, got)
	})

	t.Run("multiple deletes refer to the original layout", func(t *testing.T) {
		got := Reconcile([]string{"a", "b", "c"}, nil, WithDelete(IndexList{0, 2}))

		assert.Equal(t, []string{"b"}, got)
	})

	t.Run("duplicate index is idempotent", func(t *testing.T) {
		once := Reconcile([]string{"a", "b", "c"}, nil, WithDelete(IndexList{1}))
		twice := Reconcile([]string{"a", "b", "c"}, nil, WithDelete(IndexList{1, 1}))

		assert.Equal(t, once, twice)
	})

	t.Run("out-of-range index is silently ignored", func(t *testing.T) {
		got := Reconcile([]string{"a"}, nil, WithDelete(IndexList{-1, 7}))

		assert.Equal(t, []string{"a"}, got)
	})
}

func TestReconcile_ReplaceAndDelete(t *testing.T) {
	t.Run("deletion wins over replace for the same slot", func(t *testing.T) {
		d := ArrayDirectives{Replace: IndexList{1}, HasReplace: true, Delete: IndexList{1}}

		got := Reconcile([]string{"a", "b", "c"}, []string{"X"}, d)

		assert.Equal(t, []string{"a", "c"}, got)
		assert.NotContains(t, got, "X")
	})

	t.Run("replace targets refer to the pre-delete layout", func(t *testing.T) {
		d := ArrayDirectives{Replace: IndexList{2}, HasReplace: true, Delete: IndexList{0}}

		got := Reconcile([]string{"a", "b", "c"}, []string{"X"}, d)

		assert.Equal(t, []string{"b", "X"}, got)
	})

	t.Run("replace directive still suppresses append after delete", func(t *testing.T) {
		d := ArrayDirectives{Replace: IndexList{0}, HasReplace: true, Delete: IndexList{1}}

		got := Reconcile([]string{"a", "b"}, []string{"X", "Y"}, d)

		assert.Equal(t, []string{"X"}, got)
	})
}

func TestDecodeIndexes(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want IndexList
	}{
		{"nil", nil, nil},
		{"single int", 2, IndexList{2}},
		{"float from JSON number", float64(3), IndexList{3}},
		{"structured list", []int{0, 2}, IndexList{0, 2}},
		{"json encoded array", "[0,2]", IndexList{0, 2}},
		{"single raw index string", "4", IndexList{4}},
		{"interface list", []any{float64(1), "2"}, IndexList{1, 2}},
		{"non-numeric degrades to empty", "gallery", nil},
		{"malformed json degrades to empty", "[1,", nil},
		{"blank string", "  ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeIndexes(tt.raw)

			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeKeyValues(t *testing.T) {
	base := []KeyValue{
		{Key: "Display", Value: "12.1 inch"},
		{Key: "Battery", Value: "4 hours"},
	}

	t.Run("existing key is overwritten in place", func(t *testing.T) {
		got := MergeKeyValues(base, []KeyValue{{Key: "Battery", Value: "6 hours"}})

		assert.Equal(t, []KeyValue{
			{Key: "Display", Value: "12.1 inch"},
			{Key: "Battery", Value: "6 hours"},
		}, got)
	})

	t.Run("new key is appended", func(t *testing.T) {
		got := MergeKeyValues(base, []KeyValue{{Key: "Weight", Value: "3.2 kg"}})

		assert.Len(t, got, 3)
		assert.Equal(t, KeyValue{Key: "Weight", Value: "3.2 kg"}, got[2])
	})

	t.Run("empty value deletes the key", func(t *testing.T) {
		got := MergeKeyValues(base, []KeyValue{{Key: "Display"}})

		assert.Equal(t, []KeyValue{{Key: "Battery", Value: "4 hours"}}, got)
	})

	t.Run("deleting an absent key is a no-op", func(t *testing.T) {
		got := MergeKeyValues(base, []KeyValue{{Key: "Ports"}})

		assert.Equal(t, base, got)
	})

	t.Run("mixed batch applies in order", func(t *testing.T) {
		got := MergeKeyValues(base, []KeyValue{
			{Key: "Battery"},
			{Key: "Display", Value: "15 inch"},
			{Key: "Ports", Value: "USB-C"},
		})

		assert.Equal(t, []KeyValue{
			{Key: "Display", Value: "15 inch"},
			{Key: "Ports", Value: "USB-C"},
		}, got)
	})

	t.Run("does not mutate current", func(t *testing.T) {
		before := []KeyValue{{Key: "A", Value: "1"}}
		MergeKeyValues(before, []KeyValue{{Key: "A", Value: "2"}, {Key: "B"}})

		assert.Equal(t, []KeyValue{{Key: "A", Value: "1"}}, before)
	})
}

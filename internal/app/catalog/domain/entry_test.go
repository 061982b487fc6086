package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"Draft", "Live", "Enquiry"} {
		got, err := ParseStatus(s)

		require.NoError(t, err)
		assert.Equal(t, Status(s), got)
	}

	_, err := ParseStatus("Archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseStatus("live")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestEntry_Variant(t *testing.T) {
	e := Entry{Variants: []Variant{
		{ID: "v-1", Name: "Standard"},
		{ID: "v-2", Name: "Pro"},
	}}

	t.Run("returns a pointer into the entry", func(t *testing.T) {
		v := e.Variant("v-2")

		require.NotNil(t, v)
		v.Status = StatusLive

		assert.Equal(t, StatusLive, e.Variants[1].Status)
	})

	t.Run("nil for unknown id", func(t *testing.T) {
		assert.Nil(t, e.Variant("v-9"))
	})
}

func TestEntry_HasVariantNamed(t *testing.T) {
	e := Entry{Variants: []Variant{{ID: "v-1", Name: "Standard"}}}

	assert.True(t, e.HasVariantNamed("Standard", ""))
	assert.True(t, e.HasVariantNamed("standard", ""))
	assert.False(t, e.HasVariantNamed("Pro", ""))
	assert.False(t, e.HasVariantNamed("Standard", "v-1"))
}

func TestEntry_RemoveVariant(t *testing.T) {
	t.Run("removes and reports presence", func(t *testing.T) {
		e := Entry{Variants: []Variant{{ID: "v-1"}, {ID: "v-2"}, {ID: "v-3"}}}

		assert.True(t, e.RemoveVariant("v-2"))
		assert.Equal(t, []Variant{{ID: "v-1"}, {ID: "v-3"}}, e.Variants)
	})

	t.Run("unknown id leaves the entry untouched", func(t *testing.T) {
		e := Entry{Variants: []Variant{{ID: "v-1"}}}

		assert.False(t, e.RemoveVariant("v-9"))
		assert.Len(t, e.Variants, 1)
	})
}

func TestVariant_EnsureDetail(t *testing.T) {
	v := Variant{ID: "v-1"}

	d := v.EnsureDetail()

	require.NotNil(t, d)
	assert.Same(t, d, v.Detail)
	assert.Same(t, d, v.EnsureDetail())
}

func TestVariantDetail_ApplySection(t *testing.T) {
	t.Run("point sections replace wholesale", func(t *testing.T) {
		d := &VariantDetail{SpecPoints: []string{"old"}}

		require.NoError(t, d.ApplySection(SectionSpecPoints, []string{"a", "b"}, nil))

		assert.Equal(t, []string{"a", "b"}, d.SpecPoints)
	})

	t.Run("pair sections merge by key", func(t *testing.T) {
		d := &VariantDetail{Features: []KeyValue{{Key: "Alarm", Value: "audible"}}}

		require.NoError(t, d.ApplySection(SectionFeatures, nil, []KeyValue{
			{Key: "Alarm", Value: "visual"},
			{Key: "Trends", Value: "96h"},
		}))

		assert.Equal(t, []KeyValue{
			{Key: "Alarm", Value: "visual"},
			{Key: "Trends", Value: "96h"},
		}, d.Features)
	})

	t.Run("standard parameter tags are vocabulary checked", func(t *testing.T) {
		d := &VariantDetail{}

		require.NoError(t, d.ApplySection(SectionStandardParameters, []string{"ECG", "SPO2"}, nil))

		err := d.ApplySection(SectionStandardParameters, []string{"ECG", "XRAY"}, nil)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Equal(t, []string{"ECG", "SPO2"}, d.StandardParameters)
	})

	t.Run("optional parameter vocabulary is separate", func(t *testing.T) {
		d := &VariantDetail{}

		require.NoError(t, d.ApplySection(SectionOptionalParameters, []string{"ETCO2", "IBP"}, nil))
		assert.Error(t, d.ApplySection(SectionOptionalParameters, []string{"ECG"}, nil))
	})

	t.Run("unknown section is rejected", func(t *testing.T) {
		d := &VariantDetail{}

		assert.ErrorIs(t, d.ApplySection("colors", nil, nil), ErrInvalidSection)
	})
}

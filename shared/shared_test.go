package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"luxe/shared"
	"luxe/shared/constant"
)

func TestConvertStringToInt(t *testing.T) {
	res, err := shared.ConvertStringToInt("42")
	assert.NoError(t, err)
	assert.Equal(t, 42, res)

	_, err = shared.ConvertStringToInt("not a number")
	assert.Error(t, err)
}

func TestConvertStringToFloat(t *testing.T) {
	res, err := shared.ConvertStringToFloat("2500.5")
	assert.NoError(t, err)
	assert.InDelta(t, 2500.5, res, 0.001)

	_, err = shared.ConvertStringToFloat("not a number")
	assert.Error(t, err)
}

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("maybe"))

	res := shared.ConvertStringToBool("true")
	if assert.NotNil(t, res) {
		assert.True(t, *res)
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "exact division", total: 20, limit: 10, want: 2},
		{name: "remainder rounds up", total: 21, limit: 10, want: 3},
		{name: "no data", total: 0, limit: 10, want: 1},
		{name: "no limit", total: 20, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:get", shared.BuildCacheKey("room:get"))
	assert.Equal(t, "room:get:abc", shared.BuildCacheKey("room:get", "abc"))
	assert.Equal(t, "room:get:a:b", shared.BuildCacheKey("room:get", "a", "b"))
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name     string `db:"name"`
		Capacity int    `db:"capacity"`
		Internal string
	}

	fields := shared.TransformFields(update{Name: "Deluxe", Internal: "ignored"}, "system")

	assert.Equal(t, "Deluxe", fields["name"])
	assert.NotContains(t, fields, "capacity")
	assert.NotContains(t, fields, "Internal")
	assert.Equal(t, "system", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
}

package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hostal/shared"
	"hostal/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "no data", total: 0, limit: 10, want: 1},
		{name: "exact pages", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "zero limit", total: 50, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Number string `db:"number"`
		Floor  int    `db:"floor"`
		Status string `db:"status"`
		Ignore string
	}

	fields := shared.TransformFields(updateRequest{Number: "204", Status: "cleaning", Ignore: "x"}, "reception@plaza.cl")

	assert.Equal(t, "204", fields["number"])
	assert.Equal(t, "cleaning", fields["status"])
	assert.NotContains(t, fields, "floor")
	assert.Equal(t, "reception@plaza.cl", fields["modified_by"])
	assert.Contains(t, fields, "modified_at")
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("abc-123", "id", "rooms")

	assert.Len(t, group.Filters, 1)

	filter, ok := group.Filters[0].(dto.Filter)
	assert.True(t, ok)
	assert.Equal(t, "abc-123", filter.Value)
	assert.Equal(t, "rooms", filter.Table)
	assert.Equal(t, dto.FilterOperatorEq, filter.Operator)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:get:42", shared.BuildCacheKey("room:get", "42"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := shared.FilterByID("b-1", "business_id", "rooms")

	keyA := shared.BuildCacheKeyWithQuery("room:gets", params, filter)
	keyB := shared.BuildCacheKeyWithQuery("room:gets", dto.QueryParams{Page: 2, Limit: 10}, filter)

	assert.NotEqual(t, keyA, keyB)
	assert.Contains(t, keyA, "room:gets")
}

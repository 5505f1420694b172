package domain_test

import (
	"testing"

	"hirelens-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	cases := []struct {
		name                string
		page, limit         int
		wantPage, wantLimit int
	}{
		{"defaults applied", 0, 0, 1, 10},
		{"negative page floors at one", -5, 20, 1, 20},
		{"limit capped at max", 3, 999, 3, 50},
		{"in-range values pass through", 2, 25, 2, 25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, limit := domain.ClampPage(tc.page, tc.limit, 10, 50)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}

func TestNewPaginatedResult(t *testing.T) {
	t.Run("Should round total pages up", func(t *testing.T) {
		res := domain.NewPaginatedResult([]int{1, 2, 3}, 21, 1, 10)
		assert.Equal(t, 3, res.TotalPages)
	})

	t.Run("Nil results marshal as an empty array", func(t *testing.T) {
		res := domain.NewPaginatedResult[int](nil, 0, 1, 10)
		assert.NotNil(t, res.Results)
		assert.Empty(t, res.Results)
		assert.Equal(t, 0, res.TotalPages)
	})
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alt-7/task-management/internal/core/domain"
)

func TestNewPaginatedResult_PageCount(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		pages int
	}{
		{name: "empty", total: 0, limit: 10, pages: 0},
		{name: "partial page", total: 7, limit: 10, pages: 1},
		{name: "exact fit", total: 20, limit: 10, pages: 2},
		{name: "remainder rounds up", total: 25, limit: 10, pages: 3},
		{name: "limit one", total: 3, limit: 1, pages: 3},
		{name: "zero limit guarded", total: 25, limit: 0, pages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := domain.NewPaginatedResult(nil, tt.total, 1, tt.limit)
			require.Equal(t, tt.pages, result.Pages)
			require.Equal(t, tt.total, result.Total)
			require.Equal(t, tt.limit, result.Limit)
		})
	}
}

package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		pageSize   int
		totalPages int
	}{
		{"exact pages", 20, 1, 10, 2},
		{"partial last page", 21, 3, 10, 3},
		{"empty result", 0, 1, 10, 0},
		{"zero page size with rows", 5, 1, 0, 1},
		{"zero page size without rows", 0, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMeta(tt.total, tt.page, tt.pageSize)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.pageSize, meta.PageSize)
			assert.Equal(t, tt.totalPages, meta.TotalPages)
		})
	}
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	meta := NewMeta(2, 1, 20)
	resp := NewSuccessResponseWithMeta([]string{"a", "b"}, meta)

	assert.True(t, resp.Success)
	assert.Equal(t, []string{"a", "b"}, resp.Data)
	require.NotNil(t, resp.Meta)
	assert.Same(t, meta, resp.Meta)
}

package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	r := Request{Page: -3, Size: 0}
	r.Normalize()
	require.Equal(t, 0, r.Page)
	require.Equal(t, 10, r.Size)
	require.Equal(t, "created_at", r.SortBy)
	require.Equal(t, "desc", r.SortOrder)

	r = Request{Page: 2, Size: 500}
	r.Normalize()
	require.Equal(t, 100, r.Size)
	require.Equal(t, 200, r.Offset())
}

func TestNewPageMetadata(t *testing.T) {
	p := NewPage([]int{1, 2, 3}, 0, 10, 3)
	require.Equal(t, 1, p.TotalPages)
	require.True(t, p.Last)

	p = NewPage([]int{1}, 0, 10, 15)
	require.Equal(t, 2, p.TotalPages)
	require.False(t, p.Last)

	p = NewPage([]int{1}, 1, 10, 15)
	require.True(t, p.Last)

	// 空结果集序列化成 []，不是 null
	empty := NewPage[int](nil, 0, 10, 0)
	require.NotNil(t, empty.Content)
	require.Empty(t, empty.Content)
	require.Equal(t, 0, empty.TotalPages)
	require.True(t, empty.Last)
}

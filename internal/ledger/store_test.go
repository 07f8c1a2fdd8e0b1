package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreBasicOperations(t *testing.T) {
	s := newStore[string]()

	s.insert(3, "three")
	s.insert(1, "one")
	s.insert(2, "two")

	got, ok := s.get(1)
	require.True(t, ok)
	assert.Equal(t, "one", got)

	_, ok = s.get(9)
	assert.False(t, ok)

	updated, ok := s.update(2, func(v *string) { *v = "TWO" })
	require.True(t, ok)
	assert.Equal(t, "TWO", updated)

	_, ok = s.update(9, func(v *string) { *v = "nine" })
	assert.False(t, ok)

	removed, ok := s.remove(3)
	require.True(t, ok)
	assert.Equal(t, "three", removed)
	_, ok = s.remove(3)
	assert.False(t, ok)

	assert.Equal(t, 2, s.size())
	assert.Equal(t, []uint64{1, 2}, s.ids())
}

func TestPageWindows(t *testing.T) {
	ids := []uint64{0, 1, 2, 3, 4}

	tests := []struct {
		name     string
		page     uint64
		pageSize uint64
		want     []uint64
	}{
		{name: "first page", page: 0, pageSize: 2, want: []uint64{0, 1}},
		{name: "middle page", page: 1, pageSize: 2, want: []uint64{2, 3}},
		{name: "short last page", page: 2, pageSize: 2, want: []uint64{4}},
		{name: "past the end", page: 3, pageSize: 2, want: nil},
		{name: "zero page size", page: 0, pageSize: 0, want: nil},
		{name: "whole set", page: 0, pageSize: 10, want: []uint64{0, 1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := page(ids, tt.page, tt.pageSize)
			assert.Equal(t, tt.want, []uint64(got))
		})
	}
}

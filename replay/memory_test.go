package replay

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/replaymem/api"
)

func pushRange(m *Memory[int], n int) {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	m.PushItems(items...)
}

func TestMemory_Overwritten(t *testing.T) {
	m, err := New[int](10)
	require.NoError(t, err)
	pushRange(m, 11)

	got, err := m.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 10, got)
}

func TestMemory_CapacityUnchanged(t *testing.T) {
	m, err := New[int](10)
	require.NoError(t, err)
	pushRange(m, 100)

	assert.Equal(t, 10, m.Len())
	assert.Equal(t, 10, m.Cap())
	assert.True(t, m.IsFull())
}

func TestMemory_PartialFill(t *testing.T) {
	m, err := New[string](3)
	require.NoError(t, err)
	assert.True(t, m.IsEmpty())

	m.Push("a")
	m.Push("b")
	assert.Equal(t, 2, m.Len())
	assert.False(t, m.IsFull())

	a, err := m.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "a", a)
	b, err := m.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "b", b)

	_, err = m.Get(2)
	assert.True(t, errors.Is(err, api.ErrIndexOutOfRange))
}

func TestMemory_Construction(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantErr  bool
	}{
		{"zero", 0, true},
		{"negative", -1, true},
		{"one", 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New[any](tt.capacity)
			if tt.wantErr {
				assert.Nil(t, m)
				assert.ErrorIs(t, err, api.ErrInvalidCapacity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0, m.Len())
		})
	}
}

func TestMemory_StorageOrderAfterWrap(t *testing.T) {
	m, err := New[int](4)
	require.NoError(t, err)
	pushRange(m, 6)

	// slots 0 and 1 were overwritten by 4 and 5; 2 and 3 survive in place.
	assert.Equal(t, []int{4, 5, 2, 3}, m.Items())
	assert.Equal(t, "Memory([4, 5, 2, 3])", m.String())
	assert.Equal(t, uint64(6), m.Total())
}

func TestMemory_ItemsIsCopy(t *testing.T) {
	m, err := New[int](2)
	require.NoError(t, err)
	m.PushItems(1, 2)

	items := m.Items()
	items[0] = 99
	got, _ := m.Get(0)
	assert.Equal(t, 1, got)
}

func TestMemory_PushSeqMatchesPushItems(t *testing.T) {
	src := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}

	bySeq, err := New[int](4)
	require.NoError(t, err)
	bySeq.PushSeq(slices.Values(src))

	byItems, err := New[int](4)
	require.NoError(t, err)
	byItems.PushItems(src...)

	assert.Equal(t, byItems.Items(), bySeq.Items())
	assert.Equal(t, byItems.Cursor(), bySeq.Cursor())
}

func TestMemory_EmptyString(t *testing.T) {
	m, err := New[int](3)
	require.NoError(t, err)
	assert.Equal(t, "Memory([])", m.String())
}

// TestMemory_StorageOnlyChangesThroughPush mutates every returned slice and
// checks that the memory is unaffected.
func TestMemory_StorageOnlyChangesThroughPush(t *testing.T) {
	m, err := New[int](3)
	require.NoError(t, err)
	m.PushItems(1, 2, 3, 4)

	for i, items := 0, m.Items(); i < len(items); i++ {
		items[i] = -1
	}
	assert.Equal(t, []int{4, 2, 3}, m.Items())
	assert.Equal(t, "Memory([4, 2, 3])", m.String())
	assert.Equal(t, 1, m.Cursor())
	assert.Equal(t, uint64(4), m.Total())
}

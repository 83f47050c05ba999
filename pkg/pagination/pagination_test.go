package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		in        Params
		wantPage  int
		wantLimit int
	}{
		{"zero values get defaults", Params{}, 1, 10},
		{"negative page clamped", Params{Page: -3, Limit: 20}, 1, 20},
		{"limit capped at 100", Params{Page: 2, Limit: 500}, 2, 100},
		{"valid passes through", Params{Page: 4, Limit: 25}, 4, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Validate()
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantLimit, tt.in.Limit)
		})
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	assert.Equal(t, []int{1, 2, 3}, Slice(items, &Params{Page: 1, Limit: 3}))
	assert.Equal(t, []int{4, 5, 6}, Slice(items, &Params{Page: 2, Limit: 3}))
	assert.Equal(t, []int{7}, Slice(items, &Params{Page: 3, Limit: 3}))
	assert.Empty(t, Slice(items, &Params{Page: 4, Limit: 3}))
	assert.Empty(t, Slice([]int{}, &Params{Page: 1, Limit: 3}))
}

func TestSlice_UnvalidatedPageBelowOne(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	// Callers that skip Validate must still get a window, not a panic.
	assert.Equal(t, []int{1, 2, 3}, Slice(items, &Params{Page: 0, Limit: 3}))
	assert.Equal(t, []int{1, 2, 3}, Slice(items, &Params{Page: -2, Limit: 3}))
	assert.Empty(t, Slice([]int{}, &Params{Page: -1, Limit: 3}))
}

func TestNewResult(t *testing.T) {
	result := NewResult([]string{"a", "b"}, &Params{Page: 2, Limit: 2}, 7)

	assert.Equal(t, 2, result.Count)
	assert.Equal(t, int64(7), result.Total)
	assert.Equal(t, 2, result.CurrentPage)
	assert.Equal(t, 4, result.TotalPages)
}

func TestNewResult_NilItemsBecomeEmptySlice(t *testing.T) {
	result := NewResult[string](nil, &Params{Page: 1, Limit: 10}, 0)

	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.Zero(t, result.TotalPages)
}

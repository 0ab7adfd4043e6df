package seq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_Traversal(t *testing.T) {
	s := []int{10, 20, 30, 40}
	first, last := At(s, 0), At(s, len(s))

	require.Equal(t, 4, Distance(first, last))

	var got []int
	for c := first; !c.Equal(last); c = c.Next() {
		got = append(got, c.Get())
	}
	assert.Equal(t, s, got)

	back := last.Prev()
	assert.Equal(t, 40, back.Get())
	assert.Equal(t, 20, first.Add(1).Get())
	assert.Equal(t, 2, back.Add(-1).Index())

	*first.Ptr() = 11
	assert.Equal(t, 11, s[0], "Ptr addresses the underlying storage")
}

func TestCursor_EqualRequiresSameStorage(t *testing.T) {
	a := []int{1, 2}
	b := []int{1, 2}
	assert.True(t, At(a, 1).Equal(At(a[:2], 1)))
	assert.False(t, At(a, 1).Equal(At(b, 1)))
	assert.True(t, At[int](nil, 0).Equal(At[int](nil, 0)))
}

func TestSameRange(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{1, 2, 3}
	assert.True(t, SameRange(At(a, 0), At(a, 3)))
	assert.False(t, SameRange(At(a, 0), At(b, 3)))
	assert.True(t, SameRange(At[int](nil, 0), At[int](nil, 0)))
}

func TestLexicographicCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"both empty", nil, nil, 0},
		{"empty before non-empty", nil, []int{1}, -1},
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, 0},
		{"prefix orders first", []int{1, 2}, []int{1, 2, 3}, -1},
		{"longer after prefix", []int{1, 2, 3}, []int{1, 2}, 1},
		{"first difference decides", []int{1, 3}, []int{1, 2, 9}, 1},
		{"smaller element", []int{0, 9, 9}, []int{1}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LexicographicCompare[int](SliceView[int](tt.a), SliceView[int](tt.b))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want < 0, LexicographicLess[int](SliceView[int](tt.a), SliceView[int](tt.b)))
		})
	}
}

func TestLexicographicCompareFunc_CustomOrder(t *testing.T) {
	fold := func(x, y string) bool { return strings.ToLower(x) < strings.ToLower(y) }
	a := SliceView[string]{"Apple", "banana"}
	b := SliceView[string]{"apple", "Banana"}
	assert.Equal(t, 0, LexicographicCompareFunc[string](a, b, fold))
}

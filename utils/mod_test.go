package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "c"}, "b"))
	require.Equal(t, -1, FindIndex([]string{"a"}, "z"))
	require.Equal(t, -1, FindIndex([]int(nil), 3))
}

func TestFilter(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }

	require.Equal(t, []int{2, 4}, Filter([]int{1, 2, 3, 4}, even))
	require.Empty(t, Filter([]int{1, 3}, even))
}

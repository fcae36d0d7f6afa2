package utils

// FindIndex returns the position of item in slice, or -1 if absent.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Filter returns the elements of slice that satisfy keep, in order.
func Filter[T any](slice []T, keep func(T) bool) []T {
	kept := make([]T, 0, len(slice))
	for _, v := range slice {
		if keep(v) {
			kept = append(kept, v)
		}
	}
	return kept
}

package sliceutils

func Map[T any, U any](values []T, mapper func(v T) U) []U {
	mapped := make([]U, len(values))
	for i, value := range values {
		mapped[i] = mapper(value)
	}
	return mapped
}

// Compact drops zero values, keeping order.
func Compact[T comparable](values []T) []T {
	var zero T
	compacted := make([]T, 0, len(values))
	for _, value := range values {
		if value != zero {
			compacted = append(compacted, value)
		}
	}
	return compacted
}

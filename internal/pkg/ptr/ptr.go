package ptr

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// NonZero returns nil for the zero value of T.
func NonZero[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

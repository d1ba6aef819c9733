package ptr

// Ref returns a pointer to v. Handy for literals in struct fields.
func Ref[T any](v T) *T {
	return &v
}

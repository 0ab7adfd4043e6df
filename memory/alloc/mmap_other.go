//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package alloc

// mapRegion falls back to heap storage where anonymous mappings are unavailable.
func mapRegion[T any](n, _ int) ([]T, error) {
	return make([]T, n), nil
}

func unmapRegion[T any](p []T, _ int) error {
	clear(p)
	return nil
}

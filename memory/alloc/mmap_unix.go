//go:build linux || darwin || freebsd || netbsd || openbsd

package alloc

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// mapRegion maps size bytes of anonymous memory and views them as n slots of T.
func mapRegion[T any](n, size int) ([]T, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %w", ErrOutOfMemory, size, err)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(data))), n), nil
}

// unmapRegion releases a region returned by mapRegion. The byte view must span
// the whole mapping for unix.Munmap to recognise it.
func unmapRegion[T any](p []T, size int) error {
	data := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(p))), size)
	return unix.Munmap(data)
}

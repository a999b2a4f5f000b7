// Package diskspace implements the free-space guard that must run
// before any save database write.
package diskspace

// DefaultMinFreeBytes is the minimum free space required before a
// write is attempted (100 MiB).
const DefaultMinFreeBytes uint64 = 100 * 1024 * 1024

// HasEnough reports whether the filesystem containing path has at
// least minBytesFree available. If the free space cannot be determined
// the guard does not block the write and reports true.
func HasEnough(path string, minBytesFree uint64) bool {
	free, err := freeBytes(path)
	if err != nil {
		return true
	}
	return free >= minBytesFree
}

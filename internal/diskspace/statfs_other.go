//go:build !unix

package diskspace

import "errors"

var errUnsupported = errors.New("diskspace: free space check not supported on this platform")

func freeBytes(path string) (uint64, error) {
	return 0, errUnsupported
}

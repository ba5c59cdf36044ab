//go:build linux && !baremetal

package globalrng

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func hostRead(p []byte) {
	for len(p) > 0 {
		n, err := unix.Getrandom(p, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			panic(fmt.Sprintf("globalrng: host entropy source failed: %v", err))
		}
		p = p[n:]
	}
}

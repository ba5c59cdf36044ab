//go:build !linux || baremetal

package globalrng

import (
	"crypto/rand"
	"fmt"
)

func hostRead(p []byte) {
	if _, err := rand.Read(p); err != nil {
		panic(fmt.Sprintf("globalrng: host entropy source failed: %v", err))
	}
}

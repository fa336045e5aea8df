//go:build !amd64 && !arm64

package cpu

import "runtime"

// detectFeaturesImpl leaves every SIMD flag unset on other architectures.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}

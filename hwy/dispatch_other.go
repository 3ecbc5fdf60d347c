//go:build !amd64 && !arm64

package hwy

// Other architectures run the scalar ops and the portable log kernels.
func init() {
	setScalarMode()
}

//go:build !windows

package monitorid

// Query returns ErrUnsupported outside of Windows
func Query() ([]Identity, error) {
	return nil, ErrUnsupported
}

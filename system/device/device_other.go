//go:build !windows

package device

func openDevice(conf Config) (Device, error) {
	return nil, ErrUnsupported
}

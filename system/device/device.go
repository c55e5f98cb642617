package device

import (
	"github.com/pkg/errors"
)

// Defines the errors returned while resolving or using a physical monitor
var (
	ErrNoMonitor      = errors.New("no physical monitor found at the given point")
	ErrClosed         = errors.New("physical monitor handles already released")
	ErrUnsupported    = errors.New("monitor configuration API is only available on Windows")
	ErrUnsupportedVCP = errors.New("vcp code not supported by the monitor")
)

// Config defines which display to resolve. The point is in virtual screen coordinates
type Config struct {
	DryRun bool
	X      int32
	Y      int32
}

// Device is a physical monitor reachable over DDC/CI
type Device interface {
	// Descriptions should return the description of every physical monitor behind the display
	Descriptions() []string
	// GetBrightness should return the minimum, current and maximum brightness
	GetBrightness() (min, current, max uint32, err error)
	// SetBrightness should set the raw brightness value, already within [min, max]
	SetBrightness(value uint32) error
	// GetVCP should return the current and maximum value of a VCP feature
	GetVCP(code byte) (current, max uint32, err error)
	// SetVCP should set the value of a VCP feature
	SetVCP(code byte, value uint32) error
	// Close should release the physical monitor handles. Calling it more than once is a no-op
	Close() error
}

// NewDevice resolves the physical monitor nearest to the configured point
func NewDevice(conf Config) (Device, error) {
	if conf.DryRun {
		return NewDryDevice(conf), nil
	}
	return openDevice(conf)
}

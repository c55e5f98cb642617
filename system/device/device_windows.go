//go:build windows

package device

import (
	"unsafe"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

var (
	libUser32 = windows.NewLazySystemDLL("user32.dll")
	libDxva2  = windows.NewLazySystemDLL("dxva2.dll")

	monitorFromPoint                        = libUser32.NewProc("MonitorFromPoint")
	getNumberOfPhysicalMonitorsFromHMONITOR = libDxva2.NewProc("GetNumberOfPhysicalMonitorsFromHMONITOR")
	getPhysicalMonitorsFromHMONITOR         = libDxva2.NewProc("GetPhysicalMonitorsFromHMONITOR")
	destroyPhysicalMonitors                 = libDxva2.NewProc("DestroyPhysicalMonitors")
	getMonitorBrightness                    = libDxva2.NewProc("GetMonitorBrightness")
	setMonitorBrightness                    = libDxva2.NewProc("SetMonitorBrightness")
	getVCPFeatureAndVCPFeatureReply         = libDxva2.NewProc("GetVCPFeatureAndVCPFeatureReply")
	setVCPFeature                           = libDxva2.NewProc("SetVCPFeature")
)

const (
	_MONITOR_DEFAULTTONEAREST = 0x00000002
)

// physicalMonitor mirrors PHYSICAL_MONITOR (pack(1), which matches Go's layout here)
type physicalMonitor struct {
	handle      windows.Handle
	description [128]uint16
}

// Control owns the physical monitor array of one display object
type Control struct {
	Config
	monitors []physicalMonitor
	closed   bool
}

var _ Device = &Control{}

// NewControl finds the display nearest to the configured point and acquires its physical monitor handles.
// The first handle is used for every subsequent call
func NewControl(conf Config) (*Control, error) {
	hMonitor := fromPoint(conf.X, conf.Y)
	if hMonitor == 0 {
		return nil, ErrNoMonitor
	}

	count := uint32(0)
	ret, _, err := getNumberOfPhysicalMonitorsFromHMONITOR.Call(
		hMonitor,
		uintptr(unsafe.Pointer(&count)),
	)
	if ret == 0 {
		return nil, errors.Wrap(err, "cannot get physical monitor count")
	}
	if count == 0 {
		return nil, ErrNoMonitor
	}

	monitors := make([]physicalMonitor, count)
	ret, _, err = getPhysicalMonitorsFromHMONITOR.Call(
		hMonitor,
		uintptr(count),
		uintptr(unsafe.Pointer(&monitors[0])),
	)
	if ret == 0 {
		return nil, errors.Wrap(err, "cannot get physical monitor handle")
	}

	log.Debugf("device: acquired %d physical monitor(s) near (%d, %d)", count, conf.X, conf.Y)

	return &Control{
		Config:   conf,
		monitors: monitors,
	}, nil
}

func openDevice(conf Config) (Device, error) {
	c, err := NewControl(conf)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// POINT is passed by value: one register on 64-bit, two stack slots on 32-bit
func fromPoint(x, y int32) uintptr {
	var ret uintptr
	if unsafe.Sizeof(uintptr(0)) == 8 {
		ret, _, _ = monitorFromPoint.Call(
			uintptr(uint64(uint32(x))|uint64(uint32(y))<<32),
			_MONITOR_DEFAULTTONEAREST,
		)
	} else {
		ret, _, _ = monitorFromPoint.Call(
			uintptr(uint32(x)),
			uintptr(uint32(y)),
			_MONITOR_DEFAULTTONEAREST,
		)
	}
	return ret
}

func (c *Control) handle() (uintptr, error) {
	if c.closed {
		return 0, ErrClosed
	}
	return uintptr(c.monitors[0].handle), nil
}

// Descriptions satisfies Device
func (c *Control) Descriptions() []string {
	desc := make([]string, 0, len(c.monitors))
	for _, m := range c.monitors {
		desc = append(desc, windows.UTF16ToString(m.description[:]))
	}
	return desc
}

// GetBrightness satisfies Device
func (c *Control) GetBrightness() (min, current, max uint32, err error) {
	h, err := c.handle()
	if err != nil {
		return
	}
	ret, _, callErr := getMonitorBrightness.Call(
		h,
		uintptr(unsafe.Pointer(&min)),
		uintptr(unsafe.Pointer(&current)),
		uintptr(unsafe.Pointer(&max)),
	)
	if ret == 0 {
		err = errors.Wrap(callErr, "cannot get monitor brightness")
	}
	return
}

// SetBrightness satisfies Device
func (c *Control) SetBrightness(value uint32) error {
	h, err := c.handle()
	if err != nil {
		return err
	}
	log.Debugf("device: set brightness to %d", value)
	ret, _, callErr := setMonitorBrightness.Call(h, uintptr(value))
	if ret == 0 {
		return errors.Wrap(callErr, "cannot set monitor brightness")
	}
	return nil
}

// GetVCP satisfies Device
func (c *Control) GetVCP(code byte) (current, max uint32, err error) {
	h, err := c.handle()
	if err != nil {
		return
	}
	codeType := uint32(0)
	ret, _, callErr := getVCPFeatureAndVCPFeatureReply.Call(
		h,
		uintptr(code),
		uintptr(unsafe.Pointer(&codeType)),
		uintptr(unsafe.Pointer(&current)),
		uintptr(unsafe.Pointer(&max)),
	)
	if ret == 0 {
		err = errors.Wrapf(callErr, "cannot get vcp feature 0x%02x", code)
	}
	return
}

// SetVCP satisfies Device
func (c *Control) SetVCP(code byte, value uint32) error {
	h, err := c.handle()
	if err != nil {
		return err
	}
	log.Debugf("device: set vcp feature 0x%02x to %d", code, value)
	ret, _, callErr := setVCPFeature.Call(h, uintptr(code), uintptr(value))
	if ret == 0 {
		return errors.Wrapf(callErr, "cannot set vcp feature 0x%02x", code)
	}
	return nil
}

// Close satisfies Device
func (c *Control) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	log.Debugf("device: releasing %d physical monitor(s)", len(c.monitors))
	ret, _, err := destroyPhysicalMonitors.Call(
		uintptr(len(c.monitors)),
		uintptr(unsafe.Pointer(&c.monitors[0])),
	)
	if ret == 0 {
		return errors.Wrap(err, "cannot destroy physical monitors")
	}
	return nil
}

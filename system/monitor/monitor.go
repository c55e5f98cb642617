package monitor

import (
	"github.com/zllovesuki/MonitorController/system/device"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Defines the VCP codes used by the controller
const (
	VCPInputSource byte = 0x60
)

// InputSource is the reply to a VCP 0x60 query. Codes are opaque and only meaningful to the monitor firmware
type InputSource struct {
	Current uint32
	Max     uint32
}

// Control issues brightness and input source commands to one physical monitor
type Control struct {
	dev        device.Device
	brightness Range
}

// NewControl reads the brightness range of the device. The device is owned by the Control afterward
func NewControl(dev device.Device) (*Control, error) {
	if dev == nil {
		return nil, errors.New("nil device is invalid")
	}
	min, current, max, err := dev.GetBrightness()
	if err != nil {
		return nil, errors.Wrap(err, "cannot read brightness range")
	}
	log.Debugf("monitor: brightness range [%d, %d], current %d", min, max, current)
	return &Control{
		dev: dev,
		brightness: Range{
			Min:     min,
			Current: current,
			Max:     max,
		},
	}, nil
}

// Range returns the brightness range read at construction, with Current updated by SetBrightness
func (c *Control) Range() Range {
	return c.brightness
}

// SetBrightness rescales percent (clamped to [0, 100]) into the brightness range and applies it
func (c *Control) SetBrightness(percent int) error {
	value := c.brightness.Scale(percent)
	log.Infof("monitor: setting brightness to %d%% (raw %d)", ClampPercent(percent), value)
	if err := c.dev.SetBrightness(value); err != nil {
		return err
	}
	c.brightness.Current = value
	return nil
}

// SetInputSource switches the monitor input. The code is not validated against the advertised maximum
func (c *Control) SetInputSource(code uint32) error {
	log.Infof("monitor: setting input source to %d", code)
	return c.dev.SetVCP(VCPInputSource, code)
}

// InputSource returns the current input source and the maximum the monitor advertises in one query
func (c *Control) InputSource() (InputSource, error) {
	current, max, err := c.dev.GetVCP(VCPInputSource)
	if err != nil {
		return InputSource{}, err
	}
	return InputSource{
		Current: current,
		Max:     max,
	}, nil
}

// CurrentInputSource returns the current input source
func (c *Control) CurrentInputSource() (uint32, error) {
	src, err := c.InputSource()
	return src.Current, err
}

// MaxInputSource returns the maximum input source code advertised by the monitor
func (c *Control) MaxInputSource() (uint32, error) {
	src, err := c.InputSource()
	return src.Max, err
}

// Descriptions returns the OS description of each physical monitor behind the display
func (c *Control) Descriptions() []string {
	return c.dev.Descriptions()
}

// Close releases the physical monitor handles
func (c *Control) Close() error {
	return c.dev.Close()
}

package device

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Defines the values the dry run device starts with
const (
	DryDescription       = "Dry Run Monitor"
	DryBrightnessMin     = uint32(0)
	DryBrightnessMax     = uint32(100)
	DryBrightness        = uint32(50)
	DryInputSource       = uint32(0x0f) // DisplayPort-1
	DryInputSourceMax    = uint32(0x12) // HDMI-2
	dryInputSourceCode   = byte(0x60)
	dryBrightnessVCP     = byte(0x10)
	dryContrastVCP       = byte(0x12)
	dryDefaultVCPMaximum = uint32(100)
)

type vcpValue struct {
	current uint32
	max     uint32
}

type dryDevice struct {
	closed     bool
	brightness [3]uint32
	vcp        map[byte]vcpValue
}

var _ Device = &dryDevice{}

// NewDryDevice returns a Device without actual IOs. State is kept in memory for the lifetime of the device
func NewDryDevice(conf Config) Device {
	log.Infof("[dry run] device: pretending a monitor is at (%d, %d)", conf.X, conf.Y)
	return &dryDevice{
		brightness: [3]uint32{DryBrightnessMin, DryBrightness, DryBrightnessMax},
		vcp: map[byte]vcpValue{
			dryInputSourceCode: {current: DryInputSource, max: DryInputSourceMax},
			dryBrightnessVCP:   {current: DryBrightness, max: DryBrightnessMax},
			dryContrastVCP:     {current: 75, max: dryDefaultVCPMaximum},
		},
	}
}

func (d *dryDevice) Descriptions() []string {
	return []string{DryDescription}
}

func (d *dryDevice) GetBrightness() (min, current, max uint32, err error) {
	if d.closed {
		return 0, 0, 0, ErrClosed
	}
	return d.brightness[0], d.brightness[1], d.brightness[2], nil
}

func (d *dryDevice) SetBrightness(value uint32) error {
	if d.closed {
		return ErrClosed
	}
	if value < d.brightness[0] || value > d.brightness[2] {
		return errors.Errorf("brightness %d is outside of [%d, %d]", value, d.brightness[0], d.brightness[2])
	}
	log.Infof("[dry run] device: set brightness to %d", value)
	d.brightness[1] = value
	return nil
}

func (d *dryDevice) GetVCP(code byte) (current, max uint32, err error) {
	if d.closed {
		return 0, 0, ErrClosed
	}
	v, ok := d.vcp[code]
	if !ok {
		return 0, 0, errors.Wrapf(ErrUnsupportedVCP, "vcp 0x%02x", code)
	}
	return v.current, v.max, nil
}

func (d *dryDevice) SetVCP(code byte, value uint32) error {
	if d.closed {
		return ErrClosed
	}
	v, ok := d.vcp[code]
	if !ok {
		return errors.Wrapf(ErrUnsupportedVCP, "vcp 0x%02x", code)
	}
	log.Infof("[dry run] device: set vcp feature 0x%02x to %d", code, value)
	v.current = value
	d.vcp[code] = v
	return nil
}

func (d *dryDevice) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	log.Info("[dry run] device: releasing physical monitor")
	return nil
}

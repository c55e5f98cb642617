package controller

import (
	"io"

	"github.com/zllovesuki/MonitorController/config"
	"github.com/zllovesuki/MonitorController/system/device"
	"github.com/zllovesuki/MonitorController/system/monitor"
	"github.com/zllovesuki/MonitorController/system/monitorid"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// IdentityLister returns the identities of the monitors attached to the system
type IdentityLister func() ([]monitorid.Identity, error)

// RunConfig contains the start up configuration for the command tree
type RunConfig struct {
	Version string
	In      io.Reader
	Out     io.Writer
	// OpenMonitor resolves the monitor. OpenMonitor is used when nil
	OpenMonitor func(conf device.Config) (Monitor, error)
	// Identities lists WMI identities for the list command. monitorid.Query is used when nil
	Identities IdentityLister
}

// OpenMonitor resolves the physical monitor near the configured point and reads its brightness range
func OpenMonitor(conf device.Config) (Monitor, error) {
	dev, err := device.NewDevice(conf)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot resolve monitor at (%d, %d)", conf.X, conf.Y)
	}
	return newMonitor(dev)
}

// newMonitor takes ownership of dev, releasing it when the brightness range cannot be read
func newMonitor(dev device.Device) (Monitor, error) {
	ctrl, err := monitor.NewControl(dev)
	if err != nil {
		if closeErr := dev.Close(); closeErr != nil {
			log.Warnf("controller: cannot release monitor: %s", closeErr)
		}
		return nil, err
	}
	return ctrl, nil
}

type app struct {
	RunConfig
	conf config.Config
}

// NewRootCommand builds the monitorctl command tree
func NewRootCommand(rc RunConfig) (*cobra.Command, error) {
	if rc.OpenMonitor == nil {
		rc.OpenMonitor = OpenMonitor
	}
	if rc.Identities == nil {
		rc.Identities = monitorid.Query
	}
	a := &app{RunConfig: rc}

	root := &cobra.Command{
		Use:   "monitorctl [source_code]",
		Short: "Switch the input source of an external monitor over DDC/CI",
		Long: "monitorctl switches the input source (VCP 0x60) of the monitor nearest to a screen point.\n" +
			"With a source code it applies that code and exits, without one it prompts for codes until a blank line.",
		Version:       rc.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withController(func(c *Controller) error {
				if len(args) > 0 {
					return c.RunDirect(args[0])
				}
				return c.RunInteractive()
			})
		},
	}
	config.Flags(root.PersistentFlags())

	v, err := config.New(root.PersistentFlags())
	if err != nil {
		return nil, err
	}
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		a.conf = config.Load(v)
		setupLogger(a.conf.Debug)
		log.Debugf("controller: resolved config %+v", a.conf)
	}

	root.AddCommand(&cobra.Command{
		Use:   "brightness <percent>",
		Short: "Set the monitor brightness in percent (clamped to 0-100)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withController(func(c *Controller) error {
				return c.RunBrightness(args[0])
			})
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the physical monitors at the probe point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withController(func(c *Controller) error {
				return c.RunList(a.Identities)
			})
		},
	})

	root.SetIn(rc.In)
	root.SetOut(rc.Out)

	return root, nil
}

// withController acquires the monitor, runs fn, and releases the monitor on every path
func (a *app) withController(fn func(c *Controller) error) (err error) {
	m, err := a.OpenMonitor(device.Config{
		DryRun: a.conf.DryRun,
		X:      a.conf.X,
		Y:      a.conf.Y,
	})
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := m.Close(); closeErr != nil {
			log.Warnf("controller: cannot release monitor: %s", closeErr)
		}
	}()

	c, err := New(Config{
		Monitor: m,
		In:      a.In,
		Out:     a.Out,
	})
	if err != nil {
		return err
	}
	return fn(c)
}

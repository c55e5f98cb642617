package controller

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zllovesuki/MonitorController/system/monitor"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const promptFormat = "Input source port number [0-%d] : "

// Monitor is the set of monitor operations the controller needs
type Monitor interface {
	InputSource() (monitor.InputSource, error)
	SetInputSource(code uint32) error
	SetBrightness(percent int) error
	Range() monitor.Range
	Descriptions() []string
	Close() error
}

var _ Monitor = &monitor.Control{}

// Config contains the console and the monitor the Controller talks to
type Config struct {
	Monitor Monitor
	In      io.Reader
	Out     io.Writer
}

// Controller drives a Monitor from the console
type Controller struct {
	Config
	scanner *bufio.Scanner
}

// New returns a Controller. The caller keeps ownership of the Monitor
func New(conf Config) (*Controller, error) {
	if conf.Monitor == nil {
		return nil, errors.New("nil Monitor is invalid")
	}
	if conf.In == nil {
		return nil, errors.New("nil In is invalid")
	}
	if conf.Out == nil {
		return nil, errors.New("nil Out is invalid")
	}
	return &Controller{
		Config:  conf,
		scanner: bufio.NewScanner(conf.In),
	}, nil
}

// RunDirect applies a single input source given on the command line.
// A malformed code is reported and nothing is sent to the monitor
func (c *Controller) RunDirect(arg string) error {
	code, err := parseUint32(arg)
	if err != nil {
		fmt.Fprintln(c.Out, err)
		return nil
	}
	if err := c.Monitor.SetInputSource(code); err != nil {
		return errors.Wrapf(err, "cannot set input source to %d", code)
	}
	return nil
}

// RunInteractive prints the current input source, then prompts for codes until a blank line or EOF
func (c *Controller) RunInteractive() error {
	src, err := c.Monitor.InputSource()
	if err != nil {
		return errors.Wrap(err, "cannot get input source")
	}
	fmt.Fprintln(c.Out, src.Current)

	for {
		fmt.Fprintf(c.Out, promptFormat, src.Max)
		if !c.scanner.Scan() {
			break
		}
		line := strings.TrimSpace(c.scanner.Text())
		if line == "" {
			break
		}

		code, err := parseUint32(line)
		if err != nil {
			fmt.Fprint(c.Out, "\n\n")
			fmt.Fprintln(c.Out, err)
			fmt.Fprint(c.Out, "\n\n")
			continue
		}
		if err := c.Monitor.SetInputSource(code); err != nil {
			log.Warnf("controller: cannot set input source to %d: %s", code, err)
			fmt.Fprintf(c.Out, "cannot set input source to %d: %s\n", code, err)
		}
	}

	log.Debug("controller: exiting interactive loop")
	return c.scanner.Err()
}

// RunBrightness sets the brightness from a percentage given on the command line.
// A malformed percentage is reported and nothing is sent to the monitor
func (c *Controller) RunBrightness(arg string) error {
	percent, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		fmt.Fprintln(c.Out, errors.Wrapf(err, "invalid brightness %q", arg))
		return nil
	}
	if err := c.Monitor.SetBrightness(percent); err != nil {
		return errors.Wrapf(err, "cannot set brightness to %d%%", monitor.ClampPercent(percent))
	}
	return nil
}

// RunList prints the physical monitors behind the resolved display, the brightness of the
// controlled one, and the WMI identities
func (c *Controller) RunList(identities IdentityLister) error {
	for i, desc := range c.Monitor.Descriptions() {
		fmt.Fprintf(c.Out, "%d: %s\n", i, desc)
	}
	r := c.Monitor.Range()
	fmt.Fprintf(c.Out, "brightness: %d%% (%d in [%d, %d])\n", r.Percent(), r.Current, r.Min, r.Max)
	if identities == nil {
		return nil
	}
	ids, err := identities()
	if err != nil {
		log.Warnf("controller: cannot list monitor identities: %s", err)
		return nil
	}
	for _, id := range ids {
		fmt.Fprintf(c.Out, "  %s\n", id)
	}
	return nil
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid input source %q", s)
	}
	return uint32(v), nil
}

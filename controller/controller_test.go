package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/zllovesuki/MonitorController/system/monitor"
	"github.com/zllovesuki/MonitorController/system/monitorid"

	"github.com/stretchr/testify/require"
)

type mockMonitor struct {
	source    monitor.InputSource
	rng       monitor.Range
	getErr    error
	setErr    error
	setCalls  []uint32
	getCalls  int
	percents  []int
	closeCall int
}

func (m *mockMonitor) InputSource() (monitor.InputSource, error) {
	m.getCalls++
	return m.source, m.getErr
}
func (m *mockMonitor) SetInputSource(code uint32) error {
	m.setCalls = append(m.setCalls, code)
	return m.setErr
}
func (m *mockMonitor) SetBrightness(percent int) error {
	m.percents = append(m.percents, percent)
	return m.setErr
}
func (m *mockMonitor) Range() monitor.Range   { return m.rng }
func (m *mockMonitor) Descriptions() []string { return []string{"Generic PnP Monitor"} }
func (m *mockMonitor) Close() error           { m.closeCall++; return nil }

var _ Monitor = &mockMonitor{}

func newTestController(t *testing.T, m Monitor, input string) (*Controller, *bytes.Buffer) {
	out := &bytes.Buffer{}
	c, err := New(Config{
		Monitor: m,
		In:      strings.NewReader(input),
		Out:     out,
	})
	require.NoError(t, err)
	return c, out
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(Config{In: strings.NewReader(""), Out: &bytes.Buffer{}})
	require.Error(t, err)
	_, err = New(Config{Monitor: &mockMonitor{}, Out: &bytes.Buffer{}})
	require.Error(t, err)
	_, err = New(Config{Monitor: &mockMonitor{}, In: strings.NewReader("")})
	require.Error(t, err)
}

func TestDirectMode(t *testing.T) {
	m := &mockMonitor{}
	c, out := newTestController(t, m, "")

	require.NoError(t, c.RunDirect("3"))
	require.Equal(t, []uint32{3}, m.setCalls)
	require.Zero(t, m.getCalls)
	require.NotContains(t, out.String(), "Input source port number")
	require.Empty(t, out.String())
}

func TestDirectModeParseFailure(t *testing.T) {
	for _, arg := range []string{"abc", "", "-1", "4294967296", "1.5"} {
		m := &mockMonitor{}
		c, out := newTestController(t, m, "")

		require.NoError(t, c.RunDirect(arg), arg)
		require.Empty(t, m.setCalls, arg)
		require.Contains(t, out.String(), "invalid input source", arg)
	}
}

func TestDirectModeSetFailure(t *testing.T) {
	expected := errors.New("ddc/ci timeout")
	m := &mockMonitor{setErr: expected}
	c, _ := newTestController(t, m, "")

	require.ErrorIs(t, c.RunDirect("3"), expected)
}

func TestInteractiveMode(t *testing.T) {
	m := &mockMonitor{source: monitor.InputSource{Current: 15, Max: 18}}
	c, out := newTestController(t, m, "2\n\n")

	require.NoError(t, c.RunInteractive())
	require.Equal(t, []uint32{2}, m.setCalls)
	require.Equal(t, 1, m.getCalls)

	prompt := "Input source port number [0-18] : "
	require.Equal(t, "15\n"+prompt+prompt, out.String())
}

func TestInteractiveModeParseFailureReprompts(t *testing.T) {
	m := &mockMonitor{source: monitor.InputSource{Current: 15, Max: 18}}
	c, out := newTestController(t, m, "abc\n1\n\n")

	require.NoError(t, c.RunInteractive())
	require.Equal(t, []uint32{1}, m.setCalls)

	output := out.String()
	require.Equal(t, 1, strings.Count(output, "invalid input source"))
	require.Equal(t, 3, strings.Count(output, "Input source port number [0-18] : "))
	require.True(t, strings.HasPrefix(output, "15\n"))
}

func TestInteractiveModeBlankInputStops(t *testing.T) {
	for _, input := range []string{"", "\n", "   \n1\n", "\t\r\n"} {
		m := &mockMonitor{source: monitor.InputSource{Current: 1, Max: 4}}
		c, out := newTestController(t, m, input)

		require.NoError(t, c.RunInteractive())
		require.Empty(t, m.setCalls, "input %q", input)
		require.Equal(t, 1, strings.Count(out.String(), "Input source port number [0-4] : "))
	}
}

func TestInteractiveModeSetFailureContinues(t *testing.T) {
	m := &mockMonitor{setErr: errors.New("ddc/ci timeout"), source: monitor.InputSource{Max: 4}}
	c, out := newTestController(t, m, "1\n2\n\n")

	require.NoError(t, c.RunInteractive())
	require.Equal(t, []uint32{1, 2}, m.setCalls)
	require.Equal(t, 2, strings.Count(out.String(), "ddc/ci timeout"))
}

func TestInteractiveModeGetFailure(t *testing.T) {
	expected := errors.New("no reply")
	m := &mockMonitor{getErr: expected}
	c, out := newTestController(t, m, "1\n")

	require.ErrorIs(t, c.RunInteractive(), expected)
	require.Empty(t, m.setCalls)
	require.Empty(t, out.String())
}

func TestBrightness(t *testing.T) {
	m := &mockMonitor{}
	c, out := newTestController(t, m, "")

	require.NoError(t, c.RunBrightness("40"))
	require.NoError(t, c.RunBrightness("150"))
	require.NoError(t, c.RunBrightness("bright"))
	require.Equal(t, []int{40, 150}, m.percents)
	require.Contains(t, out.String(), "invalid brightness")
}

func TestList(t *testing.T) {
	m := &mockMonitor{rng: monitor.Range{Min: 10, Current: 60, Max: 110}}
	c, out := newTestController(t, m, "")

	lister := func() ([]monitorid.Identity, error) {
		return []monitorid.Identity{{FriendlyName: "DELL U2720Q", InstanceName: "DISPLAY\\DELA0F4", Active: true}}, nil
	}
	require.NoError(t, c.RunList(lister))
	require.Equal(t, "0: Generic PnP Monitor\nbrightness: 50% (60 in [10, 110])\n  DELL U2720Q (active) [DISPLAY\\DELA0F4]\n", out.String())

	out.Reset()
	failing := func() ([]monitorid.Identity, error) { return nil, monitorid.ErrUnsupported }
	require.NoError(t, c.RunList(failing))
	require.Equal(t, "0: Generic PnP Monitor\nbrightness: 50% (60 in [10, 110])\n", out.String())
}

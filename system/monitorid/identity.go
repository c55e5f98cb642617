package monitorid

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnsupported is returned where WMI is not available
var ErrUnsupported = errors.New("wmi monitor identity is only available on Windows")

// Identity is the EDID derived identity of a connected monitor as reported by WmiMonitorID
type Identity struct {
	InstanceName string
	Manufacturer string
	ProductCode  string
	Serial       string
	FriendlyName string
	Active       bool
}

func (i Identity) String() string {
	name := i.FriendlyName
	if name == "" {
		name = strings.TrimSpace(i.Manufacturer + " " + i.ProductCode)
	}
	state := "inactive"
	if i.Active {
		state = "active"
	}
	if i.Serial == "" {
		return fmt.Sprintf("%s (%s) [%s]", name, state, i.InstanceName)
	}
	return fmt.Sprintf("%s, serial %s (%s) [%s]", name, i.Serial, state, i.InstanceName)
}

// decodeString converts the zero padded uint16 arrays of WmiMonitorID into a string
func decodeString(v []uint16) string {
	var sb strings.Builder
	for _, c := range v {
		if c == 0 {
			break
		}
		sb.WriteRune(rune(c))
	}
	return strings.TrimSpace(sb.String())
}

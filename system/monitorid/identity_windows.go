//go:build windows

package monitorid

import (
	"github.com/bi-zone/wmi"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	wmiNamespace = `root\wmi`
	wmiQuery     = `SELECT Active, InstanceName, ManufacturerName, ProductCodeID, SerialNumberID, UserFriendlyName FROM WmiMonitorID`
)

type wmiMonitorID struct {
	Active           bool
	InstanceName     string
	ManufacturerName []uint16
	ProductCodeID    []uint16
	SerialNumberID   []uint16
	UserFriendlyName []uint16
}

// Query returns the identity of every monitor known to WMI
func Query() ([]Identity, error) {
	var dst []wmiMonitorID
	if err := wmi.QueryNamespace(wmiQuery, &dst, wmiNamespace); err != nil {
		return nil, errors.Wrap(err, "cannot query WmiMonitorID")
	}
	log.Debugf("monitorid: %d monitor(s) reported by WMI", len(dst))

	ids := make([]Identity, 0, len(dst))
	for _, m := range dst {
		ids = append(ids, Identity{
			InstanceName: m.InstanceName,
			Manufacturer: decodeString(m.ManufacturerName),
			ProductCode:  decodeString(m.ProductCodeID),
			Serial:       decodeString(m.SerialNumberID),
			FriendlyName: decodeString(m.UserFriendlyName),
			Active:       m.Active,
		})
	}
	return ids, nil
}

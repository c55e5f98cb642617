//go:build windows

package config

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/windows/registry"
)

const (
	registryKey  = registry.CURRENT_USER
	registryPath = `SOFTWARE\MonitorController`
)

// registryValues maps a DWORD value under registryPath to a configuration key
var registryValues = map[string]string{
	"ProbeX": KeyX,
	"ProbeY": KeyY,
}

func registryDefaults() (map[string]interface{}, error) {
	return readRegistryDefaults(registryKey, registryPath)
}

func readRegistryDefaults(root registry.Key, path string) (map[string]interface{}, error) {
	defaults := make(map[string]interface{})

	key, err := registry.OpenKey(root, path, registry.QUERY_VALUE)
	if err == registry.ErrNotExist {
		// nothing to load
		return defaults, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open registry key %s", path)
	}
	defer key.Close()

	for name, configKey := range registryValues {
		v, _, err := key.GetIntegerValue(name)
		if err == registry.ErrNotExist {
			continue
		}
		if err != nil {
			log.Warnf("config: error loading \"%s\" from the Registry: %s", name, err)
			continue
		}
		// DWORDs are unsigned, coordinates left of or above the primary display are negative
		defaults[configKey] = int32(uint32(v))
		log.Debugf("config: loaded \"%s\" = %d from the Registry", name, int32(uint32(v)))
	}

	return defaults, nil
}

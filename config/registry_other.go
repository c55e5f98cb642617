//go:build !windows

package config

func registryDefaults() (map[string]interface{}, error) {
	return nil, nil
}

package config

import (
	"os"

	"github.com/pelletier/go-toml"
)

// LoadResourcesConfig opens and decodes the provided toml file into a ResourcesConfig
func LoadResourcesConfig(filePath string) (*ResourcesConfig, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	resourcesConfig := &ResourcesConfig{}
	err = toml.NewDecoder(f).Decode(resourcesConfig)
	if err != nil {
		return nil, err
	}

	return resourcesConfig, nil
}

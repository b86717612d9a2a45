package config

import (
	"os"

	"sigs.k8s.io/yaml"
)

// Load reads a configuration file from path. Fields absent from the file
// keep their default values; unknown fields are an error.
func Load(path string) (*Configuration, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	out := Default()
	if err := yaml.UnmarshalStrict(contents, out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

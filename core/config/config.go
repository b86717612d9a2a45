package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// Configuration holds the shell's tunable limits and the command search
// path. The defaults reproduce the reference behavior: a 255 byte line, 12
// argv slots with one reserved for the exec terminator, and a fixed four
// directory search list that never consults $PATH.
type Configuration struct {
	Prompt       string   `json:"prompt" validate:"required"`
	SearchPath   []string `json:"search_path" validate:"required,min=1"`
	MaxLineBytes int      `json:"max_line_bytes" validate:"gte=1"`
	MaxTokens    int      `json:"max_tokens" validate:"gte=2"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the embedded default configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		// The default is compiled in, failure to parse it is a build bug.
		panic(err)
	}
	return &out
}

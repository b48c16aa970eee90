package generator

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultConfigFile = ".config-generator.toml"

const (
	DefaultTemplatesDir = "/config-generator/templates"
	DefaultOutputDir    = "/generated-configs"
	DefaultSuffix       = ".tmpl"

	DefaultFileMode os.FileMode = 0644
	DefaultDirMode  os.FileMode = 0755
)

// DefaultRequiredVariables are the host/port pairs of the downstream services
// plus the container hostname.
var DefaultRequiredVariables = []string{
	"SAGITTARIUS_RAILS_HOST",
	"SAGITTARIUS_RAILS_PORT",
	"SAGITTARIUS_GRPC_HOST",
	"SAGITTARIUS_GRPC_PORT",
	"SCULPTOR_HOST",
	"SCULPTOR_PORT",
	"HOSTNAME",
}

type Config struct {
	TemplatesDir      string   `toml:"templates_dir" yaml:"templates_dir"`
	OutputDir         string   `toml:"output_dir" yaml:"output_dir"`
	Suffix            string   `toml:"suffix" yaml:"suffix"`
	RequiredVariables []string `toml:"required_variables" yaml:"required_variables"`

	// TrimControlLines drops lines holding nothing but a control action.
	TrimControlLines bool `toml:"trim_control_lines" yaml:"trim_control_lines"`

	FileMode os.FileMode `toml:"file_mode" yaml:"file_mode"`
	DirMode  os.FileMode `toml:"dir_mode" yaml:"dir_mode"`
}

func DefaultConfig() Config {
	required := make([]string, len(DefaultRequiredVariables))
	copy(required, DefaultRequiredVariables)

	return Config{
		TemplatesDir:      DefaultTemplatesDir,
		OutputDir:         DefaultOutputDir,
		Suffix:            DefaultSuffix,
		RequiredVariables: required,
		TrimControlLines:  true,
		FileMode:          DefaultFileMode,
		DirMode:           DefaultDirMode,
	}
}

// ParseConfig reads path on top of DefaultConfig. Keys missing from the file
// keep their defaults. When mustExist is false a missing file yields the
// defaults.
func ParseConfig(path string, mustExist bool) (Config, error) {
	config := DefaultConfig()

	content, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) && !mustExist {
		return config, nil
	}
	if err != nil {
		return config, errors.Wrapf(err, "cannot read config %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &config); err != nil {
			return config, errors.Wrapf(err, "cannot parse config %s", path)
		}
	default:
		if _, err := toml.Decode(string(content), &config); err != nil {
			return config, errors.Wrapf(err, "cannot parse config %s", path)
		}
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	if c.TemplatesDir == "" {
		return errors.New("templates directory is not set")
	}
	if c.OutputDir == "" {
		return errors.New("output directory is not set")
	}
	if c.Suffix == "" {
		return errors.New("template suffix is not set")
	}
	for _, name := range c.RequiredVariables {
		if name == "" {
			return errors.New("required variable names cannot be empty")
		}
	}

	return nil
}

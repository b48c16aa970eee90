package generator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/roblaszczak/config-generator/pkg/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := generator.DefaultConfig()

	assert.Equal(t, "/config-generator/templates", config.TemplatesDir)
	assert.Equal(t, "/generated-configs", config.OutputDir)
	assert.Equal(t, ".tmpl", config.Suffix)
	assert.True(t, config.TrimControlLines)
	assert.Equal(t, os.FileMode(0644), config.FileMode)
	assert.Equal(t, os.FileMode(0755), config.DirMode)
	assert.Len(t, config.RequiredVariables, 7)
	assert.NoError(t, config.Validate())

	// defaults are not shared between configs
	config.RequiredVariables[0] = "CHANGED"
	assert.Equal(t, "SAGITTARIUS_RAILS_HOST", generator.DefaultConfig().RequiredVariables[0])
}

func TestParseConfig_toml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
templates_dir = "/etc/templates"
output_dir = "/etc/generated"
required_variables = ["HOSTNAME"]
trim_control_lines = false
file_mode = 0o600
`)

	config, err := generator.ParseConfig(path, true)
	require.NoError(t, err)

	assert.Equal(t, "/etc/templates", config.TemplatesDir)
	assert.Equal(t, "/etc/generated", config.OutputDir)
	assert.Equal(t, ".tmpl", config.Suffix)
	assert.Equal(t, []string{"HOSTNAME"}, config.RequiredVariables)
	assert.False(t, config.TrimControlLines)
	assert.Equal(t, os.FileMode(0600), config.FileMode)
	assert.Equal(t, os.FileMode(0755), config.DirMode)
}

func TestParseConfig_yaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, `
templates_dir: /etc/templates
suffix: .tpl
required_variables:
  - SCULPTOR_HOST
  - SCULPTOR_PORT
`)

	config, err := generator.ParseConfig(path, true)
	require.NoError(t, err)

	assert.Equal(t, "/etc/templates", config.TemplatesDir)
	assert.Equal(t, "/generated-configs", config.OutputDir)
	assert.Equal(t, ".tpl", config.Suffix)
	assert.Equal(t, []string{"SCULPTOR_HOST", "SCULPTOR_PORT"}, config.RequiredVariables)
	assert.True(t, config.TrimControlLines)
}

func TestParseConfig_emptyRequiredList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "required_variables = []\n")

	config, err := generator.ParseConfig(path, true)
	require.NoError(t, err)
	assert.Empty(t, config.RequiredVariables)
}

func TestParseConfig_missingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	config, err := generator.ParseConfig(path, false)
	require.NoError(t, err)
	assert.Equal(t, generator.DefaultConfig(), config)

	_, err = generator.ParseConfig(path, true)
	assert.Error(t, err)
}

func TestParseConfig_invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"broken toml", "config.toml", "templates_dir = "},
		{"broken yaml", "config.yml", "templates_dir: [unterminated"},
		{"empty suffix", "config.toml", `suffix = ""`},
		{"empty output dir", "config.yaml", `output_dir: ""`},
		{"empty required name", "config.toml", `required_variables = ["HOSTNAME", ""]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			writeFile(t, path, tt.content)

			_, err := generator.ParseConfig(path, true)
			assert.Error(t, err)
		})
	}
}

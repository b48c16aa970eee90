package generator_test

import (
	"testing"

	"github.com/roblaszczak/config-generator/pkg/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	required := []string{"SCULPTOR_HOST", "SCULPTOR_PORT", "HOSTNAME"}

	tests := []struct {
		name        string
		vars        map[string]string
		wantMissing []string
	}{
		{
			name: "all present",
			vars: map[string]string{"SCULPTOR_HOST": "s", "SCULPTOR_PORT": "1", "HOSTNAME": "h"},
		},
		{
			name: "empty values are present",
			vars: map[string]string{"SCULPTOR_HOST": "", "SCULPTOR_PORT": "", "HOSTNAME": ""},
		},
		{
			name:        "one missing",
			vars:        map[string]string{"SCULPTOR_HOST": "s", "HOSTNAME": "h"},
			wantMissing: []string{"SCULPTOR_PORT"},
		},
		{
			name:        "all missing keeps declared order",
			vars:        map[string]string{"OTHER": "x"},
			wantMissing: []string{"SCULPTOR_HOST", "SCULPTOR_PORT", "HOSTNAME"},
		},
		{
			name:        "lookup is case sensitive",
			vars:        map[string]string{"sculptor_host": "s", "SCULPTOR_PORT": "1", "HOSTNAME": "h"},
			wantMissing: []string{"SCULPTOR_HOST"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := generator.Validate(generator.NewEnvironment(tt.vars), required)

			if tt.wantMissing == nil {
				assert.NoError(t, err)
				return
			}

			missingErr, ok := err.(*generator.MissingVariablesError)
			require.True(t, ok, "unexpected error %v", err)
			assert.Equal(t, tt.wantMissing, missingErr.Names)
		})
	}
}

func TestMissingVariablesError_listsEveryName(t *testing.T) {
	err := generator.Validate(generator.NewEnvironment(nil), []string{"SCULPTOR_HOST", "HOSTNAME"})
	require.Error(t, err)

	assert.Equal(t, "Missing required environment variables: SCULPTOR_HOST, HOSTNAME", err.Error())
}

func TestValidate_noRequiredVariables(t *testing.T) {
	assert.NoError(t, generator.Validate(generator.NewEnvironment(nil), nil))
}

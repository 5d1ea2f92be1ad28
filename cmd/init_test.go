package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/veilang/veil/internal"
)

func TestInitConfigurationFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".veil.yaml")
	require.NoError(t, initConfigurationFile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg internal.Config
	require.NoError(t, yaml.Unmarshal(content, &cfg))
	assert.Equal(t, internal.Config{}, cfg)
}

package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "veil.yaml")
	content := `
boogie-exe: /opt/boogie/boogie
z3-exe: /opt/z3/bin/z3
prover-log: /tmp/prover.log
boogie-opts: /errorLimit:5 /timeLimit:30
print-file: out.vil
model: variables
no-alloc-encoding: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/boogie/boogie", cfg.BoogieExe)
	assert.Equal(t, "/opt/z3/bin/z3", cfg.Z3Exe)
	assert.Equal(t, "/tmp/prover.log", cfg.ProverLog)
	assert.Equal(t, "/errorLimit:5 /timeLimit:30", cfg.BoogieOpts)
	assert.Equal(t, "out.vil", cfg.PrintFile)
	assert.Equal(t, "variables", cfg.Model)
	assert.True(t, cfg.NoAllocEncoding)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestResolveModelMode(t *testing.T) {
	t.Parallel()

	t.Run("absent config", func(t *testing.T) {
		mode := resolveModelMode(nil)
		assert.False(t, mode.requested)
		assert.False(t, mode.rename)
	})

	t.Run("absent option", func(t *testing.T) {
		mode := resolveModelMode(&Config{})
		assert.False(t, mode.requested)
		assert.False(t, mode.rename)
	})

	t.Run("native", func(t *testing.T) {
		mode := resolveModelMode(&Config{Model: "native"})
		assert.True(t, mode.requested)
		assert.False(t, mode.rename)
		assert.Nil(t, mode.scope)
	})

	t.Run("variables", func(t *testing.T) {
		mode := resolveModelMode(&Config{Model: "variables"})
		assert.True(t, mode.requested)
		assert.True(t, mode.rename)
		assert.Nil(t, mode.scope)
	})

	t.Run("comma list", func(t *testing.T) {
		mode := resolveModelMode(&Config{Model: "x, y ,z"})
		assert.True(t, mode.requested)
		assert.True(t, mode.rename)
		assert.Equal(t, []string{"x", "y", "z"}, mode.scope)
	})
}

func TestAllocEncoding(t *testing.T) {
	t.Parallel()

	var cfg *Config
	assert.True(t, cfg.allocEncoding())
	assert.True(t, (&Config{}).allocEncoding())
	assert.False(t, (&Config{NoAllocEncoding: true}).allocEncoding())
}

func TestBackendOptions(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		assert.Empty(t, backendOptions(nil, modelMode{}))
	})

	t.Run("model only", func(t *testing.T) {
		opts := backendOptions(nil, modelMode{requested: true})
		assert.Equal(t, []string{"/mv:-"}, opts)
	})

	t.Run("full config", func(t *testing.T) {
		cfg := &Config{
			ProverLog:  "/tmp/prover.log",
			BoogieOpts: "/errorLimit:5  /timeLimit:30",
		}
		opts := backendOptions(cfg, modelMode{requested: true})
		assert.Equal(t,
			[]string{"/proverLog:/tmp/prover.log", "/errorLimit:5", "/timeLimit:30", "/mv:-"},
			opts)
	})
}

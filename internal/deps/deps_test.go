package deps

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFakeZ3 creates an executable script that prints the given banner.
func writeFakeZ3(t *testing.T, banner string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixture")
	}
	path := filepath.Join(t.TempDir(), "z3")
	script := "#!/bin/sh\necho \"" + banner + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestResolve_ConfigOverrideWins(t *testing.T) {
	set := Resolve("/opt/boogie/boogie", "/opt/z3/bin/z3")
	assert.Equal(t, "/opt/boogie/boogie", set.Boogie.Location())
	assert.Equal(t, "/opt/z3/bin/z3", set.Z3.Location())
}

func TestResolve_EnvironmentDefault(t *testing.T) {
	t.Setenv("BOOGIE_EXE", "custom-boogie")
	t.Setenv("Z3_EXE", "custom-z3")

	set := Resolve("", "")
	assert.True(t, filepath.IsAbs(set.Boogie.Location()))
	assert.True(t, filepath.IsAbs(set.Z3.Location()))
	assert.Equal(t, "custom-boogie", filepath.Base(set.Boogie.Location()))
	assert.Equal(t, "custom-z3", filepath.Base(set.Z3.Location()))
}

func TestVersion_ProbeSuccess(t *testing.T) {
	z3 := writeFakeZ3(t, "Z3 version 4.13.0 - 64 bit")

	set := Resolve("", z3)
	assert.Equal(t, "4.13.0 - 64 bit", set.Z3.Version())
	// cached after the first probe
	assert.Equal(t, "4.13.0 - 64 bit", set.Z3.Version())
}

func TestVersion_ProbeUnexpectedBanner(t *testing.T) {
	z3 := writeFakeZ3(t, "some other tool 1.0")

	set := Resolve("", z3)
	assert.Equal(t, UnknownVersion, set.Z3.Version())
}

func TestVersion_ProbeMissingExecutable(t *testing.T) {
	set := Resolve("", filepath.Join(t.TempDir(), "no-such-z3"))
	assert.Equal(t, UnknownVersion, set.Z3.Version())
}

func TestVersion_CheckerHasNoProbe(t *testing.T) {
	set := Resolve("/opt/boogie/boogie", "")
	assert.Equal(t, UnknownVersion, set.Boogie.Version())
}

func TestSetVersion(t *testing.T) {
	set := Resolve("", filepath.Join(t.TempDir(), "no-such-z3"))
	set.Z3.SetVersion("4.13.0")
	assert.Equal(t, "4.13.0", set.Z3.Version())
}

func TestDescribe(t *testing.T) {
	set := Resolve("/opt/boogie/boogie", "")
	assert.Equal(t,
		"Boogie unknown, located at /opt/boogie/boogie.",
		set.Boogie.Describe())
}

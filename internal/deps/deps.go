// Package deps locates the external executables the driver shells out to
// and probes their versions.
package deps

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	envBoogie = "BOOGIE_EXE"
	envZ3     = "Z3_EXE"

	z3VersionPrefix = "Z3 version "

	// UnknownVersion is reported when an executable's version cannot be
	// determined. A failed probe never fails verification.
	UnknownVersion = "unknown"
)

// Dependency is one external executable with a lazily probed version.
type Dependency struct {
	Name    string
	path    string
	version string
	probed  bool
	probe   func(path string) string
}

// Location returns the resolved executable path. The path is not validated
// here; a bad location surfaces when the executable is invoked.
func (d *Dependency) Location() string {
	return d.path
}

// Version probes the executable on first use and caches the answer.
func (d *Dependency) Version() string {
	if !d.probed {
		d.probed = true
		if d.probe != nil {
			d.version = d.probe(d.path)
		} else {
			d.version = UnknownVersion
		}
	}
	return d.version
}

// SetVersion records a version reported by the executable itself, e.g. in
// the banner of a regular invocation.
func (d *Dependency) SetVersion(version string) {
	d.version = version
	d.probed = true
}

// Describe renders a human-readable one-line summary.
func (d *Dependency) Describe() string {
	return fmt.Sprintf("%s %s, located at %s.", d.Name, d.Version(), d.Location())
}

// Set holds the two executables of the verification backend.
type Set struct {
	Boogie *Dependency
	Z3     *Dependency
}

// Resolve determines both executable locations. An explicit override wins;
// otherwise the environment-driven default is resolved to an absolute path.
func Resolve(boogieOverride, z3Override string) *Set {
	return &Set{
		Boogie: &Dependency{
			Name: "Boogie",
			path: resolveExe(boogieOverride, envBoogie, "boogie"),
		},
		Z3: &Dependency{
			Name:  "Z3",
			path:  resolveExe(z3Override, envZ3, "z3"),
			probe: probeZ3,
		},
	}
}

func resolveExe(override, env, fallback string) string {
	if override != "" {
		return override
	}
	name := os.Getenv(env)
	if name == "" {
		name = fallback
	}
	if p, err := exec.LookPath(name); err == nil {
		name = p
	}
	if abs, err := filepath.Abs(name); err == nil {
		return abs
	}
	return name
}

// probeZ3 asks the solver for its version. Best effort: any deviation from
// the expected single banner line yields the unknown sentinel.
func probeZ3(path string) string {
	out, err := exec.Command(path, "-version").Output()
	if err != nil {
		return UnknownVersion
	}
	line, _, _ := strings.Cut(string(out), "\n")
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), z3VersionPrefix)
	if !ok {
		return UnknownVersion
	}
	return rest
}

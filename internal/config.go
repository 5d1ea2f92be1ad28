package internal

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config carries the per-run options the pipeline reads. It is set once per
// session and never mutated. A nil *Config is valid and selects every
// default.
type Config struct {
	// BoogieExe overrides the checker executable location.
	BoogieExe string `yaml:"boogie-exe"`
	// Z3Exe overrides the solver executable location.
	Z3Exe string `yaml:"z3-exe"`
	// ProverLog makes the checker log its prover interaction to this path.
	ProverLog string `yaml:"prover-log"`
	// BoogieOpts holds free-form checker options, whitespace-separated.
	BoogieOpts string `yaml:"boogie-opts"`
	// PrintFile persists the translated program verbatim to this path.
	PrintFile string `yaml:"print-file"`
	// Model selects counterexample reporting: empty for none, "native" for
	// raw checker names, "variables" for full source-level renaming, or a
	// comma-separated list of source variables to rename.
	Model string `yaml:"model"`
	// NoAllocEncoding disables the object-allocation encoding.
	NoAllocEncoding bool `yaml:"no-alloc-encoding"`
}

// LoadConfig parses a yaml configuration file.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var config Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) allocEncoding() bool {
	return c == nil || !c.NoAllocEncoding
}

// modelMode captures what the config's model option asks for.
type modelMode struct {
	requested bool
	rename    bool
	scope     []string // nil means every variable
}

func resolveModelMode(cfg *Config) modelMode {
	if cfg == nil || cfg.Model == "" {
		return modelMode{}
	}
	switch cfg.Model {
	case "native":
		return modelMode{requested: true}
	case "variables":
		return modelMode{requested: true, rename: true}
	}

	var scope []string
	for _, name := range strings.Split(cfg.Model, ",") {
		if name = strings.TrimSpace(name); name != "" {
			scope = append(scope, name)
		}
	}
	return modelMode{requested: true, rename: true, scope: scope}
}

// CheckerOptions assembles the checker options a config asks for, for
// callers that run the checker on already-rendered programs.
func CheckerOptions(cfg *Config) []string {
	return backendOptions(cfg, resolveModelMode(cfg))
}

// backendOptions assembles the checker's command line options for one run.
func backendOptions(cfg *Config, mode modelMode) []string {
	var opts []string
	if cfg != nil && cfg.ProverLog != "" {
		opts = append(opts, "/proverLog:"+cfg.ProverLog)
	}
	if cfg != nil {
		opts = append(opts, strings.Fields(cfg.BoogieOpts)...)
	}
	if mode.requested {
		// stream the counterexample model so it can be parsed back
		opts = append(opts, "/mv:-")
	}
	return opts
}

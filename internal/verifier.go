package internal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veilang/veil/internal/backend"
	"github.com/veilang/veil/internal/deps"
	"github.com/veilang/veil/internal/model"
	"github.com/veilang/veil/internal/types"
	"github.com/veilang/veil/internal/vil"
)

// Verifier drives one verification campaign: it owns the module
// collection, the namespace counter, and the current program state of the
// session. A Verifier is reusable across sequential Verify calls but its
// fields are unsynchronized; concurrent callers need one Verifier each.
type Verifier struct {
	id     string
	cfg    *Config
	logger *zap.Logger

	namespaces Namespaces
	modules    *moduleSet
	translator Translator
	runner     backend.Runner
	deps       *deps.Set

	program    Program
	translated vil.Program
}

// NewVerifier assembles a session from an ordered module collection, of
// which exactly one must be the Translator. The modules' Start hooks run
// here, in collection order, after all of them exist. A nil runner selects
// the subprocess checker with the resolver's executable locations; a nil
// logger disables logging.
func NewVerifier(cfg *Config, modules []Module, runner backend.Runner, logger *zap.Logger) (*Verifier, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	v := &Verifier{
		id:      uuid.NewString(),
		cfg:     cfg,
		logger:  logger,
		modules: newModuleSet(modules),
	}

	for _, m := range modules {
		if tr, ok := m.(Translator); ok {
			if v.translator != nil {
				return nil, fmt.Errorf("module collection has more than one translator")
			}
			v.translator = tr
		}
	}
	if v.translator == nil {
		return nil, fmt.Errorf("module collection has no translator")
	}

	var boogieExe, z3Exe string
	if cfg != nil {
		boogieExe, z3Exe = cfg.BoogieExe, cfg.Z3Exe
	}
	v.deps = deps.Resolve(boogieExe, z3Exe)

	if runner == nil {
		runner = &backend.Exec{
			Checker: v.deps.Boogie.Location(),
			Solver:  v.deps.Z3.Location(),
		}
	}
	v.runner = runner

	v.modules.start()
	return v, nil
}

// Fresh allocates a session-unique namespace.
func (v *Verifier) Fresh(label string) Namespace {
	return v.namespaces.Fresh(label)
}

// Dependencies exposes the resolved external executables.
func (v *Verifier) Dependencies() *deps.Set {
	return v.deps
}

// Translated returns the most recently translated program, if any.
func (v *Verifier) Translated() vil.Program {
	return v.translated
}

// Close stops every module. Safe to call on a session whose modules were
// never started.
func (v *Verifier) Close() {
	v.modules.stop()
}

// Verify runs the full pipeline on one source program: reset the modules,
// translate, optionally persist the translated program, invoke the
// checker, and rename counterexample models when requested. A failing
// program is a normal Result, not an error.
func (v *Verifier) Verify(ctx context.Context, program Program) (*types.Result, error) {
	v.program = program
	v.modules.resetAll()

	v.translator.Configure(EncodingOptions{EncodeAllocations: v.cfg.allocEncoding()})
	mode := resolveModelMode(v.cfg)

	translated, names, err := v.translator.Translate(program, mode.scope)
	if err != nil {
		return nil, fmt.Errorf("error translating program: %w", err)
	}
	v.translated = translated

	opts := backendOptions(v.cfg, mode)

	if v.cfg != nil && v.cfg.PrintFile != "" {
		if err := writeProgram(translated, v.cfg.PrintFile); err != nil {
			return nil, fmt.Errorf("error persisting translated program: %w", err)
		}
	}

	v.logger.Debug("invoking checker",
		zap.String("session", v.id),
		zap.String("checker", v.deps.Boogie.Location()),
		zap.Strings("options", opts))

	version, result, err := v.runner.Verify(ctx, translated, opts)
	if err != nil {
		return nil, err
	}
	if version != "" {
		v.deps.Z3.SetVersion(version)
	}

	if mode.rename && !result.Success() {
		if err := model.RewriteErrors(result.Errors, names); err != nil {
			return nil, err
		}
	}

	v.logger.Debug("checker finished",
		zap.String("session", v.id),
		zap.Int("errors", len(result.Errors)))

	return result, nil
}

func writeProgram(program vil.Program, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.WriteString(f, program.Render())
	return err
}

package internal

import (
	"github.com/veilang/veil/internal/types"
	"github.com/veilang/veil/internal/vil"
)

// Program is a parsed source program. The driver never inspects it; it is
// handed to the translator as-is.
type Program any

// Module is the lifecycle shared by every translation module. A module is
// constructed once per session; Start runs once after every module of the
// session exists, so modules may hold references to their siblings. Reset
// restores the post-Start state and runs before every verification. Stop
// releases external resources when the session is discarded.
type Module interface {
	Start()
	Reset()
	Stop()
}

// EncodingOptions selects optional parts of the translation encoding.
type EncodingOptions struct {
	// EncodeAllocations controls whether object-allocation bookkeeping is
	// emitted. On unless the config disables it.
	EncodeAllocations bool
}

// Translator is the distinguished module that turns a source program into
// the intermediate language. The scope argument limits the naming map to
// the given source variables; nil means every variable.
type Translator interface {
	Module
	Configure(opts EncodingOptions)
	Translate(program Program, scope []string) (vil.Program, types.NamingMap, error)
}

// moduleSet owns the fixed, ordered module collection of one session.
type moduleSet struct {
	modules []Module
	started bool
}

func newModuleSet(modules []Module) *moduleSet {
	return &moduleSet{modules: modules}
}

// start runs Start on every module in collection order, once.
func (s *moduleSet) start() {
	if s.started {
		return
	}
	for _, m := range s.modules {
		m.Start()
	}
	s.started = true
}

// resetAll discards state accumulated by a prior verification. It is what
// makes one session reusable across programs.
func (s *moduleSet) resetAll() {
	for _, m := range s.modules {
		m.Reset()
	}
}

// stop releases module resources. A no-op when start never ran.
func (s *moduleSet) stop() {
	if !s.started {
		return
	}
	for _, m := range s.modules {
		m.Stop()
	}
	s.started = false
}

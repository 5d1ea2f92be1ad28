// Package veil is the public surface of the veil verification driver.
package veil

import (
	"go.uber.org/zap"

	"github.com/veilang/veil/internal"
	"github.com/veilang/veil/internal/backend"
	"github.com/veilang/veil/internal/types"
)

// Re-exported session types. The driver core lives in internal; this
// package is what embedders import.
type (
	Config          = internal.Config
	Module          = internal.Module
	Translator      = internal.Translator
	EncodingOptions = internal.EncodingOptions
	Namespace       = internal.Namespace
	Program         = internal.Program
	Verifier        = internal.Verifier

	NamingMap         = types.NamingMap
	Model             = types.Model
	Result            = types.Result
	VerificationError = types.VerificationError
)

// LoadConfig parses a yaml configuration file.
func LoadConfig(path string) (*Config, error) {
	return internal.LoadConfig(path)
}

// New assembles a verification session from an ordered module collection,
// one of which must be the translator. Pass a nil runner to use the
// subprocess checker and a nil logger to disable logging.
func New(cfg *Config, modules []Module, runner backend.Runner, logger *zap.Logger) (*Verifier, error) {
	return internal.NewVerifier(cfg, modules, runner, logger)
}

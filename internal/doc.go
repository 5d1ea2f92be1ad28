// Package internal provides the core functionality of the veil
// verification driver.
//
// This package implements the translate/check/report pipeline that turns a
// program in the permission-based source language into the intermediate
// verification language, hands it to the external checker, and interprets
// the outcome — including renaming counterexample models back to
// source-level variables.
//
// Key components:
//
// Verifier: one verification session. It owns the fixed module collection,
// the namespace counter, and the current program state, and drives the
// pipeline for each Verify call.
//
// Module: the lifecycle contract (Start, Reset, Stop) shared by every
// translation module. The distinguished Translator module additionally
// produces the intermediate program and the naming map.
//
// Namespaces: hands out session-unique (label, id) pairs so that generated
// identifiers never collide and re-translation is reproducible.
//
// Config: the per-run options the pipeline reads. A nil config is valid;
// every dependent step then falls back to its default.
//
// Usage:
//
//	v, err := internal.NewVerifier(cfg, modules, nil, logger)
//	if err != nil {
//	    // handle error
//	}
//	defer v.Close()
//
//	result, err := v.Verify(ctx, program)
//	if err != nil {
//	    // handle error
//	}
//	for _, e := range result.Errors {
//	    fmt.Println(e)
//	}
//
// This package is intended for internal use within the driver; the public
// surface is the root veil package.
package internal

// Package model rewrites raw counterexample models into source-level
// variable names.
//
// The checker enumerates every static-single-assignment incarnation of a
// source variable: quantifier-bound copies carry a "q@" prefix, old-state
// snapshots an "@@" suffix, sequential reassignments an "@n" suffix. The
// rewrite selects one representative incarnation per source variable,
// preferring the latest plain reassignment.
package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/veilang/veil/internal/types"
)

// BaseName strips the checker's incarnation decorations from a model
// variable name.
func BaseName(raw string) string {
	if rest, ok := strings.CutPrefix(raw, "q@"); ok {
		return rest
	}
	if base, _, ok := strings.Cut(raw, "@@"); ok {
		return base
	}
	base, _, _ := strings.Cut(raw, "@")
	return base
}

// Rewrite maps a raw checker model onto source-level variable names using
// one procedure's naming scope. Raw names with no source counterpart are
// dropped; when several incarnations share a source variable the tie-break
// picks a single representative. The result holds at most one entry per
// source variable.
func Rewrite(raw types.Model, names map[string]string) (types.Model, error) {
	rewritten := make(types.Model)
	reps := make(map[string]string) // source name -> representative raw name

	// deterministic encounter order
	rawNames := make([]string, 0, len(raw))
	for name := range raw {
		rawNames = append(rawNames, name)
	}
	sort.Strings(rawNames)

	for _, rawName := range rawNames {
		base := BaseName(rawName)
		original, ok := lookup(names, rawName, base)
		if !ok {
			continue
		}
		if current, seen := reps[original]; seen {
			won, err := wins(rawName, base, current)
			if err != nil {
				return nil, err
			}
			if !won {
				continue
			}
		}
		rewritten[original] = raw[rawName]
		reps[original] = rawName
	}

	return rewritten, nil
}

// RewriteErrors replaces every error's model in place, selecting the naming
// scope by the error's originating procedure. Errors without a model or
// without a known procedure scope are left untouched.
func RewriteErrors(errs []*types.VerificationError, names types.NamingMap) error {
	for _, e := range errs {
		if e.Model == nil {
			continue
		}
		scope, ok := names[e.Procedure]
		if !ok {
			continue
		}
		rewritten, err := Rewrite(e.Model, scope)
		if err != nil {
			return fmt.Errorf("rewriting model of %s: %w", e.Procedure, err)
		}
		e.Model = rewritten
	}
	return nil
}

func lookup(names map[string]string, rawName, base string) (string, bool) {
	if original, ok := names[base]; ok {
		return original, original != ""
	}
	if original, ok := names[rawName]; ok {
		return original, original != ""
	}
	return "", false
}

// wins decides whether candidate displaces the current representative of
// base. An undecorated name, a quantifier copy, or an old-state snapshot is
// always displaced by anything more specific; among plain reassignment
// copies the larger incarnation number wins; otherwise the first-seen
// representative is kept. The "@@" check is deliberately applied to the
// current representative only.
func wins(candidate, base, current string) (bool, error) {
	if current == base || current == "q@"+base || strings.Contains(current, "@@") {
		return true, nil
	}
	if strings.Count(current, "@") == 1 &&
		strings.Contains(candidate, "@") && !strings.Contains(candidate, "@@") {
		currentN, err := incarnation(current, base)
		if err != nil {
			return false, err
		}
		candidateN, err := incarnation(candidate, base)
		if err != nil {
			return false, err
		}
		return candidateN > currentN, nil
	}
	return false, nil
}

// incarnation parses the integer suffix of base+"@"+n. A malformed suffix
// means the checker's naming convention drifted from what this package
// assumes; that is reported loudly instead of misattributing a value.
func incarnation(name, base string) (int, error) {
	rest, ok := strings.CutPrefix(name, base+"@")
	if !ok {
		return 0, fmt.Errorf("model variable %q does not have the form %s@<n>", name, base)
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("model variable %q has a malformed incarnation suffix: %w", name, err)
	}
	return n, nil
}

// Package backend invokes the intermediate-language checker and interprets
// its output.
package backend

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/veilang/veil/internal/types"
	"github.com/veilang/veil/internal/vil"
)

// Runner checks one translated program. The call is synchronous; the
// version string is empty when the checker did not report one.
type Runner interface {
	Verify(ctx context.Context, program vil.Program, opts []string) (version string, result *types.Result, err error)
}

// Exec runs the checker as a subprocess.
type Exec struct {
	// Checker is the checker executable location.
	Checker string
	// Solver, when set, is handed to the checker via /z3exe:.
	Solver string
}

var _ Runner = (*Exec)(nil)

// Verify writes the rendered program to a temporary file, invokes the
// checker on it, and parses the combined output. A nonzero exit status is
// expected when proof obligations fail; only a failure to run the checker
// at all is an error.
func (e *Exec) Verify(ctx context.Context, program vil.Program, opts []string) (string, *types.Result, error) {
	f, err := os.CreateTemp("", "veil_*.bpl")
	if err != nil {
		return "", nil, fmt.Errorf("error creating temp program file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString(program.Render()); err != nil {
		f.Close()
		return "", nil, fmt.Errorf("error writing temp program file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", nil, fmt.Errorf("error closing temp program file: %w", err)
	}

	// /trace makes the checker announce each procedure, which is what lets
	// errors be attributed to their originating procedure.
	args := []string{"/trace"}
	if e.Solver != "" {
		args = append(args, "/z3exe:"+e.Solver)
	}
	args = append(args, opts...)
	args = append(args, f.Name())

	out, err := exec.CommandContext(ctx, e.Checker, args...).CombinedOutput()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return "", nil, fmt.Errorf("error invoking checker %s: %w", e.Checker, err)
	}

	return ParseOutput(out)
}

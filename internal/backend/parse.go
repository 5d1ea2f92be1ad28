package backend

import (
	"bufio"
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/veilang/veil/internal/types"
)

const (
	modelStart = "*** MODEL"
	modelEnd   = "*** END_MODEL"
)

var (
	versionRe = regexp.MustCompile(`^Boogie program verifier version ([^,]+)`)
	tracingRe = regexp.MustCompile(`^Verifying (\S+) \.\.\.`)
	errorRe   = regexp.MustCompile(`^(.+)\((\d+),(\d+)\): Error(?: \w+)?: (.*)$`)
)

// ParseOutput interprets the checker's textual output: an optional version
// banner, per-procedure trace markers, error lines, and streamed
// counterexample model blocks. A model block is attached to the error it
// follows; a block seen before any error is attached to the next one.
func ParseOutput(out []byte) (string, *types.Result, error) {
	result := &types.Result{}

	var (
		version   string
		procedure string
		last      *types.VerificationError
		pending   types.Model
		inModel   bool
	)

	sc := bufio.NewScanner(bytes.NewReader(out))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()

		if inModel {
			if strings.TrimSpace(line) == modelEnd {
				inModel = false
				continue
			}
			name, value, ok := strings.Cut(line, "->")
			if !ok {
				continue
			}
			entry := types.ModelEntry(strings.TrimSpace(value))
			if last != nil {
				last.Model[strings.TrimSpace(name)] = entry
			} else {
				pending[strings.TrimSpace(name)] = entry
			}
			continue
		}

		switch {
		case strings.TrimSpace(line) == modelStart:
			inModel = true
			if last != nil {
				if last.Model == nil {
					last.Model = types.Model{}
				}
			} else {
				pending = types.Model{}
			}

		case versionRe.MatchString(line):
			version = versionRe.FindStringSubmatch(line)[1]

		case tracingRe.MatchString(line):
			procedure = tracingRe.FindStringSubmatch(line)[1]
			last = nil

		case errorRe.MatchString(line):
			m := errorRe.FindStringSubmatch(line)
			lineNo, _ := strconv.Atoi(m[2])
			colNo, _ := strconv.Atoi(m[3])
			last = &types.VerificationError{
				Procedure: procedure,
				File:      m[1],
				Line:      lineNo,
				Column:    colNo,
				Message:   m[4],
				Model:     pending,
			}
			pending = nil
			result.Errors = append(result.Errors, last)
		}
	}
	if err := sc.Err(); err != nil {
		return "", nil, err
	}

	return version, result, nil
}

// Package vil represents programs in the intermediate verification
// language. The driver never inspects their structure; it only renders
// them for the checker and persists the rendered text on request.
package vil

import (
	"fmt"
	"os"
)

// Program is a translated verification-condition program.
type Program interface {
	// Render returns the program in the intermediate language's own syntax.
	Render() string
}

type textProgram struct {
	text string
}

func (p textProgram) Render() string { return p.text }

// FromText wraps already-rendered intermediate code.
func FromText(text string) Program {
	return textProgram{text: text}
}

// FromFile reads a rendered program from disk.
func FromFile(path string) (Program, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading program file: %w", err)
	}
	return textProgram{text: string(content)}, nil
}

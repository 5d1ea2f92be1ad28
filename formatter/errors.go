// Package formatter renders verification results for terminal output.
package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/veilang/veil/internal/types"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
	modelStyle   = color.New(color.FgGreen)
	successStyle = color.New(color.FgGreen, color.Bold)
	noStyle      = color.New(color.FgWhite)
)

// FormatResult renders one verification outcome, including each error's
// counterexample model when present.
func FormatResult(name string, result *types.Result) string {
	var builder strings.Builder

	if result.Success() {
		builder.WriteString(successStyle.Sprintf("verified: %s\n", name))
		return builder.String()
	}

	for _, e := range result.Errors {
		builder.WriteString(errorStyle.Sprint("error: "))
		builder.WriteString(messageStyle.Sprintln(e.Message))
		builder.WriteString(" --> ")
		builder.WriteString(fileStyle.Sprintf("%s:%d:%d", e.File, e.Line, e.Column))
		if e.Procedure != "" {
			builder.WriteString(noStyle.Sprintf(" (in %s)", e.Procedure))
		}
		builder.WriteString("\n")
		builder.WriteString(formatModel(e.Model))
		builder.WriteString("\n")
	}

	builder.WriteString(errorStyle.Sprintf("%s: %d error(s)\n", name, len(result.Errors)))
	return builder.String()
}

// formatModel lists model entries one per line, variables sorted.
func formatModel(m types.Model) string {
	if len(m) == 0 {
		return ""
	}

	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	var builder strings.Builder
	builder.WriteString(noStyle.Sprintln("  counterexample:"))
	for _, name := range names {
		builder.WriteString(modelStyle.Sprintf("    %s = %s\n", name, m[name]))
	}
	return builder.String()
}

// FormatDependency renders one resolved dependency description line.
func FormatDependency(description string) string {
	return fmt.Sprintf("%s\n", fileStyle.Sprint(description))
}

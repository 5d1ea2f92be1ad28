package backend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilang/veil/internal/types"
)

func TestParseOutput_Success(t *testing.T) {
	t.Parallel()

	out := strings.Join([]string{
		"Boogie program verifier version 2.15.9, Copyright (c) 2003-2014, Microsoft.",
		"Verifying Cell.set ...",
		"Verifying Cell.get ...",
		"",
		"Boogie program verifier finished with 2 verified, 0 errors",
	}, "\n")

	version, result, err := ParseOutput([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "2.15.9", version)
	assert.True(t, result.Success())
}

func TestParseOutput_ErrorsWithModels(t *testing.T) {
	t.Parallel()

	out := strings.Join([]string{
		"Boogie program verifier version 2.15.9, Copyright (c) 2003-2014, Microsoft.",
		"Verifying Cell.set ...",
		"*** MODEL",
		"x@1 -> 1",
		"x@2 -> 2",
		"q@y -> 3",
		"*** END_MODEL",
		"cell.vil(12,5): Error BP5001: This assertion might not hold.",
		"Verifying Cell.get ...",
		"cell.vil(30,3): Error BP5003: A postcondition might not hold on this return path.",
		"*** MODEL",
		"r@0 -> 42",
		"*** END_MODEL",
		"",
		"Boogie program verifier finished with 0 verified, 2 errors",
	}, "\n")

	version, result, err := ParseOutput([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "2.15.9", version)
	require.Len(t, result.Errors, 2)

	first := result.Errors[0]
	assert.Equal(t, "Cell.set", first.Procedure)
	assert.Equal(t, "cell.vil", first.File)
	assert.Equal(t, 12, first.Line)
	assert.Equal(t, 5, first.Column)
	assert.Equal(t, "This assertion might not hold.", first.Message)
	assert.Equal(t, types.Model{"x@1": "1", "x@2": "2", "q@y": "3"}, first.Model)

	second := result.Errors[1]
	assert.Equal(t, "Cell.get", second.Procedure)
	assert.Equal(t, "A postcondition might not hold on this return path.", second.Message)
	assert.Equal(t, types.Model{"r@0": "42"}, second.Model)
}

func TestParseOutput_ErrorWithoutModel(t *testing.T) {
	t.Parallel()

	out := "cell.vil(3,1): Error: command assumes false\n"

	_, result, err := ParseOutput([]byte(out))
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "command assumes false", result.Errors[0].Message)
	assert.Nil(t, result.Errors[0].Model)
	assert.Empty(t, result.Errors[0].Procedure)
}

func TestParseOutput_NoVersionBanner(t *testing.T) {
	t.Parallel()

	version, result, err := ParseOutput([]byte("nothing to see here\n"))
	require.NoError(t, err)
	assert.Empty(t, version)
	assert.True(t, result.Success())
}

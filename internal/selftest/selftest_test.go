package selftest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e11jah/tst/internal/logging"
)

func TestRunDocumentedChecks(t *testing.T) {
	assert.NoError(t, Run(logging.NewNop(), Words, Checks))
}

func TestRunReportsFailures(t *testing.T) {
	checks := []Check{
		{"te", true},
		{"text", true},
		{"tell", false},
	}

	err := Run(logging.NewNop(), Words, checks)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, err.Error(), `Contains("text") = false, want true`)
	assert.Contains(t, err.Error(), `Contains("tell") = true, want false`)
	assert.NotContains(t, err.Error(), `"te"`)
}

func TestRunEmptyTree(t *testing.T) {
	checks := []Check{
		{"", true},
		{"a", false},
	}
	assert.NoError(t, Run(logging.NewNop(), nil, checks))
}

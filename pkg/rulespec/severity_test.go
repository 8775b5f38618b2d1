package rulespec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldrule/pkg/rulespec"
)

func TestSeverityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hard", rulespec.SeverityHard.String())
	assert.Equal(t, "soft", rulespec.SeveritySoft.String())
	assert.Equal(t, "stop", rulespec.SeverityStop.String())
	assert.Equal(t, "severity(42)", rulespec.Severity(42).String())
}

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	t.Run("parses canonical names", func(t *testing.T) {
		for name, want := range map[string]rulespec.Severity{
			"hard": rulespec.SeverityHard,
			"soft": rulespec.SeveritySoft,
			"stop": rulespec.SeverityStop,
		} {
			got, err := rulespec.ParseSeverity(name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("ignores case and surrounding whitespace", func(t *testing.T) {
		got, err := rulespec.ParseSeverity("  SOFT ")
		require.NoError(t, err)
		assert.Equal(t, rulespec.SeveritySoft, got)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := rulespec.ParseSeverity("fatal")
		assert.ErrorIs(t, err, rulespec.ErrInvalidSeverity)
	})
}

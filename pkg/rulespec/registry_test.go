package rulespec_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldrule/pkg/rulespec"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	passRule := rulespec.RuleFunc(func(rulespec.Subject, string, ...any) bool { return true })
	failRule := rulespec.RuleFunc(func(rulespec.Subject, string, ...any) bool { return false })

	t.Run("resolves a registered rule", func(t *testing.T) {
		registry := rulespec.NewRegistry()
		require.NoError(t, registry.Register("pass", passRule))

		rule, err := registry.Resolve("pass")
		require.NoError(t, err)
		assert.True(t, rule.Apply(rulespec.MapSubject{}, "field"))
	})

	t.Run("unknown name yields ErrRuleNotFound", func(t *testing.T) {
		registry := rulespec.NewRegistry()

		rule, err := registry.Resolve("missing")
		assert.Nil(t, rule)
		assert.ErrorIs(t, err, rulespec.ErrRuleNotFound)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		registry := rulespec.NewRegistry()

		err := registry.Register("", passRule)
		assert.ErrorIs(t, err, rulespec.ErrInvalidRule)
	})

	t.Run("rejects nil rule", func(t *testing.T) {
		registry := rulespec.NewRegistry()

		err := registry.Register("pass", nil)
		assert.ErrorIs(t, err, rulespec.ErrInvalidRule)
	})

	t.Run("re-registration replaces the previous rule", func(t *testing.T) {
		registry := rulespec.NewRegistry()
		require.NoError(t, registry.Register("check", passRule))
		require.NoError(t, registry.Register("check", failRule))

		rule, err := registry.Resolve("check")
		require.NoError(t, err)
		assert.False(t, rule.Apply(rulespec.MapSubject{}, "field"))
	})

	t.Run("must register panics on invalid registration", func(t *testing.T) {
		registry := rulespec.NewRegistry()

		assert.Panics(t, func() {
			registry.MustRegister("", passRule)
		})
	})

	t.Run("names are sorted", func(t *testing.T) {
		registry := rulespec.NewRegistry()
		require.NoError(t, registry.Register("b", passRule))
		require.NoError(t, registry.Register("a", passRule))
		require.NoError(t, registry.Register("c", passRule))

		assert.Equal(t, []string{"a", "b", "c"}, registry.Names())
	})

	t.Run("default registry carries the builtin catalogue", func(t *testing.T) {
		registry := rulespec.NewDefaultRegistry()

		for name := range rulespec.Builtins() {
			rule, err := registry.Resolve(name)
			require.NoError(t, err, "builtin %q", name)
			assert.NotNil(t, rule)
		}
	})

	t.Run("concurrent resolution is safe", func(t *testing.T) {
		registry := rulespec.NewDefaultRegistry()

		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 100 {
					_, err := registry.Resolve("between")
					assert.NoError(t, err)
				}
			}()
		}
		wg.Wait()
	})
}

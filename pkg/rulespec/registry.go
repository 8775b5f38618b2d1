package rulespec

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registry is an in-memory implementation of the Resolver interface. Lookups
// take a read lock only, so a registry shared by many specifications is safe
// for concurrent resolution.
type Registry struct {
	rules map[string]Rule
	mu    sync.RWMutex
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		rules: make(map[string]Rule),
	}
}

// NewDefaultRegistry creates a registry pre-populated with the built-in
// rule catalogue.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	for name, rule := range Builtins() {
		registry.rules[name] = rule
	}
	return registry
}

// Register stores a rule under the given name. Registering a name that
// already exists replaces the previous rule, which allows applications to
// override built-ins.
func (r *Registry) Register(name string, rule Rule) error {
	if name == "" {
		return errors.Join(ErrInvalidRule, errors.New("rule name cannot be empty"))
	}
	if rule == nil {
		return errors.Join(ErrInvalidRule, errors.New("rule cannot be nil"))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules[name] = rule
	return nil
}

// MustRegister works like Register but panics on error. Useful for wiring
// rule catalogues at startup where a registration failure is a programming
// mistake.
func (r *Registry) MustRegister(name string, rule Rule) {
	if err := r.Register(name, rule); err != nil {
		panic(fmt.Sprintf("fieldrule: failed to register rule %q: %v", name, err))
	}
}

// Resolve returns the rule registered under name.
func (r *Registry) Resolve(name string) (Rule, error) {
	r.mu.RLock()
	rule, exists := r.rules[name]
	r.mu.RUnlock()

	if !exists {
		return nil, ErrRuleNotFound
	}
	return rule, nil
}

// Names returns the registered rule names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Package actions catalogs the export backends a driver can dispatch to.
//
// A backend registers one Action descriptor at startup: its trigger name,
// the project kinds, languages, and tools it claims to support, and the
// lifecycle hooks the driver invokes with resolved model objects. The
// registry only stores and returns descriptors; it never invokes a hook
// and never enforces the capability metadata it carries.
package actions

import (
	"errors"
	"fmt"

	"github.com/PremakeDevs/premake-dev/project"
)

// Registry errors. Both indicate driver misuse and are not recoverable
// internally.
var (
	ErrDuplicateTrigger = errors.New("actions: duplicate trigger")
	ErrUnknownAction    = errors.New("actions: unknown action")
)

// Action describes one export backend. Descriptors are created once at
// registration time and never mutated afterwards.
type Action struct {
	// Trigger is the unique key the action is looked up by ("gmake",
	// "vs2010", ...).
	Trigger string

	// ShortName and Description are display metadata.
	ShortName   string
	Description string

	// OS names the target operating system the backend generates for.
	// Empty means the host OS.
	OS string

	// Capability metadata. Carried for driver-side validation and
	// display; nothing in this package enforces it.
	ValidKinds     []project.Kind
	ValidLanguages []project.Language
	ValidTools     map[string][]string

	// Lifecycle hooks. A nil hook means the backend has no work for that
	// stage.
	OnWorkspace func(*project.Workspace) error
	OnProject   func(*project.Project) error
	OnRule      func(*project.Rule) error

	OnCleanWorkspace func(*project.Workspace) error
	OnCleanProject   func(*project.Project) error
	OnCleanTarget    func(*project.Project) error
}

// Supports reports whether the action declares support for the project's
// kind and language. This is informational: callers decide what to do
// with a mismatch.
func (a *Action) Supports(p *project.Project) bool {
	return containsKind(a.ValidKinds, p.Kind) && containsLanguage(a.ValidLanguages, p.Language)
}

func containsKind(kinds []project.Kind, k project.Kind) bool {
	for _, v := range kinds {
		if v == k {
			return true
		}
	}
	return false
}

func containsLanguage(langs []project.Language, l project.Language) bool {
	for _, v := range langs {
		if v == l {
			return true
		}
	}
	return false
}

// Registry is the catalog of registered actions. It is constructed by the
// composition root and passed by reference; registration happens at
// startup, lookups are read-only thereafter and safe for concurrent use
// once all registrations complete.
type Registry struct {
	actions map[string]*Action
	order   []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]*Action)}
}

// Register inserts an action under its trigger key. Registering the same
// trigger twice fails with ErrDuplicateTrigger.
func (r *Registry) Register(a *Action) error {
	if _, ok := r.actions[a.Trigger]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTrigger, a.Trigger)
	}
	r.actions[a.Trigger] = a
	r.order = append(r.order, a.Trigger)
	return nil
}

// Lookup returns the action registered under trigger, or
// ErrUnknownAction.
func (r *Registry) Lookup(trigger string) (*Action, error) {
	a, ok := r.actions[trigger]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, trigger)
	}
	return a, nil
}

// Actions returns the registered actions in registration order. The order
// only matters for display listings.
func (r *Registry) Actions() []*Action {
	out := make([]*Action, 0, len(r.order))
	for _, trigger := range r.order {
		out = append(out, r.actions[trigger])
	}
	return out
}

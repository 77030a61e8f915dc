package readlater

import (
	"maps"
	"slices"
)

// ExpansionState is the set of day labels shown expanded. It is rebuilt on
// every start and never persisted.
type ExpansionState struct {
	labels map[string]bool
}

// NewExpansionState returns the initial state: only "Today" expanded.
func NewExpansionState() ExpansionState {
	return ExpansionState{labels: map[string]bool{LabelToday: true}}
}

// Toggle expands a collapsed label or collapses an expanded one.
func (e *ExpansionState) Toggle(label string) {
	if e.labels == nil {
		e.labels = make(map[string]bool)
	}
	if e.labels[label] {
		delete(e.labels, label)
	} else {
		e.labels[label] = true
	}
}

// IsExpanded reports whether label is expanded.
func (e ExpansionState) IsExpanded(label string) bool {
	return e.labels[label]
}

// Expanded returns the expanded labels, sorted.
func (e ExpansionState) Expanded() []string {
	return slices.Sorted(maps.Keys(e.labels))
}

// Clone returns an independent copy.
func (e ExpansionState) Clone() ExpansionState {
	return ExpansionState{labels: maps.Clone(e.labels)}
}

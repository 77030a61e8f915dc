package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "open")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for bottom bar: "j/k:move s:save q:quit"
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Navigation hints (j/k, h/l, etc.)
	Edit   []Hint // Edit hints (s, d)
	Action []Hint // Action hints (Enter, y, /)
	System []Hint // System hints (r, q, Esc)
}

// All returns all hints flattened in display order: Nav + Action + Edit + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.Edit)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.Edit...)
	result = append(result, h.System...)
	return result
}

// getContextualHints returns the appropriate hints for what is on screen.
func (a App) getContextualHints() HintSet {
	switch {
	case a.filtering:
		return HintSet{
			Action: []Hint{{"Enter", "apply"}},
			System: []Hint{{"Esc", "clear"}},
		}
	case a.state.Err != nil:
		return HintSet{
			Edit:   []Hint{{"s", "save tab"}},
			System: []Hint{{"r", "retry"}, {"q", "quit"}},
		}
	case len(a.rows) == 0:
		return HintSet{
			Edit:   []Hint{{"s", "save tab"}},
			System: []Hint{{"r", "reload"}, {"q", "quit"}},
		}
	}

	hints := HintSet{
		Nav:    []Hint{{"j/k", "move"}, {"h/l", "fold"}},
		Edit:   []Hint{{"s", "save tab"}},
		System: []Hint{{"r", "reload"}, {"q", "quit"}},
	}

	if row, ok := a.selectedRow(); ok && !row.IsDay() {
		hints.Action = []Hint{{"Enter", "open"}, {"y", "yank"}, {"/", "filter"}}
		hints.Edit = append(hints.Edit, Hint{"d", "remove"})
	} else {
		hints.Action = []Hint{{"Enter", "toggle"}, {"/", "filter"}}
	}

	if a.filter.Value() != "" {
		hints.System = append([]Hint{{"Esc", "clear filter"}}, hints.System...)
	}

	return hints
}

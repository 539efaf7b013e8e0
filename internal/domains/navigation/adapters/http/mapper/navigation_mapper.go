package mapper

import (
	navapp "github.com/Apurer/go-storefront/internal/domains/navigation/application"
)

// NavigateRequest is the JSON body of PUT /navigation.
type NavigateRequest struct {
	Section string `json:"section" binding:"required"`
}

type Entry struct {
	Section string `json:"section"`
	Label   string `json:"label"`
	Active  bool   `json:"active"`
}

// Navigation is the transport shape of the navigator state. Active is empty
// when no entry maps to the current section.
type Navigation struct {
	Current string  `json:"current"`
	Active  string  `json:"active,omitempty"`
	Entries []Entry `json:"entries"`
}

func FromState(state navapp.State) Navigation {
	entries := make([]Entry, 0, len(state.Entries))
	for _, e := range state.Entries {
		entries = append(entries, Entry{
			Section: string(e.Section),
			Label:   e.Label,
			Active:  state.Active != "" && e.Section == state.Active,
		})
	}
	return Navigation{Current: string(state.Current), Active: string(state.Active), Entries: entries}
}

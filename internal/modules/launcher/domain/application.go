package domain

import "strings"

// Application is one launchable entry. ID is opaque to the interpreter and
// only meaningful to the directory and launcher adapters.
type Application struct {
	Name string
	ID   string
}

// Registry is an ordered set of applications keyed by ID. Order is the order
// entries were supplied in and decides which entry wins a search.
type Registry struct {
	entries []Application
}

// NewRegistry keeps the first occurrence of each ID and drops entries whose
// name is blank.
func NewRegistry(apps []Application) Registry {
	seen := make(map[string]struct{}, len(apps))
	entries := make([]Application, 0, len(apps))
	for _, app := range apps {
		if strings.TrimSpace(app.Name) == "" {
			continue
		}
		if _, dup := seen[app.ID]; dup {
			continue
		}
		seen[app.ID] = struct{}{}
		entries = append(entries, app)
	}
	return Registry{entries: entries}
}

func (r Registry) List() []Application {
	out := make([]Application, len(r.entries))
	copy(out, r.entries)
	return out
}

// FindFirst returns the first entry whose name contains query, compared
// case-insensitively. There is no ranking; earlier entries win.
func (r Registry) FindFirst(query string) (Application, bool) {
	needle := strings.ToLower(query)
	for _, app := range r.entries {
		if strings.Contains(strings.ToLower(app.Name), needle) {
			return app, true
		}
	}
	return Application{}, false
}

func (r Registry) ByID(id string) (Application, bool) {
	for _, app := range r.entries {
		if app.ID == id {
			return app, true
		}
	}
	return Application{}, false
}

// PinnedList is the startup-configured favourites order.
type PinnedList struct {
	ids []string
}

func NewPinnedList(ids []string) PinnedList {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return PinnedList{ids: out}
}

func (p PinnedList) IDs() []string {
	out := make([]string, len(p.ids))
	copy(out, p.ids)
	return out
}

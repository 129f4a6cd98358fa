package theme

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
)

// Store persists the custom theme list. Persistence is best-effort: a
// failed save leaves the in-memory list authoritative for the session.
type Store interface {
	LoadCustomThemes() []Entry
	SaveCustomThemes([]Entry) error
}

// Manager owns the theme catalog: the immutable built-ins plus the
// user-imported custom list.
type Manager struct {
	mu     sync.Mutex
	store  Store
	custom []Entry
}

// NewManager creates a manager and loads the persisted custom themes,
// dropping any entry whose palette is incomplete.
func NewManager(store Store) *Manager {
	m := &Manager{store: store}

	for _, entry := range store.LoadCustomThemes() {
		if entry.Name == "" || !entry.Colors.Valid() {
			log.Printf("[theme] dropping invalid custom theme %q", entry.Name)
			continue
		}
		entry.Custom = true
		if entry.Category == "" {
			entry.Category = CustomCategory
		}
		m.custom = append(m.custom, entry)
	}

	return m
}

// List returns the full catalog, built-ins first.
func (m *Manager) List() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := Builtins()
	out = append(out, m.custom...)
	return out
}

// Categories returns the category names in display order: built-in
// categories in catalog order, then the custom category if populated.
func (m *Manager) Categories() []string {
	var order []string
	seen := make(map[string]bool)
	for _, entry := range m.List() {
		if !seen[entry.Category] {
			seen[entry.Category] = true
			order = append(order, entry.Category)
		}
	}
	return order
}

// Get returns the entry with the given name.
func (m *Manager) Get(name string) (Entry, bool) {
	for _, entry := range m.List() {
		if entry.Name == name {
			return entry, true
		}
	}
	return Entry{}, false
}

// UniqueName derives an unused theme name from a base, appending -1,
// -2, ... until it collides with nothing, built-in or custom.
func (m *Manager) UniqueName(base string) string {
	taken := make(map[string]bool)
	for _, entry := range m.List() {
		taken[entry.Name] = true
	}

	if !taken[base] {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if !taken[candidate] {
			return candidate
		}
	}
}

// Import parses an SVG swatch file and adds it as a custom theme. The
// name derives from the filename with the extension stripped and a
// uniqueness suffix on collision.
func (m *Manager) Import(filename string, data []byte) (Entry, error) {
	colors, err := ParseSVG(data)
	if err != nil {
		return Entry{}, err
	}

	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.TrimSpace(base)
	if base == "" {
		base = "theme"
	}

	entry := Entry{
		Name:     m.UniqueName(base),
		Display:  displayName(base),
		Category: CustomCategory,
		Colors:   colors,
		Custom:   true,
	}

	m.mu.Lock()
	m.custom = append(m.custom, entry)
	m.saveLocked()
	m.mu.Unlock()

	return entry, nil
}

// Delete removes a custom theme. Built-in themes cannot be deleted.
func (m *Manager) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, entry := range m.custom {
		if entry.Name == name {
			m.custom = append(m.custom[:i], m.custom[i+1:]...)
			m.saveLocked()
			return nil
		}
	}

	for _, entry := range builtins {
		if entry.Name == name {
			return fmt.Errorf("theme %q is built-in", name)
		}
	}
	return fmt.Errorf("theme %q not found", name)
}

// saveLocked persists the custom list; the caller holds m.mu. Failures
// are logged and ignored.
func (m *Manager) saveLocked() {
	custom := make([]Entry, len(m.custom))
	copy(custom, m.custom)
	if err := m.store.SaveCustomThemes(custom); err != nil {
		log.Printf("[theme] save custom themes: %v", err)
	}
}

func displayName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == '_' })
	for i, part := range parts {
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	if len(parts) == 0 {
		return name
	}
	return strings.Join(parts, " ")
}

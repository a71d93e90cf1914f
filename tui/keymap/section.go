package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

const (
	SectionNavigation = "Navigation"
	SectionView       = "View"
	SectionSystem     = "System"
)

// Section is a titled group of bindings in the full help view.
type Section struct {
	Name string
	// Icon overrides the icon the help component derives from Name.
	Icon     string
	Bindings []key.Binding
}

// SectionedKeyMap is a keymap that groups its bindings for help.
type SectionedKeyMap interface {
	Sections() []Section
}

// NewSection groups bindings under name. Screens use it for their own keys.
func NewSection(name string, bindings ...key.Binding) Section {
	return Section{Name: name, Bindings: bindings}
}

func NavigationSection(bindings ...key.Binding) Section {
	return NewSection(SectionNavigation, bindings...)
}

func ViewSection(bindings ...key.Binding) Section {
	return NewSection(SectionView, bindings...)
}

func SystemSection(bindings ...key.Binding) Section {
	return NewSection(SectionSystem, bindings...)
}

// FilterEnabled returns the enabled bindings in order.
func (s Section) FilterEnabled() []key.Binding {
	enabled := make([]key.Binding, 0, len(s.Bindings))
	for _, b := range s.Bindings {
		if b.Enabled() {
			enabled = append(enabled, b)
		}
	}
	return enabled
}

func (s Section) IsEmpty() bool {
	return !slices.ContainsFunc(s.Bindings, key.Binding.Enabled)
}

// With returns a copy of s with bindings appended. s is not modified.
func (s Section) With(bindings ...key.Binding) Section {
	s.Bindings = append(slices.Clip(s.Bindings), bindings...)
	return s
}

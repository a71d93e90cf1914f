package navtea

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/navcoord/coordinator"
	"github.com/grovetools/navcoord/tui/components/help"
	"github.com/grovetools/navcoord/tui/keymap"
	"github.com/grovetools/navcoord/tui/theme"
	"github.com/sirupsen/logrus"
)

// Model is a tea.Model rendering a tab bar, the selected area and help.
// It must be used through a pointer: it subscribes to the coordinators it
// hosts and those callbacks update it in place.
type Model[T comparable] struct {
	tabs     *coordinator.TabSet[T, Area]
	keys     keymap.Base
	help     help.Model
	theme    *theme.Theme
	logger   *logrus.Entry
	tabLabel func(T) string
	autosave func() error

	width    int
	height   int
	revision uint64
	status   string
	cancels  []func()
}

// Option configures a Model.
type Option[T comparable] func(*Model[T])

// WithKeys replaces the default keymap.
func WithKeys[T comparable](keys keymap.Base) Option[T] {
	return func(m *Model[T]) { m.keys = keys }
}

// WithTheme replaces theme.DefaultTheme.
func WithTheme[T comparable](t *theme.Theme) Option[T] {
	return func(m *Model[T]) { m.theme = t }
}

// WithLogger sets the logger used for change notifications.
func WithLogger[T comparable](l *logrus.Entry) Option[T] {
	return func(m *Model[T]) { m.logger = l }
}

// WithTabLabels sets how tabs are named in the tab bar.
func WithTabLabels[T comparable](label func(T) string) Option[T] {
	return func(m *Model[T]) { m.tabLabel = label }
}

// WithAutosave runs save after every navigation change. Failures are logged
// and shown in the status line; they never stop the program.
func WithAutosave[T comparable](save func() error) Option[T] {
	return func(m *Model[T]) { m.autosave = save }
}

// New creates a model for tabs and subscribes to the tab coordinator and
// every area, including areas registered after New returns. Call Close to
// drop the subscriptions.
func New[T comparable](tabs *coordinator.TabSet[T, Area], opts ...Option[T]) *Model[T] {
	m := &Model[T]{
		tabs:     tabs,
		keys:     keymap.NewBase(),
		theme:    theme.DefaultTheme,
		logger:   logrus.NewEntry(logrus.StandardLogger()),
		tabLabel: func(t T) string { return fmt.Sprint(t) },
	}
	for _, opt := range opts {
		opt(m)
	}
	m.help = help.New(m.keys)
	m.help.Theme = m.theme

	m.cancels = append(m.cancels, tabs.Subscribe(func(c coordinator.TabChange[T]) {
		m.changed(fmt.Sprintf("tab: %s -> %s", m.tabLabel(c.From), m.tabLabel(c.To)))
	}))
	for _, area := range tabs.Areas() {
		m.observe(area)
	}
	m.cancels = append(m.cancels, tabs.OnRegister(func(r coordinator.Registration[T, Area]) {
		m.observe(r.Area)
	}))
	return m
}

// Init is the first command that will be executed.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Close cancels all subscriptions. The model stops reacting to changes made
// outside Update.
func (m *Model[T]) Close() {
	for _, cancel := range m.cancels {
		cancel()
	}
	m.cancels = nil
}

func (m *Model[T]) observe(area Area) {
	if area != nil {
		m.cancels = append(m.cancels, area.Observe(m.changed))
	}
}

// Revision counts the navigation changes observed so far.
func (m *Model[T]) Revision() uint64 { return m.revision }

// Status returns the description of the last change or autosave failure.
func (m *Model[T]) Status() string { return m.status }

// Keys returns the active keymap.
func (m *Model[T]) Keys() keymap.Base { return m.keys }

// changed runs synchronously inside whichever call mutated the coordinators,
// which in a running program is always Update.
func (m *Model[T]) changed(desc string) {
	m.revision++
	m.status = desc
	m.logger.WithField("revision", m.revision).Debug(desc)

	if m.autosave == nil {
		return
	}
	if err := m.autosave(); err != nil {
		m.logger.WithError(err).Warn("autosave failed")
		m.status = "autosave failed: " + err.Error()
	}
}

func (m *Model[T]) activeArea() (Area, bool) {
	a, ok := m.tabs.Active()
	return a, ok && a != nil
}

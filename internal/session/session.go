// Package session holds the UI state of one page view and applies browser
// events to it.
package session

import (
	"errors"
	"fmt"

	"github.com/M0hammad-yasin/portfolio/internal/navigation"
	"github.com/M0hammad-yasin/portfolio/internal/tracker"
)

var (
	// ErrNotMounted is returned for events that arrive before mount.
	ErrNotMounted = errors.New("session not mounted")
	// ErrUnknownEvent is returned for an unrecognised event type.
	ErrUnknownEvent = errors.New("unknown event")
)

// Theme is the page appearance.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme returns the named theme, or dark for anything unrecognised.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// EventType names a browser event forwarded to the session.
type EventType string

const (
	EventMount    EventType = "mount"
	EventScroll   EventType = "scroll"
	EventNavigate EventType = "navigate"
	EventMenu     EventType = "menu"
	EventTheme    EventType = "theme"
)

// Event is one browser event together with the layout measured when it fired.
type Event struct {
	Type    EventType       `json:"type"`
	ScrollY float64         `json:"scrollY"`
	Regions tracker.Regions `json:"regions,omitempty"`
	Target  string          `json:"target,omitempty"`
}

// State is the mutable UI state owned by one page view.
type State struct {
	Active   tracker.SectionID `json:"active"`
	MenuOpen bool              `json:"menuOpen"`
	Theme    Theme             `json:"theme"`
}

// Update is the state snapshot returned after each event. ScrollTo is set
// only when the viewport should move.
type Update struct {
	State
	ScrollTo *float64 `json:"scrollTo,omitempty"`
}

// Session applies events to State. Events must be delivered one at a time.
type Session struct {
	ID string

	tracker *tracker.Tracker
	nav     *navigation.Controller
	state   State
	mounted bool
}

// New creates an unmounted session.
func New(id string, tr *tracker.Tracker, theme Theme) *Session {
	return &Session{
		ID:      id,
		tracker: tr,
		nav:     navigation.New(tr.Order()),
		state: State{
			Active: tr.Active(),
			Theme:  theme,
		},
	}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Mounted reports whether the mount event has been handled.
func (s *Session) Mounted() bool { return s.mounted }

// Handle applies one event and returns the resulting snapshot. On error the
// state is left unchanged.
func (s *Session) Handle(ev Event) (Update, error) {
	if ev.Type != EventMount && !s.mounted {
		return s.snapshot(), ErrNotMounted
	}

	var scrollTo *float64
	switch ev.Type {
	case EventMount:
		s.mounted = true
		s.recompute(ev)
	case EventScroll:
		s.recompute(ev)
	case EventNavigate:
		if cmd, ok := s.nav.Navigate(ev.Target, ev.Regions); ok {
			s.state.MenuOpen = cmd.MenuOpen
			y := cmd.ScrollTo
			scrollTo = &y
		}
	case EventMenu:
		s.state.MenuOpen = !s.state.MenuOpen
	case EventTheme:
		s.state.Theme = s.state.Theme.Toggle()
	default:
		return s.snapshot(), fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}

	u := s.snapshot()
	u.ScrollTo = scrollTo
	return u, nil
}

func (s *Session) recompute(ev Event) {
	s.state.Active = s.tracker.Update(ev.ScrollY, ev.Regions)
}

func (s *Session) snapshot() Update {
	return Update{State: s.state}
}

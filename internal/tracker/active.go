package tracker

import "fmt"

// Fallback decides what happens when the reference point lies outside
// every mounted region.
type Fallback string

const (
	// FallbackClamp snaps to the first mounted section above the page and
	// to the last mounted section below it. Gaps keep the previous value.
	FallbackClamp Fallback = "clamp"
	// FallbackRetain always keeps the previous value.
	FallbackRetain Fallback = "retain"
)

// ParseFallback validates a fallback name from configuration.
func ParseFallback(s string) (Fallback, error) {
	switch Fallback(s) {
	case FallbackClamp, FallbackRetain:
		return Fallback(s), nil
	case "":
		return FallbackClamp, nil
	default:
		return "", fmt.Errorf("invalid fallback %q: must be one of clamp, retain", s)
	}
}

// Tracker owns the ActiveSection value for one page view. It is not safe
// for concurrent use; the owning session serialises events.
type Tracker struct {
	order    []SectionID
	bias     float64
	fallback Fallback
	active   SectionID
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithOrder overrides the declared section order. An empty order is ignored.
func WithOrder(order []SectionID) Option {
	return func(t *Tracker) {
		if len(order) > 0 {
			t.order = append([]SectionID(nil), order...)
		}
	}
}

// WithBias sets the lookahead added to the scroll offset.
func WithBias(bias float64) Option {
	return func(t *Tracker) { t.bias = bias }
}

// WithFallback sets the unmatched-reference-point policy.
func WithFallback(f Fallback) Option {
	return func(t *Tracker) { t.fallback = f }
}

// New returns a Tracker whose active section is the first declared one.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		order:    DefaultOrder,
		bias:     DefaultBias,
		fallback: FallbackClamp,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.active = t.order[0]
	return t
}

// Active returns the current ActiveSection.
func (t *Tracker) Active() SectionID { return t.active }

// Order returns a copy of the declared section order.
func (t *Tracker) Order() []SectionID {
	return append([]SectionID(nil), t.order...)
}

// Bias returns the configured lookahead.
func (t *Tracker) Bias() float64 { return t.bias }

// ReferencePoint returns scrollY adjusted by the lookahead bias.
func (t *Tracker) ReferencePoint(scrollY float64) float64 {
	return scrollY + t.bias
}

// Update recomputes the active section from a scroll offset and the current
// layout, and returns it.
func (t *Tracker) Update(scrollY float64, layout Layout) SectionID {
	ref := t.ReferencePoint(scrollY)
	if id, ok := Compute(t.order, layout, ref); ok {
		t.active = id
		return t.active
	}
	if t.fallback == FallbackClamp {
		if id, ok := t.clamp(layout, ref); ok {
			t.active = id
		}
	}
	return t.active
}

func (t *Tracker) clamp(layout Layout, ref float64) (SectionID, bool) {
	var (
		first, last       SectionID
		firstReg, lastReg Region
		mounted           bool
	)
	for _, id := range t.order {
		reg, ok := layout.Region(id)
		if !ok {
			continue
		}
		if !mounted {
			first, firstReg = id, reg
			mounted = true
		}
		last, lastReg = id, reg
	}
	switch {
	case !mounted:
		return "", false
	case ref < firstReg.Top:
		return first, true
	case ref >= lastReg.Bottom():
		return last, true
	}
	return "", false
}

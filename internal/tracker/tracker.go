// Package tracker maps a page's scroll position to the single section that
// should be highlighted in the navigation.
package tracker

import "strings"

// SectionID names one scrollable region of the page.
type SectionID string

const (
	Hero       SectionID = "hero"
	About      SectionID = "about"
	Skills     SectionID = "skills"
	Projects   SectionID = "projects"
	Experience SectionID = "experience"
	Contact    SectionID = "contact"
)

// DefaultOrder is the declared top-to-bottom order of the page sections.
var DefaultOrder = []SectionID{Hero, About, Skills, Projects, Experience, Contact}

// DefaultBias is added to the scroll offset so the highlight switches
// slightly before a section's top edge reaches the top of the viewport.
const DefaultBias = 100.0

// ParseSectionID resolves a section name case-insensitively against order.
func ParseSectionID(order []SectionID, name string) (SectionID, bool) {
	name = strings.TrimSpace(name)
	for _, id := range order {
		if strings.EqualFold(string(id), name) {
			return id, true
		}
	}
	return "", false
}

// Region is the vertical extent of a rendered section, in page pixels.
type Region struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Bottom returns the first offset below the region.
func (r Region) Bottom() float64 { return r.Top + r.Height }

// Contains reports whether y falls in [Top, Top+Height).
func (r Region) Contains(y float64) bool {
	return y >= r.Top && y < r.Bottom()
}

// Layout exposes the live geometry of the page. Region returns false for a
// section that is not mounted.
type Layout interface {
	Region(id SectionID) (Region, bool)
}

// Regions is a Layout backed by a map, typically one measurement snapshot.
type Regions map[SectionID]Region

// Region implements Layout.
func (r Regions) Region(id SectionID) (Region, bool) {
	reg, ok := r[id]
	return reg, ok
}

// Compute returns the first section in order whose region contains ref.
// Sections missing from layout are skipped. The boolean is false when no
// mounted region contains ref.
func Compute(order []SectionID, layout Layout, ref float64) (SectionID, bool) {
	for _, id := range order {
		reg, ok := layout.Region(id)
		if !ok {
			continue
		}
		if reg.Contains(ref) {
			return id, true
		}
	}
	return "", false
}

// Package navigation turns "go to section" requests into viewport scroll
// commands.
package navigation

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/M0hammad-yasin/portfolio/internal/tracker"
)

// Command instructs the viewport to animate to ScrollTo and carries the
// menu state that results from the navigation.
type Command struct {
	Target   tracker.SectionID `json:"target"`
	ScrollTo float64           `json:"scrollTo"`
	Smooth   bool              `json:"smooth"`
	MenuOpen bool              `json:"menuOpen"`
}

// Controller resolves navigation targets against the live layout.
type Controller struct {
	order []tracker.SectionID
}

// New returns a Controller over the given section order.
func New(order []tracker.SectionID) *Controller {
	if len(order) == 0 {
		order = tracker.DefaultOrder
	}
	return &Controller{order: order}
}

// Navigate aligns the target region's top with the viewport top and closes
// the mobile menu. A target that is unknown or not mounted yields no
// command.
func (c *Controller) Navigate(target string, layout tracker.Layout) (Command, bool) {
	id, ok := tracker.ParseSectionID(c.order, target)
	if !ok {
		return Command{}, false
	}
	reg, ok := layout.Region(id)
	if !ok {
		return Command{}, false
	}
	return Command{Target: id, ScrollTo: reg.Top, Smooth: true, MenuOpen: false}, true
}

// Item is one entry of the navigation bar.
type Item struct {
	ID      tracker.SectionID
	Label   string
	Current bool
}

// Items returns the navigation entries for every section except the first,
// which is reached through the brand mark instead. The entry matching
// active is marked current.
func (c *Controller) Items(active tracker.SectionID) []Item {
	title := cases.Title(language.English)
	items := make([]Item, 0, len(c.order))
	for _, id := range c.order[1:] {
		items = append(items, Item{
			ID:      id,
			Label:   title.String(string(id)),
			Current: id == active,
		})
	}
	return items
}

// Home returns the first declared section.
func (c *Controller) Home() tracker.SectionID { return c.order[0] }

package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M0hammad-yasin/portfolio/internal/tracker"
)

func layout() tracker.Regions {
	return tracker.Regions{
		tracker.Hero:       {Top: 0, Height: 800},
		tracker.About:      {Top: 800, Height: 600},
		tracker.Skills:     {Top: 1400, Height: 900},
		tracker.Projects:   {Top: 2300, Height: 1500},
		tracker.Experience: {Top: 3800, Height: 1000},
		tracker.Contact:    {Top: 4800, Height: 900},
	}
}

func TestNavigateScrollsToRegionTop(t *testing.T) {
	c := New(nil)

	cmd, ok := c.Navigate("Projects", layout())
	require.True(t, ok)
	assert.Equal(t, tracker.Projects, cmd.Target)
	assert.Equal(t, 2300.0, cmd.ScrollTo)
	assert.True(t, cmd.Smooth)
	assert.False(t, cmd.MenuOpen)
}

func TestNavigateLandsInTargetSection(t *testing.T) {
	c := New(nil)
	tr := tracker.New()
	l := layout()

	for _, id := range tracker.DefaultOrder {
		cmd, ok := c.Navigate(string(id), l)
		require.True(t, ok)

		ref := tr.ReferencePoint(cmd.ScrollTo)
		assert.InDelta(t, l[id].Top, ref, tr.Bias()+1)
		assert.Equal(t, id, tr.Update(cmd.ScrollTo, l))
	}
}

func TestNavigateMissingTargetIsNoop(t *testing.T) {
	c := New(nil)

	_, ok := c.Navigate("blog", layout())
	assert.False(t, ok)

	l := layout()
	delete(l, tracker.Contact)
	_, ok = c.Navigate("contact", l)
	assert.False(t, ok)
}

func TestItems(t *testing.T) {
	c := New(nil)
	items := c.Items(tracker.Skills)

	require.Len(t, items, 5)
	labels := make([]string, 0, len(items))
	for _, it := range items {
		labels = append(labels, it.Label)
		assert.Equal(t, it.ID == tracker.Skills, it.Current)
	}
	assert.Equal(t, []string{"About", "Skills", "Projects", "Experience", "Contact"}, labels)
	assert.Equal(t, tracker.Hero, c.Home())
}

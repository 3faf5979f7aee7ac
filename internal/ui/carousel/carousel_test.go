package carousel

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/folio/internal/clock"
	"github.com/llehouerou/folio/internal/ui/testutil"
)

func testCards() []Card {
	return []Card{
		{ID: "btech", Header: "2021 - 2025", Title: "B.Tech", Subtitle: "MACE", Body: "Embedded systems"},
		{ID: "hse", Header: "2018 - 2020", Title: "Higher Secondary", Subtitle: "GHSS", Body: "Science"},
		{ID: "hs", Header: "2018", Title: "High School", Subtitle: "Markaz", Body: "Full A+"},
	}
}

// Wide layout: width 100, card 40, gap 2 gives side padding 30 and card
// centers at 50, 92 and 134.
func newTestCarousel(t *testing.T, snap bool) (*Model, *clock.Fake) {
	t.Helper()
	fake := clock.NewFake()
	m, err := New("Education", testCards(), Options{Clock: fake, Snap: snap})
	require.NoError(t, err)
	m.SetSize(100, 0)
	t.Cleanup(m.Close)
	return m, fake
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	_, err := New("dup", []Card{{ID: "a"}, {ID: "a"}}, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestSetSize_Layout(t *testing.T) {
	m, _ := newTestCarousel(t, false)

	s := m.Strip()
	assert.Equal(t, 40, s.CardWidth)
	assert.Equal(t, 30, s.SidePadding())
	assert.Equal(t, 184, s.Width())
	assert.Equal(t, 84, s.MaxScroll())
}

func TestScroll_DebouncedRecompute(t *testing.T) {
	m, fake := newTestCarousel(t, false)

	require.True(t, m.ScrollBy(42))
	fake.Advance(30 * time.Millisecond)
	require.True(t, m.ScrollBy(42))
	fake.Advance(30 * time.Millisecond)

	assert.Equal(t, 0, m.Current(), "no recompute while scrolling")
	assert.Equal(t, 0, m.Tracker().Recomputes())

	fake.Advance(20 * time.Millisecond)
	assert.Equal(t, 2, m.Current())
	assert.Equal(t, 1, m.Tracker().Recomputes(), "one recompute per burst")
}

func TestScroll_ClampedAtEdges(t *testing.T) {
	m, _ := newTestCarousel(t, false)

	assert.False(t, m.ScrollBy(-5), "already at the start")
	assert.True(t, m.ScrollBy(500))
	assert.Equal(t, 84, m.Offset())
	assert.False(t, m.ScrollBy(1))
}

func TestScrollCards_StepsOneCard(t *testing.T) {
	m, fake := newTestCarousel(t, false)

	m.ScrollCards(1)
	assert.Equal(t, 42, m.Offset())
	fake.Advance(50 * time.Millisecond)
	assert.Equal(t, 1, m.Current())
}

func TestSnap_CentersCurrentCard(t *testing.T) {
	m, fake := newTestCarousel(t, true)

	m.ScrollBy(30)
	fake.Advance(50 * time.Millisecond)
	assert.Equal(t, 1, m.Current())
	assert.Equal(t, 30, m.Offset(), "snap waits for the settle delay")

	fake.Advance(50 * time.Millisecond)
	assert.Equal(t, 42, m.Offset())
	assert.Equal(t, 1, m.Current())
}

func TestSnap_DisabledLeavesOffset(t *testing.T) {
	m, fake := newTestCarousel(t, false)

	m.ScrollBy(30)
	fake.Advance(time.Second)
	assert.Equal(t, 30, m.Offset())
	assert.Equal(t, 1, m.Current())
}

func TestMount_InitialCorrection(t *testing.T) {
	m, fake := newTestCarousel(t, false)
	m.offset = 84
	m.updateContainer()

	m.Mount()
	fake.Advance(99 * time.Millisecond)
	assert.Equal(t, 0, m.Current())

	fake.Advance(time.Millisecond)
	assert.Equal(t, 2, m.Current())
	assert.Equal(t, 1, m.Tracker().Recomputes())
}

func TestClose_CancelsPendingWork(t *testing.T) {
	m, fake := newTestCarousel(t, true)

	m.Mount()
	m.ScrollBy(84)
	m.Close()
	fake.Advance(time.Second)

	assert.Equal(t, 0, m.Current())
	assert.Equal(t, 84, m.Offset())
	assert.Equal(t, 0, fake.Pending())
	assert.True(t, m.Tracker().Closed())
}

func TestView_WindowWidthAndEmphasis(t *testing.T) {
	m, fake := newTestCarousel(t, false)

	out := m.View()
	lines := testutil.SplitLines(out)
	require.NotEmpty(t, lines)
	assert.Contains(t, testutil.StripANSI(lines[0]), "Education")
	for i, line := range lines[2 : len(lines)-3] {
		assert.Equal(t, 100, testutil.MeasureWidth(line), "window line %d", i)
	}
	assert.True(t, testutil.ContainsLine(out, "B.Tech"))
	assert.Equal(t, 1, strings.Count(testutil.StripANSI(out), "●"))

	m.ScrollBy(84)
	fake.Advance(50 * time.Millisecond)
	out = m.View()
	assert.Equal(t, 3, strings.Count(testutil.StripANSI(out), "●"))
	assert.True(t, testutil.ContainsLine(out, "High School"))
}

func TestView_FocusHint(t *testing.T) {
	m, _ := newTestCarousel(t, false)

	assert.NotContains(t, testutil.StripANSI(m.View()), "tab next row")
	m.SetFocused(true)
	assert.Contains(t, testutil.StripANSI(m.View()), "tab next row")
}

func TestView_NarrowCardWidth(t *testing.T) {
	m, _ := newTestCarousel(t, false)
	m.SetSize(50, 0)

	assert.Equal(t, 40, m.Strip().CardWidth, "80% of a narrow view")
	assert.Equal(t, 5, m.Strip().SidePadding())
}

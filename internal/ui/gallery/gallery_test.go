package gallery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/folio/internal/clock"
	"github.com/llehouerou/folio/internal/content"
	"github.com/llehouerou/folio/internal/ui/testutil"
)

func testGraphics() content.Graphics {
	return content.Graphics{
		Title: "Creative Showcase",
		Tiles: []content.Tile{
			{ID: "poster", Caption: "Poster", Image: "https://img.example/poster.jpg"},
			{ID: "flyer", Caption: "Flyer", Image: "https://img.example/flyer.jpg"},
			{ID: "logo", Caption: "Logo"},
		},
		Partners: []content.Partner{{Name: "Lysiebug"}, {Name: "Hagiya"}},
	}
}

// Wide layout: width 100, tiles 26 wide with a gap of 2, so one loop is
// 84 columns and tile centers sit at 13 + 28*i.
func newTestGallery(t *testing.T, autoplay bool) (*Model, *clock.Fake) {
	t.Helper()
	fake := clock.NewFake()
	m, err := New(testGraphics(), Options{Clock: fake, Autoplay: autoplay})
	require.NoError(t, err)
	m.SetSize(100, 0)
	t.Cleanup(m.Close)
	return m, fake
}

func TestNew_TracksBothCopies(t *testing.T) {
	m, _ := newTestGallery(t, false)
	assert.Equal(t, 6, m.Tracker().Len())
}

func TestInit_NoAutoplay(t *testing.T) {
	m, _ := newTestGallery(t, false)
	assert.Nil(t, m.Init())
}

func TestFrame_AdvancesOneColumn(t *testing.T) {
	m, _ := newTestGallery(t, true)
	require.NotNil(t, m.Init())

	cmd := m.Update(FrameMsg{Version: m.version})
	require.NotNil(t, cmd, "next frame scheduled")
	assert.Equal(t, 1, m.Offset())
	assert.Equal(t, 1, m.Frames())
}

func TestFrame_StaleVersionIgnored(t *testing.T) {
	m, _ := newTestGallery(t, true)
	m.Init()
	stale := m.version
	m.Start()

	assert.Nil(t, m.Update(FrameMsg{Version: stale}))
	assert.Equal(t, 0, m.Offset())
}

func TestFrame_PausedWhileFocused(t *testing.T) {
	m, _ := newTestGallery(t, true)
	m.Init()
	m.SetFocused(true)

	cmd := m.Update(FrameMsg{Version: m.version})
	assert.NotNil(t, cmd, "keeps ticking while paused")
	assert.Equal(t, 0, m.Offset())
	assert.Equal(t, 0, m.Frames())
}

func TestScrollBy_WrapsAtLoopWidth(t *testing.T) {
	m, _ := newTestGallery(t, false)

	m.ScrollBy(83)
	assert.Equal(t, 83, m.Offset())
	m.ScrollBy(1)
	assert.Equal(t, 0, m.Offset(), "wraps to the start of the first copy")
	m.ScrollBy(-1)
	assert.Equal(t, 83, m.Offset(), "wraps backwards")
}

func TestCurrent_MapsLoopCopyToContentTile(t *testing.T) {
	m, fake := newTestGallery(t, false)

	m.ScrollBy(83)
	fake.Advance(50 * time.Millisecond)

	assert.Equal(t, 4, m.Tracker().Current(), "centered tile is in the second copy")
	assert.Equal(t, 1, m.Current())
	tile, ok := m.CurrentTile()
	require.True(t, ok)
	assert.Equal(t, "flyer", tile.ID)
}

func TestMount_SelectsCenteredTile(t *testing.T) {
	m, fake := newTestGallery(t, false)

	m.Init()
	fake.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, m.Current())
}

func TestClose_StopsFramesAndTimers(t *testing.T) {
	m, fake := newTestGallery(t, true)
	m.Init()
	v := m.version
	m.ScrollBy(10)

	m.Close()
	assert.Nil(t, m.Update(FrameMsg{Version: v}))
	assert.Nil(t, m.Start())
	fake.Advance(time.Second)
	assert.Equal(t, 0, fake.Pending())
	assert.Equal(t, 0, m.Tracker().Current())
}

func TestView(t *testing.T) {
	m, fake := newTestGallery(t, false)
	m.Init()
	fake.Advance(100 * time.Millisecond)

	out := m.View()
	assert.True(t, testutil.ContainsLine(out, "Creative Showcase"))
	assert.True(t, testutil.ContainsLine(out, "▸ Flyer"))
	assert.True(t, testutil.ContainsLine(out, "Lysiebug · Hagiya"))

	lines := testutil.SplitLines(out)
	for i := 2; i < 7; i++ {
		assert.Equal(t, 100, testutil.MeasureWidth(lines[i]), "window line %d", i)
	}
}

func TestView_WindowWiderThanLoop(t *testing.T) {
	m, _ := newTestGallery(t, false)
	m.SetSize(200, 0)
	m.ScrollBy(80)

	lines := testutil.SplitLines(m.View())
	assert.Equal(t, 200, testutil.MeasureWidth(lines[2]))
}

func TestView_EmptyGallery(t *testing.T) {
	m, err := New(content.Graphics{Title: "Empty"}, Options{Clock: clock.NewFake()})
	require.NoError(t, err)
	m.SetSize(80, 0)

	assert.Equal(t, 0, m.Current())
	_, ok := m.CurrentTile()
	assert.False(t, ok)
	assert.True(t, testutil.ContainsLine(m.View(), "Empty"))
}

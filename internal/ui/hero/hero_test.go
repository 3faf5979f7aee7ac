package hero

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/folio/internal/content"
	"github.com/llehouerou/folio/internal/ui/testutil"
)

func newTestHero(t *testing.T) *Model {
	t.Helper()
	p := &content.Portfolio{
		Owner: content.Owner{Name: "Muhammed Nabeel"},
		Hero: content.Hero{
			Badge:      "Portfolio",
			Greeting:   "Hi, I'm",
			Titles:     []string{"n Engineer", " Designer", " Developer"},
			Summary:    "Working at **TNEI Group**.",
			ScrollHint: "Scroll to explore",
		},
		Contact: content.Contact{Links: []content.Link{{Label: "GitHub", URL: "https://github.com/x"}}},
	}
	m := New(p, 3*time.Second, 500*time.Millisecond)
	m.SetSize(60, 0)
	return m
}

func TestHero_RotationCycle(t *testing.T) {
	m := newTestHero(t)
	require.NotNil(t, m.Init())
	v := m.version

	assert.Equal(t, "An Engineer", m.Title())

	cmd := m.Update(RotateMsg{Version: v})
	require.NotNil(t, cmd)
	assert.Equal(t, "", m.Title(), "title hidden during fade")
	assert.Equal(t, 0, m.TitleIndex())

	m.Update(ShowMsg{Version: v})
	assert.Equal(t, "A Designer", m.Title())

	m.Update(RotateMsg{Version: v})
	m.Update(ShowMsg{Version: v})
	m.Update(RotateMsg{Version: v})
	m.Update(ShowMsg{Version: v})
	assert.Equal(t, "An Engineer", m.Title(), "titles wrap around")
}

func TestHero_StaleTicksIgnored(t *testing.T) {
	m := newTestHero(t)
	m.Init()
	stale := m.version

	m.Start()
	assert.Nil(t, m.Update(RotateMsg{Version: stale}))
	assert.Equal(t, "An Engineer", m.Title())

	m.Stop()
	m.Update(ShowMsg{Version: stale + 1})
	assert.Equal(t, 0, m.TitleIndex(), "show after Stop is ignored")
}

func TestHero_SingleTitleDoesNotRotate(t *testing.T) {
	m := New(&content.Portfolio{Hero: content.Hero{Titles: []string{" Engineer"}}}, time.Second, time.Millisecond)
	assert.Nil(t, m.Init())
}

func TestHero_ViewHeightStableWhileHidden(t *testing.T) {
	m := newTestHero(t)
	m.Init()

	shown := m.View()
	m.Update(RotateMsg{Version: m.version})
	hidden := m.View()

	assert.Equal(t, strings.Count(shown, "\n"), strings.Count(hidden, "\n"))
}

func TestHero_View(t *testing.T) {
	m := newTestHero(t)
	view := testutil.StripANSI(m.View())

	for _, want := range []string{"Portfolio", "Hi, I'm", "Muhammed Nabeel", "An Engineer", "Working at TNEI Group.", "GitHub", "Scroll to explore"} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, "**")
}

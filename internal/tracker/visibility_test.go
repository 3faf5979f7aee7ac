package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stackedGeometry() *StaticGeometry {
	g := NewStaticGeometry()
	g.SetContainer(Rect{Y: 0, H: 1000})
	g.Set("job0", Rect{Y: 0, H: 800})
	g.Set("job1", Rect{Y: 750, H: 450})
	g.Set("job2", Rect{Y: 1300, H: 400})
	return g
}

func TestObserver_FirstCheckReportsAllInOrder(t *testing.T) {
	g := stackedGeometry()
	obs := NewObserver(g, DefaultThreshold)
	obs.Observe(MustRegistry("job0", "job1", "job2"))

	var batches [][]Entry
	obs.Subscribe(func(b []Entry) { batches = append(batches, b) })

	batch := obs.Check()
	require.Len(t, batches, 1)
	require.Len(t, batch, 3)
	assert.Equal(t, []string{"job0", "job1", "job2"}, ids(batch))
	assert.True(t, batch[0].Intersecting)
	assert.InDelta(t, 1.0, batch[0].Ratio, 1e-9)
	assert.InDelta(t, 250.0/450.0, batch[1].Ratio, 1e-9)
	assert.False(t, batch[2].Intersecting)
}

func TestObserver_ReportsOnlyThresholdCrossings(t *testing.T) {
	g := stackedGeometry()
	obs := NewObserver(g, DefaultThreshold)
	obs.Observe(MustRegistry("job0", "job1", "job2"))
	obs.Check()

	// Small scroll: nothing crosses 0.5.
	g.SetContainer(Rect{Y: 10, H: 1000})
	assert.Empty(t, obs.Check())

	// job0 drops below half, job2 rises above half.
	g.SetContainer(Rect{Y: 700, H: 1000})
	batch := obs.Check()
	assert.Equal(t, []string{"job0", "job2"}, ids(batch))
}

func TestObserver_TrackerFollowsScroll(t *testing.T) {
	g := stackedGeometry()
	reg := MustRegistry("job0", "job1", "job2")
	obs := NewObserver(g, DefaultThreshold)
	obs.Observe(reg)
	tr := New(reg, g, Options{Strategy: VisibilityRatio})
	tr.Observe(obs)

	obs.Check()
	assert.Equal(t, 1, tr.Current(), "job0 and job1 both qualify; job1 reported last")

	g.SetContainer(Rect{Y: 700, H: 1000})
	obs.Check()
	assert.Equal(t, 2, tr.Current())

	g.SetContainer(Rect{Y: 0, H: 1000})
	obs.Check()
	assert.Equal(t, 0, tr.Current(), "only job0 crossed back above the threshold")
}

func TestObserver_SkipsMissingGeometry(t *testing.T) {
	g := NewStaticGeometry()
	obs := NewObserver(g, DefaultThreshold)
	obs.Observe(MustRegistry("a", "b"))
	assert.Empty(t, obs.Check(), "no container")

	g.SetContainer(Rect{H: 100})
	g.Set("b", Rect{H: 50})
	assert.Equal(t, []string{"b"}, ids(obs.Check()))

	g.Set("a", Rect{H: 50})
	assert.Equal(t, []string{"a"}, ids(obs.Check()))
}

func TestObserver_Unsubscribe(t *testing.T) {
	g := stackedGeometry()
	obs := NewObserver(g, DefaultThreshold)
	obs.Observe(MustRegistry("job0"))

	calls := 0
	unsubscribe := obs.Subscribe(func([]Entry) { calls++ })
	unsubscribe()
	unsubscribe()
	obs.Check()
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, obs.Subscribers())
}

func TestObserver_UnsubscribeDuringDelivery(t *testing.T) {
	g := stackedGeometry()
	obs := NewObserver(g, DefaultThreshold)
	obs.Observe(MustRegistry("job0"))

	var second int
	var unsubscribeSecond func()
	obs.Subscribe(func([]Entry) { unsubscribeSecond() })
	unsubscribeSecond = obs.Subscribe(func([]Entry) { second++ })

	obs.Check()
	assert.Equal(t, 0, second, "subscription revoked mid-batch must not be invoked")
}

func TestObserver_Disconnect(t *testing.T) {
	g := stackedGeometry()
	obs := NewObserver(g, 0)
	assert.Equal(t, DefaultThreshold, obs.Threshold())

	obs.Observe(MustRegistry("job0", "job1"))
	assert.Equal(t, []string{"job0", "job1"}, ids(obs.Check()))

	calls := 0
	obs.Subscribe(func([]Entry) { calls++ })
	obs.Disconnect()
	obs.Observe(MustRegistry("job2"))
	g.SetContainer(Rect{Y: 1300, H: 1000})
	obs.Check()
	assert.Equal(t, 0, calls)
}

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

package tracker

// Entry is one visibility notification.
type Entry struct {
	ID           string
	Intersecting bool
	Ratio        float64
}

// VisibilitySource delivers ordered batches of visibility notifications.
// Subscribe returns a function that revokes the subscription.
type VisibilitySource interface {
	Subscribe(fn func([]Entry)) (unsubscribe func())
}

type subscription struct {
	fn     func([]Entry)
	active bool
}

// Observer computes visibility ratios of observed items against the
// geometry's container and notifies subscribers when an item crosses the
// threshold. Batches list entries in observation order.
type Observer struct {
	geo       Geometry
	threshold float64

	targets   []string
	observed  map[string]bool
	qualified map[string]bool
	reported  map[string]bool

	subs []*subscription
}

// NewObserver creates an observer. A threshold outside (0, 1] uses
// DefaultThreshold.
func NewObserver(geo Geometry, threshold float64) *Observer {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Observer{
		geo:       geo,
		threshold: threshold,
		observed:  make(map[string]bool),
		qualified: make(map[string]bool),
		reported:  make(map[string]bool),
	}
}

// Threshold returns the ratio an item needs to qualify.
func (o *Observer) Threshold() float64 { return o.threshold }

// Observe starts watching every item of reg.
func (o *Observer) Observe(reg *Registry) {
	for _, it := range reg.Items() {
		if o.observed[it.ID] {
			continue
		}
		o.observed[it.ID] = true
		o.targets = append(o.targets, it.ID)
	}
}

// Subscribe implements VisibilitySource.
func (o *Observer) Subscribe(fn func([]Entry)) func() {
	sub := &subscription{fn: fn, active: true}
	o.subs = append(o.subs, sub)
	return func() {
		if !sub.active {
			return
		}
		sub.active = false
		for i, s := range o.subs {
			if s == sub {
				o.subs = append(o.subs[:i], o.subs[i+1:]...)
				break
			}
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (o *Observer) Subscribers() int { return len(o.subs) }

// Check measures every observed item and delivers the items whose
// qualifying state changed since the last check. The first measurement of
// an item is always reported. Items without bounds are skipped.
func (o *Observer) Check() []Entry {
	if o.geo == nil {
		return nil
	}
	viewport, ok := o.geo.Container()
	if !ok {
		return nil
	}

	var batch []Entry
	for _, id := range o.targets {
		bounds, ok := o.geo.BoundsOf(id)
		if !ok {
			continue
		}
		ratio := VisibleRatio(viewport, bounds)
		qualifies := ratio >= o.threshold
		if o.reported[id] && o.qualified[id] == qualifies {
			continue
		}
		o.reported[id] = true
		o.qualified[id] = qualifies
		batch = append(batch, Entry{ID: id, Intersecting: ratio > 0, Ratio: ratio})
	}

	if len(batch) > 0 {
		o.deliver(batch)
	}
	return batch
}

// Disconnect drops every subscription and observed item.
func (o *Observer) Disconnect() {
	for _, s := range o.subs {
		s.active = false
	}
	o.subs = nil
	o.targets = nil
	o.observed = make(map[string]bool)
	o.qualified = make(map[string]bool)
	o.reported = make(map[string]bool)
}

func (o *Observer) deliver(batch []Entry) {
	subs := make([]*subscription, len(o.subs))
	copy(subs, o.subs)
	for _, s := range subs {
		if s.active {
			s.fn(batch)
		}
	}
}

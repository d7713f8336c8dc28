package inventory

// Sender identifies who triggered a mutation. The container never interprets
// it; it is threaded through to every notification.
type Sender string

// Listener receives container change notifications. Calls are synchronous and
// happen inline with the mutation that caused them.
type Listener interface {
	// OnAdded reports that amount units of item's kind were placed.
	OnAdded(sender Sender, item *Item, amount int)
	// OnRemoved reports that amount units of kind were taken out of one slot.
	OnRemoved(sender Sender, kind KindID, amount int)
	// OnStateChanged fires after every mutating step.
	OnStateChanged(sender Sender)
}

// ListenerFuncs adapts plain functions to a Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Added        func(sender Sender, item *Item, amount int)
	Removed      func(sender Sender, kind KindID, amount int)
	StateChanged func(sender Sender)
}

// OnAdded implements Listener.
func (f ListenerFuncs) OnAdded(sender Sender, item *Item, amount int) {
	if f.Added != nil {
		f.Added(sender, item, amount)
	}
}

// OnRemoved implements Listener.
func (f ListenerFuncs) OnRemoved(sender Sender, kind KindID, amount int) {
	if f.Removed != nil {
		f.Removed(sender, kind, amount)
	}
}

// OnStateChanged implements Listener.
func (f ListenerFuncs) OnStateChanged(sender Sender) {
	if f.StateChanged != nil {
		f.StateChanged(sender)
	}
}

// subscription pairs a listener with a handle so it can be removed even when
// the same Listener value is subscribed twice.
type subscription struct {
	id       uint64
	listener Listener
}

type listeners struct {
	next uint64
	subs []subscription
}

func (l *listeners) add(ln Listener) uint64 {
	l.next++
	l.subs = append(l.subs, subscription{id: l.next, listener: ln})
	return l.next
}

func (l *listeners) remove(id uint64) {
	for i, s := range l.subs {
		if s.id == id {
			l.subs = append(l.subs[:i:i], l.subs[i+1:]...)
			return
		}
	}
}

func (l *listeners) added(sender Sender, item *Item, amount int) {
	for _, s := range l.snapshot() {
		s.listener.OnAdded(sender, item, amount)
	}
}

func (l *listeners) removed(sender Sender, kind KindID, amount int) {
	for _, s := range l.snapshot() {
		s.listener.OnRemoved(sender, kind, amount)
	}
}

func (l *listeners) stateChanged(sender Sender) {
	for _, s := range l.snapshot() {
		s.listener.OnStateChanged(sender)
	}
}

// snapshot lets listeners unsubscribe mid-dispatch.
func (l *listeners) snapshot() []subscription {
	if len(l.subs) == 0 {
		return nil
	}
	out := make([]subscription, len(l.subs))
	copy(out, l.subs)
	return out
}

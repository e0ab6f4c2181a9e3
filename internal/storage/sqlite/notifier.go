package sqlite

import "sync"

// notifier fans out change signals to split subscribers. Each subscriber is
// keyed by the uid it watches; a signal is a bare wakeup, the subscriber
// re-queries its own snapshot. Kick channels are buffered so a pending wakeup
// coalesces with later ones instead of blocking writers.
type notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]*subscription
}

type subscription struct {
	uid  string
	kick chan struct{}
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[int]*subscription)}
}

// subscribe registers a watcher for uid and returns its handle and wakeup channel.
func (n *notifier) subscribe(uid string) (int, <-chan struct{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.nextID++
	sub := &subscription{uid: uid, kick: make(chan struct{}, 1)}
	n.subs[n.nextID] = sub
	return n.nextID, sub.kick
}

// unsubscribe removes a watcher. Safe to call once per subscribe.
func (n *notifier) unsubscribe(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.subs, id)
}

// notify wakes every subscriber watching one of the given uids.
func (n *notifier) notify(uids []string) {
	affected := make(map[string]bool, len(uids))
	for _, uid := range uids {
		affected[uid] = true
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	for _, sub := range n.subs {
		if !affected[sub.uid] {
			continue
		}
		select {
		case sub.kick <- struct{}{}:
		default: // a wakeup is already pending
		}
	}
}

// Package viewstate holds the single observable record behind the viewer
// screen: the requested image URL, the load-failure flag, and whether the
// floating action menu is open.
package viewstate

import "sync"

// Snapshot is a consistent copy of the three observable fields, taken at the
// moment a mutation completed. Subscribers receive Snapshots rather than
// reading the live state so that one notification always describes one
// coherent point in time.
type Snapshot struct {
	ImageURL string
	HasError bool
	MenuOpen bool
}

// Change identifies which mutation produced a notification. Notifications
// fire once per mutation call, even when the stored value is unchanged; in
// particular every SetImageURL call reports ImageURLChanged, so resubmitting
// an identical URL still restarts the load path.
type Change int

const (
	ImageURLChanged Change = iota
	ErrorChanged
	MenuChanged
)

type subscriber struct {
	id int
	fn func(Change, Snapshot)
}

// State is the screen's view state. One instance serves a window for the
// life of the session. All mutations originate from the UI event thread;
// asynchronous work reports back by marshalling onto that thread first.
//
// Every mutation method notifies all current subscribers synchronously
// before returning.
type State struct {
	mu       sync.RWMutex
	imageURL string
	hasError bool
	menuOpen bool

	nextID int
	subs   []subscriber
}

// New returns an empty State: no URL requested, no error, menu closed.
func New() *State {
	return &State{}
}

// ImageURL returns the current image URL. Empty means nothing requested.
func (s *State) ImageURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.imageURL
}

// HasError reports whether the load attempt for the current URL failed.
func (s *State) HasError() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasError
}

// MenuOpen reports whether the floating action menu is open.
func (s *State) MenuOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.menuOpen
}

// Snapshot returns a copy of all three fields.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// SetImageURL replaces the requested URL and unconditionally clears the
// error flag, so a stale failure is never shown against a new URL. The URL
// is opaque: any string is accepted, including empty, which returns the
// screen to its initial state. This call itself cannot fail; an unreachable
// or malformed URL surfaces later through SetError when the load attempt
// reports its outcome. There is no dedup of a resubmitted identical URL.
func (s *State) SetImageURL(url string) {
	s.mu.Lock()
	s.imageURL = url
	s.hasError = false
	snap, subs := s.forNotifyLocked()
	s.mu.Unlock()
	notify(subs, ImageURLChanged, snap)
}

// SetError records the outcome of the most recent load attempt: true for
// failure, false for success. It never touches the URL. Idempotent.
func (s *State) SetError(flag bool) {
	s.mu.Lock()
	s.hasError = flag
	snap, subs := s.forNotifyLocked()
	s.mu.Unlock()
	notify(subs, ErrorChanged, snap)
}

// ToggleMenu flips the floating action menu open or shut.
func (s *State) ToggleMenu() {
	s.mu.Lock()
	s.menuOpen = !s.menuOpen
	snap, subs := s.forNotifyLocked()
	s.mu.Unlock()
	notify(subs, MenuChanged, snap)
}

// CloseMenu forces the floating action menu shut. Safe to call when the
// menu is already closed.
func (s *State) CloseMenu() {
	s.mu.Lock()
	s.menuOpen = false
	snap, subs := s.forNotifyLocked()
	s.mu.Unlock()
	notify(subs, MenuChanged, snap)
}

// Subscribe registers fn to run synchronously after every mutation and
// returns the handle that removes it again. Subscribers are invoked in
// registration order with the lock released, so a callback may read state,
// mutate it, or unsubscribe itself without deadlocking.
func (s *State) Subscribe(fn func(Change, Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *State) snapshotLocked() Snapshot {
	return Snapshot{
		ImageURL: s.imageURL,
		HasError: s.hasError,
		MenuOpen: s.menuOpen,
	}
}

// forNotifyLocked copies the snapshot and the subscriber list so callbacks
// can run after the lock is released.
func (s *State) forNotifyLocked() (Snapshot, []func(Change, Snapshot)) {
	fns := make([]func(Change, Snapshot), len(s.subs))
	for i, sub := range s.subs {
		fns[i] = sub.fn
	}
	return s.snapshotLocked(), fns
}

func notify(fns []func(Change, Snapshot), ch Change, snap Snapshot) {
	for _, fn := range fns {
		fn(ch, snap)
	}
}

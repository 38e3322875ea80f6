// Package navigation holds the in-memory location router the dashboard
// runs on. The console is a single entry point and every path is resolved
// in process, so the router keeps its own history stack and replicates
// browser back/forward semantics.
package navigation

import "sync"

// Listener is notified after every location change with the new path.
type Listener func(path string)

// Router tracks the current path over a history stack. Navigate behaves
// like history.pushState: it appends an entry and discards any forward
// branch. One process-wide listener is registered at startup and torn
// down with Close.
type Router struct {
	mu       sync.Mutex
	history  []string
	idx      int
	listener Listener
	closed   bool
}

// New returns a Router positioned at start (usually "/").
func New(start string) *Router {
	if start == "" {
		start = "/"
	}
	return &Router{history: []string{start}}
}

// Current returns the path the router is positioned at.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history[r.idx]
}

// Navigate pushes a new location. Navigating to the current path is a
// no-op so guard redirects can never ping-pong.
func (r *Router) Navigate(path string) {
	r.mu.Lock()
	if r.closed || path == r.history[r.idx] {
		r.mu.Unlock()
		return
	}
	r.history = append(r.history[:r.idx+1], path)
	r.idx = len(r.history) - 1
	l := r.listener
	r.mu.Unlock()

	notify(l, path)
}

// Back moves one entry towards the oldest location and reports whether
// it moved.
func (r *Router) Back() bool {
	r.mu.Lock()
	if r.closed || r.idx == 0 {
		r.mu.Unlock()
		return false
	}
	r.idx--
	path := r.history[r.idx]
	l := r.listener
	r.mu.Unlock()

	notify(l, path)
	return true
}

// Forward moves one entry towards the newest location and reports
// whether it moved.
func (r *Router) Forward() bool {
	r.mu.Lock()
	if r.closed || r.idx == len(r.history)-1 {
		r.mu.Unlock()
		return false
	}
	r.idx++
	path := r.history[r.idx]
	l := r.listener
	r.mu.Unlock()

	notify(l, path)
	return true
}

// Subscribe registers the single location listener. A second call
// replaces the first; passing nil unsubscribes.
func (r *Router) Subscribe(l Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listener = l
}

// Close tears the router down; further navigation is ignored.
func (r *Router) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.listener = nil
}

func notify(l Listener, path string) {
	if l != nil {
		l(path)
	}
}
